package dashboard

import (
	"html/template"
	"sync"
)

// Session owns the currently rendered dashboard artifacts. Replace is its only
// mutator: the previous table fragment and chart are dropped together, so at
// most one chart is ever bound to the dashboard.
type Session struct {
	mu       sync.RWMutex
	table    template.HTML
	chartPNG []byte
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Replace(table template.HTML, chartPNG []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.chartPNG = chartPNG
}

func (s *Session) Table() template.HTML {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

func (s *Session) ChartPNG() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chartPNG
}

func (s *Session) HasChart() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chartPNG) > 0
}
