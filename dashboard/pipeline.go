package dashboard

import "context"

// Pipeline runs the dashboard refresh: one fetch, then the two renderers, then
// an atomic session replace. The steps are strictly sequential and the first
// error aborts the run with the session untouched.
type Pipeline struct {
	source  DataSource
	tables  *TableRenderer
	charts  *ChartRenderer
	session *Session
}

func NewPipeline(source DataSource, session *Session) *Pipeline {
	return &Pipeline{
		source:  source,
		tables:  NewTableRenderer(),
		charts:  NewChartRenderer(),
		session: session,
	}
}

func (p *Pipeline) Refresh(ctx context.Context) error {
	records, err := p.source.FetchStudents(ctx)
	if err != nil {
		return err
	}

	rows, err := p.tables.RenderRows(records)
	if err != nil {
		return err
	}

	png, err := p.charts.Render(records)
	if err != nil {
		return err
	}

	p.session.Replace(rows, png)
	return nil
}
