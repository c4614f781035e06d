package service

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"dropout-risk-dashboard/dashboard"
	"dropout-risk-dashboard/views"
)

type DashboardService struct {
	pipeline *dashboard.Pipeline
	session  *dashboard.Session
}

func NewDashboardService(pipeline *dashboard.Pipeline, session *dashboard.Session) *DashboardService {
	return &DashboardService{pipeline: pipeline, session: session}
}

// Dashboard runs the pipeline once per page view and serves the page with
// whatever the session holds afterwards. A failed refresh is logged and the
// page renders without data; the user sees no error.
func (s *DashboardService) Dashboard(c *fiber.Ctx) error {
	if err := s.pipeline.Refresh(c.Context()); err != nil {
		log.Printf("Dashboard refresh failed: %v", err)
	}

	page, err := views.Render("dashboard.html", fiber.Map{
		"Rows":     s.session.Table(),
		"HasChart": s.session.HasChart(),
	})
	if err != nil {
		log.Printf("Failed to render dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to render page",
		})
	}
	c.Type("html")
	return c.Send(page)
}

// ChartPNG serves the chart the session currently holds.
func (s *DashboardService) ChartPNG(c *fiber.Ctx) error {
	png := s.session.ChartPNG()
	if len(png) == 0 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
