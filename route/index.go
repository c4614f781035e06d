package route

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	repository "dropout-risk-dashboard/app/repository/postgresql"
	"dropout-risk-dashboard/app/service"
	"dropout-risk-dashboard/config"
	"dropout-risk-dashboard/dashboard"
)

func SetupRoutes(app *fiber.App, db *sql.DB) {
	// Repositories
	studentRepo := repository.NewStudentRepository(db)

	// Services
	studentService := service.NewStudentService(studentRepo)
	reportService := service.NewReportService(studentRepo)

	// Dashboard pipeline: fetches from this server's own students endpoint,
	// exactly like the page script it replaces.
	session := dashboard.NewSession()
	source := dashboard.NewHTTPSource(config.StudentsEndpoint())
	pipeline := dashboard.NewPipeline(source, session)
	dashboardService := service.NewDashboardService(pipeline, session)

	// Intake
	app.Get("/", studentService.IntakeForm)
	app.Post("/submit", studentService.SubmitForm)

	// API
	api := app.Group("/api")
	api.Get("/students", studentService.GetAllStudents)
	api.Post("/students", studentService.CreateStudent)
	api.Get("/reports/export", reportService.Export)

	// Dashboard
	app.Get("/dashboard", dashboardService.Dashboard)
	app.Get("/dashboard/chart.png", dashboardService.ChartPNG)
}
