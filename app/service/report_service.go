package service

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"dropout-risk-dashboard/app/models"
	repository "dropout-risk-dashboard/app/repository/postgresql"
)

type ReportService struct {
	repo repository.StudentRepository
}

func NewReportService(repo repository.StudentRepository) *ReportService {
	return &ReportService{repo: repo}
}

const (
	studentsSheet = "Students"
	summarySheet  = "Summary"
)

// Export streams an xlsx workbook: one sheet with all students, one summary
// sheet with risk-bucket counts and a bar chart over them.
func (s *ReportService) Export(c *fiber.Ctx) error {
	students, err := s.repo.GetAllStudents(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load students",
		})
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	if err := s.writeWorkbook(f, students); err != nil {
		log.Printf("Failed to build report workbook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to build report",
		})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to write report",
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="dropout-risk-report.xlsx"`)
	return c.Send(buf.Bytes())
}

func (s *ReportService) writeWorkbook(f *excelize.File, students []models.Student) error {
	if err := f.SetSheetName("Sheet1", studentsSheet); err != nil {
		return err
	}

	headers := []string{"Name", "Score", "Risk", "Reason", "Created At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(studentsSheet, cell, header); err != nil {
			return err
		}
	}

	for i, student := range students {
		row := i + 2
		values := []interface{}{
			student.Name,
			student.Score,
			student.Risk,
			student.Reason,
			student.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(studentsSheet, cell, value); err != nil {
				return err
			}
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	summary := models.SummarizeRisk(students)
	cells := [][2]interface{}{
		{"Category", "Count"},
		{models.RiskLow, summary.Low},
		{models.RiskMedium, summary.Medium},
		{models.RiskHigh, summary.High},
	}
	for i, pair := range cells {
		row := i + 1
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), pair[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), pair[1]); err != nil {
			return err
		}
	}

	return f.AddChart(summarySheet, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       summarySheet + "!$B$1",
			Categories: summarySheet + "!$A$2:$A$4",
			Values:     summarySheet + "!$B$2:$B$4",
		}},
		Title:  []excelize.RichTextRun{{Text: "Students per Risk Category"}},
		Legend: excelize.ChartLegend{Position: "none"},
	})
}
