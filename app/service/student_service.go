package service

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dropout-risk-dashboard/app/models"
	repository "dropout-risk-dashboard/app/repository/postgresql"
	"dropout-risk-dashboard/views"
)

type StudentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) *StudentService {
	return &StudentService{repo: repo}
}

// IntakeForm serves the student intake page.
func (s *StudentService) IntakeForm(c *fiber.Ctx) error {
	page, err := views.Render("index.html", nil)
	if err != nil {
		log.Printf("Failed to render intake form: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to render page",
		})
	}
	c.Type("html")
	return c.Send(page)
}

// GetAllStudents returns every stored student as JSON, oldest first.
func (s *StudentService) GetAllStudents(c *fiber.Ctx) error {
	students, err := s.repo.GetAllStudents(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load students",
		})
	}
	if students == nil {
		students = []models.Student{}
	}
	return c.JSON(students)
}

// CreateStudent is the JSON intake endpoint.
func (s *StudentService) CreateStudent(c *fiber.Ctx) error {
	var input models.StudentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	student := s.buildStudent(input)
	if err := s.repo.CreateStudent(c.Context(), student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save student",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

// SubmitForm is the HTML form intake endpoint. Unparseable fields fall back
// to their defaults instead of failing the submission.
func (s *StudentService) SubmitForm(c *fiber.Ctx) error {
	input := models.StudentInput{
		Name:         c.FormValue("name", "Unknown"),
		Academic:     parseFloat(c.FormValue("academic"), 0),
		ParentIncome: parseFloat(c.FormValue("parent_income"), 0),
		FamilySize:   parseInt(c.FormValue("family_size"), 1),
		Motivation:   parseFloat(c.FormValue("motivation"), 3),
		Behavior:     parseFloat(c.FormValue("behavior"), 2),
	}

	student := s.buildStudent(input)
	if err := s.repo.CreateStudent(c.Context(), student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save student",
		})
	}
	return c.Redirect("/dashboard", fiber.StatusFound)
}

func (s *StudentService) buildStudent(input models.StudentInput) models.Student {
	if input.Name == "" {
		input.Name = "Unknown"
	}
	if input.FamilySize == 0 {
		input.FamilySize = 1
	}
	if input.Motivation == 0 {
		input.Motivation = 3
	}
	if input.Behavior == 0 {
		input.Behavior = 2
	}

	score, risk, reason := ComputeScore(ScoreInput{
		Academic:     input.Academic,
		ParentIncome: input.ParentIncome,
		FamilySize:   input.FamilySize,
		Motivation:   input.Motivation,
		Behavior:     input.Behavior,
	})

	return models.Student{
		ID:           uuid.New(),
		Name:         input.Name,
		Academic:     input.Academic,
		ParentIncome: input.ParentIncome,
		FamilySize:   input.FamilySize,
		Motivation:   input.Motivation,
		Behavior:     input.Behavior,
		Score:        score,
		Risk:         risk,
		Reason:       reason,
		CreatedAt:    time.Now().UTC(),
	}
}

func parseFloat(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
