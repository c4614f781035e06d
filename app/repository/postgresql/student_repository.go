package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dropout-risk-dashboard/app/models"
)

type StudentRepository interface {
	CreateStudent(ctx context.Context, student models.Student) error
	GetAllStudents(ctx context.Context) ([]models.Student, error)
}

type studentRepoPostgres struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) StudentRepository {
	return &studentRepoPostgres{db: db}
}

func (r *studentRepoPostgres) CreateStudent(ctx context.Context, student models.Student) error {
	query := `
		INSERT INTO students (
			id, name, academic, parent_income, family_size,
			motivation, behavior, score, risk, reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		student.ID,
		student.Name,
		student.Academic,
		student.ParentIncome,
		student.FamilySize,
		student.Motivation,
		student.Behavior,
		student.Score,
		student.Risk,
		student.Reason,
		student.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}
	return nil
}

func (r *studentRepoPostgres) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, name, academic, parent_income, family_size,
			motivation, behavior, score, risk, reason, created_at
		FROM students
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Academic,
			&s.ParentIncome,
			&s.FamilySize,
			&s.Motivation,
			&s.Behavior,
			&s.Score,
			&s.Risk,
			&s.Reason,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
