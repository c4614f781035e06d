package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dropout-risk-dashboard/app/models"
)

type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) CreateStudent(ctx context.Context, student models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepo) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}
