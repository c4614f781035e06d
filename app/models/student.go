package models

import (
	"time"

	"github.com/google/uuid"
)

// Risk categories assigned by the scoring service.
const (
	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"
)

type Student struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Academic     float64   `json:"academic"`
	ParentIncome float64   `json:"parent_income"`
	FamilySize   int       `json:"family_size"`
	Motivation   float64   `json:"motivation"`
	Behavior     float64   `json:"behavior"`
	Score        float64   `json:"score"`
	Risk         string    `json:"risk"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

// StudentInput is the intake payload before scoring.
type StudentInput struct {
	Name         string  `json:"name"`
	Academic     float64 `json:"academic"`
	ParentIncome float64 `json:"parent_income"`
	FamilySize   int     `json:"family_size"`
	Motivation   float64 `json:"motivation"`
	Behavior     float64 `json:"behavior"`
}
