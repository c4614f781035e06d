package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dropout-risk-dashboard/app/models"
)

func TestComputeScoreStrongProfile(t *testing.T) {
	score, risk, reason := ComputeScore(ScoreInput{
		Academic:     95,
		ParentIncome: 18000,
		FamilySize:   2,
		Motivation:   5,
		Behavior:     3,
	})

	assert.InDelta(t, 81.64, score, 0.01)
	assert.Equal(t, models.RiskLow, risk)
	assert.Equal(t, "No major concerns found", reason)
}

func TestComputeScoreStrugglingProfile(t *testing.T) {
	score, risk, reason := ComputeScore(ScoreInput{
		Academic:     40,
		ParentIncome: 0,
		FamilySize:   1,
		Motivation:   2,
		Behavior:     1,
	})

	assert.InDelta(t, 44.67, score, 0.01)
	assert.Equal(t, models.RiskHigh, risk)
	assert.Equal(t,
		"Weak academic performance + Low motivation + Behavior concerns + "+
			"Financial instability + High financial need (deserving) but unstable resources",
		reason)
}

func TestComputeScoreMediumProfile(t *testing.T) {
	score, risk, reason := ComputeScore(ScoreInput{
		Academic:     60,
		ParentIncome: 10000,
		FamilySize:   3,
		Motivation:   3,
		Behavior:     2,
	})

	assert.InDelta(t, 59.41, score, 0.01)
	assert.Equal(t, models.RiskMedium, risk)
	assert.Equal(t, "No major concerns found", reason)
}

func TestComputeScoreDefaultsFamilySize(t *testing.T) {
	// Family size zero is treated as a single-member family, not a negative
	// adjustment to the socio-economic sub-scores.
	withZero, _, _ := ComputeScore(ScoreInput{Academic: 50, ParentIncome: 5000, FamilySize: 0, Motivation: 3, Behavior: 2})
	withOne, _, _ := ComputeScore(ScoreInput{Academic: 50, ParentIncome: 5000, FamilySize: 1, Motivation: 3, Behavior: 2})

	assert.Equal(t, withOne, withZero)
}

func TestComputeScoreRoundsToTwoDecimals(t *testing.T) {
	score, _, _ := ComputeScore(ScoreInput{
		Academic:     33.333,
		ParentIncome: 7777,
		FamilySize:   4,
		Motivation:   4,
		Behavior:     2,
	})

	assert.Equal(t, score, float64(int(score*100+0.5))/100)
}
