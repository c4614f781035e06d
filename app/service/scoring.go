package service

import (
	"strings"

	"dropout-risk-dashboard/app/models"
	"dropout-risk-dashboard/utils"
)

// Component weights: academic 30%, socio-economic 30%, motivation 20%, behavior 20%.
const (
	weightAcademic   = 0.30
	weightSocio      = 0.30
	weightMotivation = 0.20
	weightBehavior   = 0.20
)

// incomeReference is the monthly income at which financial need bottoms out.
const incomeReference = 20000.0

type ScoreInput struct {
	Academic     float64 // percentage 0-100
	ParentIncome float64 // monthly income
	FamilySize   int
	Motivation   float64 // 1 (low) - 5 (high)
	Behavior     float64 // 1 (weak) - 3 (good)
}

// ComputeScore derives the retention score, risk category and an explainable
// reason string from the intake fields.
//
// The socio-economic component is built from two sub-scores: need (lower income
// and larger family mean more need) and stability (higher income and smaller
// family mean more stability). Low stability raises dropout risk even when the
// student is academically sound.
func ComputeScore(in ScoreInput) (score float64, risk string, reason string) {
	familySize := in.FamilySize
	if familySize < 1 {
		familySize = 1
	}

	income := in.ParentIncome
	if income < 1 {
		income = 1
	}

	need := utils.Clamp(100-(income/incomeReference)*100, 0, 100)
	need = utils.Clamp(need+float64(familySize-1)*5, 0, 100)

	stability := utils.Clamp((income/incomeReference)*100, 0, 100)
	stability = utils.Clamp(stability-float64(familySize-1)*3, 0, 100)

	academicComp := utils.Clamp(in.Academic, 0, 100)
	socioComp := need*0.6 + stability*0.4
	motivationComp := utils.Clamp((in.Motivation/5.0)*100, 0, 100)
	behaviorComp := utils.Clamp((in.Behavior/3.0)*100, 0, 100)

	score = academicComp*weightAcademic +
		socioComp*weightSocio +
		motivationComp*weightMotivation +
		behaviorComp*weightBehavior
	score = utils.Round2(score)

	switch {
	case score >= 70:
		risk = models.RiskLow
	case score >= 45:
		risk = models.RiskMedium
	default:
		risk = models.RiskHigh
	}

	var reasons []string
	if academicComp < 50 {
		reasons = append(reasons, "Weak academic performance")
	}
	if motivationComp < 50 {
		reasons = append(reasons, "Low motivation")
	}
	if behaviorComp < 50 {
		reasons = append(reasons, "Behavior concerns")
	}
	if stability < 30 {
		reasons = append(reasons, "Financial instability")
	}
	if need > 70 && stability < 40 {
		reasons = append(reasons, "High financial need (deserving) but unstable resources")
	}
	if len(reasons) == 0 {
		reasons = []string{"No major concerns found"}
	}

	return score, risk, strings.Join(reasons, " + ")
}
