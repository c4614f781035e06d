package models

type RiskSummary struct {
	Low    int `json:"lowRisk"`
	Medium int `json:"mediumRisk"`
	High   int `json:"highRisk"`
	Other  int `json:"other"`
}

// SummarizeRisk counts students per risk category. Labels outside the three
// known categories land in Other.
func SummarizeRisk(students []Student) RiskSummary {
	var summary RiskSummary
	for _, s := range students {
		switch s.Risk {
		case RiskLow:
			summary.Low++
		case RiskMedium:
			summary.Medium++
		case RiskHigh:
			summary.High++
		default:
			summary.Other++
		}
	}
	return summary
}
