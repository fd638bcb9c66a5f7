// Package risk maps hazard severity and likelihood to a bounded risk score.
package risk

import (
	"fmt"

	"haccp-ledger/internal/models"
)

const (
	MinScore = 1
	MaxScore = 20
)

var severityWeight = map[models.Severity]int{
	models.SeverityLow:      1,
	models.SeverityMedium:   2,
	models.SeverityHigh:     3,
	models.SeverityCritical: 4,
}

var likelihoodWeight = map[models.Likelihood]int{
	models.LikelihoodRare:          1,
	models.LikelihoodUnlikely:      2,
	models.LikelihoodPossible:      3,
	models.LikelihoodLikely:        4,
	models.LikelihoodAlmostCertain: 5,
}

// Score returns severityWeight × likelihoodWeight, always within [MinScore, MaxScore].
func Score(s models.Severity, l models.Likelihood) (int, error) {
	sw, ok := severityWeight[s]
	if !ok {
		return 0, fmt.Errorf("%w: severity %q", models.ErrInvalidEnum, s)
	}
	lw, ok := likelihoodWeight[l]
	if !ok {
		return 0, fmt.Errorf("%w: likelihood %q", models.ErrInvalidEnum, l)
	}
	return sw * lw, nil
}
