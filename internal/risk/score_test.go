package risk

import (
	"errors"
	"testing"

	"haccp-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBoundsAndMonotonicity(t *testing.T) {
	for si, s := range models.Severities {
		for li, l := range models.Likelihoods {
			got, err := Score(s, l)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, MinScore)
			assert.LessOrEqual(t, got, MaxScore)

			if si > 0 {
				prev, _ := Score(models.Severities[si-1], l)
				assert.GreaterOrEqual(t, got, prev, "severity %s/%s", s, l)
			}
			if li > 0 {
				prev, _ := Score(s, models.Likelihoods[li-1])
				assert.GreaterOrEqual(t, got, prev, "likelihood %s/%s", s, l)
			}
		}
	}
}

func TestScoreKnownValues(t *testing.T) {
	cases := []struct {
		s    models.Severity
		l    models.Likelihood
		want int
	}{
		{models.SeverityLow, models.LikelihoodRare, 1},
		{models.SeverityCritical, models.LikelihoodPossible, 12},
		{models.SeverityCritical, models.LikelihoodAlmostCertain, 20},
		{models.SeverityMedium, models.LikelihoodLikely, 8},
	}
	for _, tc := range cases {
		got, err := Score(tc.s, tc.l)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestScoreRejectsUnknownValues(t *testing.T) {
	_, err := Score("Extreme", models.LikelihoodRare)
	assert.True(t, errors.Is(err, models.ErrInvalidEnum))

	_, err = Score(models.SeverityLow, "Sometimes")
	assert.True(t, errors.Is(err, models.ErrInvalidEnum))
}
