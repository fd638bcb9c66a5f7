package ledger

import (
	"context"
	"testing"

	"haccp-ledger/internal/models"
	"haccp-ledger/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatsEmptyCollections(t *testing.T) {
	s := ComputeStats(nil, nil, nil)
	assert.Equal(t, models.ComplianceStats{}, s)
	assert.Zero(t, s.ComplianceScore)
}

func TestComputeStatsCounts(t *testing.T) {
	hazards := []models.Hazard{
		{Status: models.HazardActive, Severity: models.SeverityCritical},
		{Status: models.HazardActive, Severity: models.SeverityLow},
		{Status: models.HazardResolved, Severity: models.SeverityCritical},
	}
	ccps := []models.CCP{
		{Compliance: models.Compliant},
		{Compliance: models.Compliant},
		{Compliance: models.NonCompliant},
	}
	logs := []models.AuditLogEntry{
		{Action: "Scheduled internal audit", Severity: models.AuditWarning},
		{Action: "Scheduled internal audit", Severity: models.AuditInfo},
		{Action: "Supplier Audit overdue", Severity: models.AuditWarning},
		{Action: "Deleted hazard", Severity: models.AuditWarning},
	}

	s := ComputeStats(hazards, ccps, logs)
	assert.Equal(t, models.ComplianceStats{
		TotalHazards:     3,
		ActiveHazards:    2,
		CriticalHazards:  2,
		TotalCCPs:        3,
		CompliantCCPs:    2,
		NonCompliantCCPs: 1,
		PendingAudits:    1,
		ComplianceScore:  67,
	}, s)
}

func TestStatsFromSeededLedger(t *testing.T) {
	ctx := context.Background()
	l := New(storage.New(storage.NewMemoryBackend(), nil))

	s := l.Stats(ctx)
	assert.Equal(t, 3, s.TotalHazards)
	assert.Equal(t, 1, s.ActiveHazards)
	assert.Equal(t, 1, s.CriticalHazards)
	assert.Equal(t, 2, s.TotalCCPs)
	assert.Equal(t, 50, s.ComplianceScore)
}

func TestStatsWithNoCCPs(t *testing.T) {
	ctx := context.Background()
	l := New(storage.New(storage.NewMemoryBackend(), nil), WithSeed(false))
	l.CreateHazard(ctx, sampleHazard())

	s := l.Stats(ctx)
	assert.Equal(t, 1, s.TotalHazards)
	assert.Zero(t, s.TotalCCPs)
	assert.Zero(t, s.ComplianceScore)
}
