package ledger

import (
	"context"
	"math"
	"strings"

	"haccp-ledger/internal/models"
)

// Stats recomputes the compliance summary from freshly loaded collections.
func (l *Ledger) Stats(ctx context.Context) models.ComplianceStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ComputeStats(l.hazards.all(ctx), l.ccps.all(ctx), l.audit.logs.all(ctx))
}

// ComputeStats counts hazards, CCPs and pending audits. An audit entry is
// pending when its action contains "audit" (case-sensitive) and its severity
// is Warning.
func ComputeStats(hazards []models.Hazard, ccps []models.CCP, logs []models.AuditLogEntry) models.ComplianceStats {
	var s models.ComplianceStats

	s.TotalHazards = len(hazards)
	for _, h := range hazards {
		if h.Status == models.HazardActive {
			s.ActiveHazards++
		}
		if h.Severity == models.SeverityCritical {
			s.CriticalHazards++
		}
	}

	s.TotalCCPs = len(ccps)
	for _, c := range ccps {
		switch c.Compliance {
		case models.Compliant:
			s.CompliantCCPs++
		case models.NonCompliant:
			s.NonCompliantCCPs++
		}
	}

	for _, e := range logs {
		if strings.Contains(e.Action, "audit") && e.Severity == models.AuditWarning {
			s.PendingAudits++
		}
	}

	if s.TotalCCPs > 0 {
		s.ComplianceScore = int(math.Round(float64(s.CompliantCCPs) / float64(s.TotalCCPs) * 100))
	}
	return s
}
