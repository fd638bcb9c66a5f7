package ledger

import (
	"context"

	"haccp-ledger/internal/models"
)

func ccpTarget(c models.CCP) auditTarget {
	return auditTarget{module: models.ModuleHACCP, entityType: "ccp", label: "CCP: " + c.Step}
}

// ListCCPs resolves each CCP's hazard name against the live hazards, then filters.
func (l *Ledger) ListCCPs(ctx context.Context, f models.CCPFilter) []models.CCP {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make(map[string]string)
	for _, h := range l.hazards.all(ctx) {
		names[h.ID] = h.Name
	}

	out := []models.CCP{}
	for _, c := range l.ccps.all(ctx) {
		name, ok := names[c.HazardID]
		c.HazardName, c.Orphaned = name, !ok

		if matchExact(c.HazardID, f.HazardID) &&
			matchExact(c.Status, f.Status) &&
			matchExact(c.Compliance, f.Compliance) &&
			matchText(c.Responsible, f.Responsible) &&
			inDateRange(c.DateEstablished, f.DateFrom, f.DateTo) {
			out = append(out, c)
		}
	}
	return out
}

// CreateCCP does not require the referenced hazard to exist.
func (l *Ledger) CreateCCP(ctx context.Context, in models.CCPInput) (models.CCP, Outcome) {
	if err := in.Validate(); err != nil {
		return models.CCP{}, invalid(err)
	}
	c := models.CCP{
		ID:                  l.newID(),
		HazardID:            in.HazardID,
		Step:                in.Step,
		CriticalLimit:       in.CriticalLimit,
		MonitoringFrequency: in.MonitoringFrequency,
		MonitoringMethod:    in.MonitoringMethod,
		CorrectiveActions:   nonNil(in.CorrectiveActions),
		Verification:        in.Verification,
		RecordKeeping:       in.RecordKeeping,
		Responsible:         in.Responsible,
		DateEstablished:     in.DateEstablished,
		Status:              in.Status,
		LastMonitored:       in.LastMonitored,
		Compliance:          in.Compliance,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	out := insert(ctx, l, l.ccps, c, ccpTarget(c))
	return l.resolveHazard(ctx, c), out
}

func (l *Ledger) UpdateCCP(ctx context.Context, id string, p models.CCPPatch) (models.CCP, Outcome) {
	if err := p.Validate(); err != nil {
		return models.CCP{}, invalid(err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	c, out := modify(ctx, l, l.ccps, id, p.Changes(), func(c *models.CCP) auditTarget {
		applyCCPPatch(c, p)
		return ccpTarget(*c)
	})
	if out.Status == StatusNotFound {
		return c, out
	}
	return l.resolveHazard(ctx, c), out
}

func applyCCPPatch(c *models.CCP, p models.CCPPatch) {
	setIf(&c.HazardID, p.HazardID)
	setIf(&c.Step, p.Step)
	setIf(&c.CriticalLimit, p.CriticalLimit)
	setIf(&c.MonitoringFrequency, p.MonitoringFrequency)
	setIf(&c.MonitoringMethod, p.MonitoringMethod)
	setIf(&c.CorrectiveActions, p.CorrectiveActions)
	setIf(&c.Verification, p.Verification)
	setIf(&c.RecordKeeping, p.RecordKeeping)
	setIf(&c.Responsible, p.Responsible)
	setIf(&c.DateEstablished, p.DateEstablished)
	setIf(&c.Status, p.Status)
	setIf(&c.LastMonitored, p.LastMonitored)
	setIf(&c.Compliance, p.Compliance)
	c.CorrectiveActions = nonNil(c.CorrectiveActions)
	// never persist the join
	c.HazardName, c.Orphaned = "", false
}

func (l *Ledger) DeleteCCP(ctx context.Context, id string) (bool, Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return remove(ctx, l, l.ccps, id, ccpTarget)
}

func (l *Ledger) resolveHazard(ctx context.Context, c models.CCP) models.CCP {
	hazards := l.hazards.all(ctx)
	if i := l.hazards.indexOf(hazards, c.HazardID); i >= 0 {
		c.HazardName, c.Orphaned = hazards[i].Name, false
	} else {
		c.HazardName, c.Orphaned = "", true
	}
	return c
}
