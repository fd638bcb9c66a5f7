package ledger

import (
	"context"
	"fmt"

	"haccp-ledger/internal/models"
	"haccp-ledger/internal/risk"
)

func hazardTarget(h models.Hazard) auditTarget {
	return auditTarget{module: models.ModuleHACCP, entityType: "hazard", label: "Hazard: " + h.Name}
}

// ListHazards returns hazards matching every supplied filter field.
func (l *Ledger) ListHazards(ctx context.Context, f models.HazardFilter) []models.Hazard {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := []models.Hazard{}
	for _, h := range l.hazards.all(ctx) {
		if matchExact(h.Type, f.Type) &&
			matchExact(h.Status, f.Status) &&
			matchExact(h.Severity, f.Severity) &&
			matchText(h.Responsible, f.Responsible) &&
			inDateRange(h.DateIdentified, f.DateFrom, f.DateTo) {
			out = append(out, h)
		}
	}
	return out
}

// CreateHazard assigns an id and computes the risk score.
func (l *Ledger) CreateHazard(ctx context.Context, in models.HazardInput) (models.Hazard, Outcome) {
	if err := in.Validate(); err != nil {
		return models.Hazard{}, invalid(err)
	}
	score, err := risk.Score(in.Severity, in.Likelihood)
	if err != nil {
		return models.Hazard{}, invalid(err)
	}
	h := models.Hazard{
		ID:              l.newID(),
		Name:            in.Name,
		Type:            in.Type,
		Description:     in.Description,
		Severity:        in.Severity,
		Likelihood:      in.Likelihood,
		RiskScore:       score,
		ControlMeasures: nonNil(in.ControlMeasures),
		Responsible:     in.Responsible,
		DateIdentified:  in.DateIdentified,
		Status:          in.Status,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return h, insert(ctx, l, l.hazards, h, hazardTarget(h))
}

// UpdateHazard overwrites only the supplied fields and recomputes the risk score.
func (l *Ledger) UpdateHazard(ctx context.Context, id string, p models.HazardPatch) (models.Hazard, Outcome) {
	if err := p.Validate(); err != nil {
		return models.Hazard{}, invalid(err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return modify(ctx, l, l.hazards, id, p.Changes(), func(h *models.Hazard) auditTarget {
		applyHazardPatch(h, p)
		return hazardTarget(*h)
	})
}

func applyHazardPatch(h *models.Hazard, p models.HazardPatch) {
	setIf(&h.Name, p.Name)
	setIf(&h.Type, p.Type)
	setIf(&h.Description, p.Description)
	setIf(&h.Severity, p.Severity)
	setIf(&h.Likelihood, p.Likelihood)
	setIf(&h.ControlMeasures, p.ControlMeasures)
	setIf(&h.Responsible, p.Responsible)
	setIf(&h.DateIdentified, p.DateIdentified)
	setIf(&h.Status, p.Status)
	h.ControlMeasures = nonNil(h.ControlMeasures)
	// both values are validated enums here, so Score cannot fail
	h.RiskScore, _ = risk.Score(h.Severity, h.Likelihood)
}

// DeleteHazard removes a hazard unless a CCP still references it.
func (l *Ledger) DeleteHazard(ctx context.Context, id string) (bool, Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ccps, read := l.ccps.load(ctx)
	if read.Degraded() {
		return false, unreadable(l, l.ccps.key, read)
	}
	refs := 0
	for _, c := range ccps {
		if c.HazardID == id {
			refs++
		}
	}
	if refs > 0 && l.hazards.indexOf(l.hazards.all(ctx), id) >= 0 {
		return false, Outcome{
			Status: StatusConflict,
			Err:    fmt.Errorf("hazard %s is referenced by %d critical control point(s)", id, refs),
		}
	}
	return remove(ctx, l, l.hazards, id, hazardTarget)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
