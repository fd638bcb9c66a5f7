package ledger

import (
	"context"

	"haccp-ledger/internal/models"
)

func isoTarget(s models.ISOStandard) auditTarget {
	return auditTarget{module: models.ModuleISO, entityType: "iso_standard", label: s.Code + " " + s.Title}
}

func (l *Ledger) ListISOStandards(ctx context.Context) []models.ISOStandard {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.iso.all(ctx)
}

func (l *Ledger) CreateISOStandard(ctx context.Context, in models.ISOStandardInput) (models.ISOStandard, Outcome) {
	if err := in.Validate(); err != nil {
		return models.ISOStandard{}, invalid(err)
	}
	s := models.ISOStandard{
		ID:                l.newID(),
		Code:              in.Code,
		Title:             in.Title,
		Version:           in.Version,
		Status:            in.Status,
		CertificationBody: in.CertificationBody,
		CertifiedOn:       in.CertifiedOn,
		ExpiresOn:         in.ExpiresOn,
		Progress:          in.Progress,
		Responsible:       in.Responsible,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return s, insert(ctx, l, l.iso, s, isoTarget(s))
}

func (l *Ledger) UpdateISOStandard(ctx context.Context, id string, p models.ISOStandardPatch) (models.ISOStandard, Outcome) {
	if err := p.Validate(); err != nil {
		return models.ISOStandard{}, invalid(err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return modify(ctx, l, l.iso, id, p.Changes(), func(s *models.ISOStandard) auditTarget {
		setIf(&s.Title, p.Title)
		setIf(&s.Version, p.Version)
		setIf(&s.Status, p.Status)
		setIf(&s.CertificationBody, p.CertificationBody)
		setIf(&s.CertifiedOn, p.CertifiedOn)
		setIf(&s.ExpiresOn, p.ExpiresOn)
		setIf(&s.Progress, p.Progress)
		setIf(&s.Responsible, p.Responsible)
		return isoTarget(*s)
	})
}
