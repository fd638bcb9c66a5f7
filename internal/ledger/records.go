package ledger

import (
	"context"

	"haccp-ledger/internal/models"
)

// Quality checks, training records and documents start empty and support
// list and create only.

func (l *Ledger) ListQualityChecks(ctx context.Context) []models.QualityCheck {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.quality.all(ctx)
}

func (l *Ledger) CreateQualityCheck(ctx context.Context, in models.QualityCheckInput) (models.QualityCheck, Outcome) {
	if err := in.Validate(); err != nil {
		return models.QualityCheck{}, invalid(err)
	}
	q := models.QualityCheck{
		ID:        l.newID(),
		Product:   in.Product,
		Parameter: in.Parameter,
		Value:     in.Value,
		Passed:    in.Passed,
		Inspector: in.Inspector,
		CheckedOn: in.CheckedOn,
		Notes:     in.Notes,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return q, insert(ctx, l, l.quality, q, auditTarget{
		module:     models.ModuleGeneral,
		entityType: "quality_check",
		label:      q.Product + ": " + q.Parameter,
	})
}

func (l *Ledger) ListTrainingRecords(ctx context.Context) []models.TrainingRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.training.all(ctx)
}

func (l *Ledger) CreateTrainingRecord(ctx context.Context, in models.TrainingRecordInput) (models.TrainingRecord, Outcome) {
	if err := in.Validate(); err != nil {
		return models.TrainingRecord{}, invalid(err)
	}
	r := models.TrainingRecord{
		ID:          l.newID(),
		Employee:    in.Employee,
		Course:      in.Course,
		CompletedOn: in.CompletedOn,
		ValidUntil:  in.ValidUntil,
		Trainer:     in.Trainer,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return r, insert(ctx, l, l.training, r, auditTarget{
		module:     models.ModuleGeneral,
		entityType: "training",
		label:      r.Employee + ": " + r.Course,
	})
}

func (l *Ledger) ListDocuments(ctx context.Context) []models.Document {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.documents.all(ctx)
}

func (l *Ledger) CreateDocument(ctx context.Context, in models.DocumentInput) (models.Document, Outcome) {
	if err := in.Validate(); err != nil {
		return models.Document{}, invalid(err)
	}
	d := models.Document{
		ID:        l.newID(),
		Title:     in.Title,
		Module:    in.Module,
		Revision:  in.Revision,
		Owner:     in.Owner,
		IssuedOn:  in.IssuedOn,
		ReviewDue: in.ReviewDue,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return d, insert(ctx, l, l.documents, d, auditTarget{
		module:     models.ModuleGeneral,
		entityType: "document",
		label:      d.Title + " rev " + d.Revision,
	})
}
