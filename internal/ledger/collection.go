package ledger

import (
	"context"
	"slices"

	"haccp-ledger/internal/models"
	"haccp-ledger/internal/storage"

	"go.uber.org/zap"
)

// collection reads and writes one entity type as a whole JSON array.
type collection[T any] struct {
	kv   *storage.Store
	key  string
	seed []T
	id   func(T) string
}

func newCollection[T any](kv *storage.Store, key string, seed []T, id func(T) string) collection[T] {
	return collection[T]{kv: kv, key: key, seed: seed, id: id}
}

// load reads the collection; a never-written or unreadable key yields the seed.
// Only an OK or Missing outcome may be written back: saving after a degraded
// read would replace whatever the backend still holds.
func (c collection[T]) load(ctx context.Context) ([]T, storage.Outcome) {
	items, out := storage.GetJSON(ctx, c.kv, c.key, slices.Clone(c.seed))
	if items == nil {
		items = []T{}
	}
	return items, out
}

func (c collection[T]) all(ctx context.Context) []T {
	items, _ := c.load(ctx)
	return items
}

func (c collection[T]) save(ctx context.Context, items []T) storage.Outcome {
	return c.kv.SetJSON(ctx, c.key, items)
}

func (c collection[T]) indexOf(items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool { return c.id(item) == id })
}

// auditTarget names what a mutation touched for its audit entry.
type auditTarget struct {
	module     models.AuditModule
	entityType string
	label      string
}

func insert[T any](ctx context.Context, l *Ledger, c collection[T], rec T, t auditTarget) Outcome {
	items, read := c.load(ctx)
	if read.Degraded() {
		return unreadable(l, c.key, read)
	}
	persisted := c.save(ctx, append(items, rec))
	_, audited := l.audit.append(ctx, models.AuditInput{
		Module:     t.module,
		User:       actorFrom(ctx),
		Action:     "Created " + t.entityType,
		Details:    t.label,
		Severity:   models.AuditInfo,
		Category:   models.CategoryCreate,
		EntityType: t.entityType,
		EntityID:   c.id(rec),
	})
	return outcomeOf(persisted, audited)
}

// modify applies fn to the record with id and persists the collection.
// fn returns the audit target describing the merged record.
func modify[T any](ctx context.Context, l *Ledger, c collection[T], id string, changes map[string]any, fn func(*T) auditTarget) (T, Outcome) {
	items, read := c.load(ctx)
	if read.Degraded() {
		var zero T
		return zero, unreadable(l, c.key, read)
	}
	i := c.indexOf(items, id)
	if i < 0 {
		var zero T
		return zero, Outcome{Status: StatusNotFound}
	}
	t := fn(&items[i])
	persisted := c.save(ctx, items)
	_, audited := l.audit.append(ctx, models.AuditInput{
		Module:     t.module,
		User:       actorFrom(ctx),
		Action:     "Updated " + t.entityType,
		Details:    t.label,
		Severity:   models.AuditInfo,
		Category:   models.CategoryUpdate,
		EntityType: t.entityType,
		EntityID:   id,
		Changes:    changes,
	})
	return items[i], outcomeOf(persisted, audited)
}

// remove deletes the record with id; target describes it for the audit entry.
func remove[T any](ctx context.Context, l *Ledger, c collection[T], id string, target func(T) auditTarget) (bool, Outcome) {
	items, read := c.load(ctx)
	if read.Degraded() {
		return false, unreadable(l, c.key, read)
	}
	i := c.indexOf(items, id)
	if i < 0 {
		return false, Outcome{Status: StatusNotFound}
	}
	t := target(items[i])
	items = slices.Delete(items, i, i+1)
	persisted := c.save(ctx, items)
	_, audited := l.audit.append(ctx, models.AuditInput{
		Module:     t.module,
		User:       actorFrom(ctx),
		Action:     "Deleted " + t.entityType,
		Details:    t.label,
		Severity:   models.AuditWarning,
		Category:   models.CategoryDelete,
		EntityType: t.entityType,
		EntityID:   id,
	})
	return true, outcomeOf(persisted, audited)
}

// unreadable refuses a mutation whose collection could not be read. Nothing
// is written and no audit entry is emitted.
func unreadable(l *Ledger, key string, read storage.Outcome) Outcome {
	l.log.Warn("mutation dropped, collection unreadable", zap.String("key", key), zap.Error(read.Err))
	return Outcome{Status: StatusDegraded, Err: read.Err}
}

func invalid(err error) Outcome {
	return Outcome{Status: StatusInvalid, Err: err}
}
