package ledger

import (
	"context"
	"sort"
	"time"

	"haccp-ledger/internal/models"
	"haccp-ledger/internal/storage"

	"go.uber.org/zap"
)

// AuditLogger is the append-only mutation log. It only appends and queries.
type AuditLogger struct {
	logs  collection[models.AuditLogEntry]
	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

// append prepends a new entry. Timestamps never go backwards relative to the
// newest stored entry, even if the clock does.
func (a *AuditLogger) append(ctx context.Context, in models.AuditInput) (models.AuditLogEntry, storage.Outcome) {
	logs, read := a.logs.load(ctx)
	if read.Degraded() {
		a.log.Warn("audit entry not persisted, stored log unreadable",
			zap.String("action", in.Action),
			zap.String("entityId", in.EntityID),
			zap.Error(read.Err))
		return models.AuditLogEntry{}, read
	}
	ts := a.now()
	if len(logs) > 0 && ts.Before(logs[0].Timestamp) {
		ts = logs[0].Timestamp
	}
	entry := models.AuditLogEntry{
		ID:         a.newID(),
		Timestamp:  ts,
		Module:     in.Module,
		User:       in.User,
		Action:     in.Action,
		Details:    in.Details,
		Severity:   in.Severity,
		Category:   in.Category,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		Changes:    in.Changes,
	}
	out := a.logs.save(ctx, append([]models.AuditLogEntry{entry}, logs...))
	if !out.OK() {
		a.log.Warn("audit entry not persisted",
			zap.String("action", entry.Action),
			zap.String("entityId", entry.EntityID),
			zap.Error(out.Err))
	}
	return entry, out
}

// query returns matching entries newest first.
func (a *AuditLogger) query(ctx context.Context, f models.AuditFilter) []models.AuditLogEntry {
	out := []models.AuditLogEntry{}
	for _, e := range a.logs.all(ctx) {
		if !matchExact(e.Module, f.Module) ||
			!matchExact(e.Severity, f.Severity) ||
			!matchExact(e.Category, f.Category) ||
			!matchExact(e.EntityType, f.EntityType) ||
			!matchText(e.User, f.User) ||
			!inDateRange(e.Timestamp.UTC().Format(models.DateLayout), f.DateFrom, f.DateTo) {
			continue
		}
		out = append(out, e)
	}
	// stable: entries sharing a timestamp keep their stored, newest-first order
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

// AppendAudit records an externally supplied event, e.g. an export or a scheduled audit.
func (l *Ledger) AppendAudit(ctx context.Context, in models.AuditInput) (models.AuditLogEntry, Outcome) {
	if err := in.Validate(); err != nil {
		return models.AuditLogEntry{}, invalid(err)
	}
	if in.User == "" {
		in.User = actorFrom(ctx)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, out := l.audit.append(ctx, in)
	if !out.OK() {
		return entry, Outcome{Status: StatusDegraded, Err: out.Err}
	}
	return entry, Outcome{Status: StatusApplied, Audited: true}
}

// AuditLog lists audit entries newest first.
func (l *Ledger) AuditLog(ctx context.Context, f models.AuditFilter) []models.AuditLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.audit.query(ctx, f)
}
