// Package ledger is the food-safety compliance ledger: hazards, critical
// control points, ISO standards and supporting records, each persisted as one
// JSON collection, with every mutation recorded in an append-only audit log.
package ledger

import (
	"context"
	"sync"
	"time"

	"haccp-ledger/internal/models"
	"haccp-ledger/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Storage keys, one JSON array per entity type.
const (
	KeyHazards       = "compliance_hazards"
	KeyCCPs          = "compliance_ccps"
	KeyAuditLogs     = "compliance_audit_logs"
	KeyISOStandards  = "compliance_iso_standards"
	KeyQualityChecks = "compliance_quality_checks"
	KeyTraining      = "compliance_training"
	KeyDocuments     = "compliance_documents"
)

type Status string

const (
	StatusApplied  Status = "applied"
	StatusNotFound Status = "not_found"
	StatusInvalid  Status = "invalid"
	StatusConflict Status = "conflict"
	// StatusDegraded means the mutation was accepted but storage failed to
	// read or persist its collection, so the change is not stored.
	StatusDegraded Status = "degraded"
)

// Outcome describes the result of a mutation. Audited is false when the
// audit entry was not emitted or could not be persisted.
type Outcome struct {
	Status  Status `json:"status"`
	Audited bool   `json:"audited"`
	Err     error  `json:"-"`
}

// Applied reports whether the mutation was accepted, stored or not.
func (o Outcome) Applied() bool {
	return o.Status == StatusApplied || o.Status == StatusDegraded
}

func outcomeOf(persisted, audited storage.Outcome) Outcome {
	if !persisted.OK() {
		return Outcome{Status: StatusDegraded, Audited: audited.OK(), Err: persisted.Err}
	}
	return Outcome{Status: StatusApplied, Audited: audited.OK(), Err: audited.Err}
}

type Option func(*Ledger)

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

func WithLogger(log *zap.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// WithSeed controls whether never-initialized collections read as demonstration data.
func WithSeed(seed bool) Option {
	return func(l *Ledger) { l.seed = seed }
}

// Ledger owns every compliance collection. All reads and read-modify-writes
// run under one mutex, so concurrent callers behave as a single actor.
type Ledger struct {
	mu    sync.Mutex
	kv    *storage.Store
	log   *zap.Logger
	now   func() time.Time
	newID func() string
	seed  bool

	hazards   collection[models.Hazard]
	ccps      collection[models.CCP]
	iso       collection[models.ISOStandard]
	quality   collection[models.QualityCheck]
	training  collection[models.TrainingRecord]
	documents collection[models.Document]
	audit     *AuditLogger
}

func New(kv *storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		kv:    kv,
		log:   zap.NewNop(),
		now:   func() time.Time { return time.Now().UTC().Round(0) },
		newID: uuid.NewString,
		seed:  true,
	}
	for _, opt := range opts {
		opt(l)
	}

	var seeds seedSet
	if l.seed {
		seeds = demoSeeds()
	}
	l.hazards = newCollection(kv, KeyHazards, seeds.hazards, func(h models.Hazard) string { return h.ID })
	l.ccps = newCollection(kv, KeyCCPs, seeds.ccps, func(c models.CCP) string { return c.ID })
	l.iso = newCollection(kv, KeyISOStandards, seeds.iso, func(s models.ISOStandard) string { return s.ID })
	l.quality = newCollection(kv, KeyQualityChecks, nil, func(q models.QualityCheck) string { return q.ID })
	l.training = newCollection(kv, KeyTraining, nil, func(r models.TrainingRecord) string { return r.ID })
	l.documents = newCollection(kv, KeyDocuments, nil, func(d models.Document) string { return d.ID })
	l.audit = &AuditLogger{
		logs:  newCollection(kv, KeyAuditLogs, nil, func(e models.AuditLogEntry) string { return e.ID }),
		now:   l.now,
		newID: l.newID,
		log:   l.log,
	}
	return l
}

// Diagnostics exposes the storage backend state.
func (l *Ledger) Diagnostics(ctx context.Context) storage.Diagnostics {
	return l.kv.Diagnostics(ctx)
}

type actorKey struct{}

// DefaultActor is recorded as the audit user when the context carries none.
const DefaultActor = "system"

// WithActor returns a context whose mutations are audited as user.
func WithActor(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, actorKey{}, user)
}

func actorFrom(ctx context.Context) string {
	if u, ok := ctx.Value(actorKey{}).(string); ok && u != "" {
		return u
	}
	return DefaultActor
}
