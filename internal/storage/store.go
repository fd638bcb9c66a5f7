package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// probeKey is written then removed once to decide whether the durable backend is usable.
const probeKey = "__compliance_storage_probe__"

type Mode string

const (
	ModeDurable  Mode = "durable"
	ModeFallback Mode = "fallback"
)

type Status int

const (
	StatusOK Status = iota
	// StatusMissing means the key was never set.
	StatusMissing
	// StatusDegraded means the backend failed and the call was turned into a no-op.
	StatusDegraded
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusDegraded:
		return "degraded"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Outcome reports what a Store call actually did.
type Outcome struct {
	Status Status
	Err    error
}

func (o Outcome) OK() bool       { return o.Status == StatusOK }
func (o Outcome) Degraded() bool { return o.Status == StatusDegraded }

type Diagnostics struct {
	Mode          Mode   `json:"mode"`
	ProbeError    string `json:"probeError,omitempty"`
	DegradedCalls int64  `json:"degradedCalls"`
	LastError     string `json:"lastError,omitempty"`
}

// Store wraps a durable Backend with a one-time availability probe and an
// in-process fallback. No method returns an error: failures degrade the call
// and are reported through Outcome and Diagnostics.
type Store struct {
	durable Backend
	log     *zap.Logger

	once     sync.Once
	active   Backend
	mode     Mode
	probeErr error

	mu       sync.Mutex
	degraded int64
	lastErr  error
}

// New returns a Store over durable, which may be nil when none is configured.
func New(durable Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{durable: durable, log: log}
}

func (s *Store) backend(ctx context.Context) Backend {
	s.once.Do(func() {
		// selection is process-wide; the first caller's cancellation does not apply
		err := probe(context.WithoutCancel(ctx), s.durable)
		if err == nil {
			s.active, s.mode = s.durable, ModeDurable
			s.log.Info("storage backend selected", zap.String("mode", string(ModeDurable)))
			return
		}
		s.active, s.mode, s.probeErr = NewMemoryBackend(), ModeFallback, err
		s.log.Warn("durable storage unavailable, using in-process fallback for the rest of the process",
			zap.Error(err))
	})
	return s.active
}

func probe(ctx context.Context, b Backend) error {
	if b == nil {
		return fmt.Errorf("%w: none configured", ErrUnavailable)
	}
	if err := b.Set(ctx, probeKey, []byte(`"probe"`)); err != nil {
		return fmt.Errorf("%w: probe write: %w", ErrUnavailable, err)
	}
	if err := b.Remove(ctx, probeKey); err != nil {
		return fmt.Errorf("%w: probe delete: %w", ErrUnavailable, err)
	}
	return nil
}

// Mode reports the selected backend, probing first if nothing has been selected yet.
func (s *Store) Mode(ctx context.Context) Mode {
	s.backend(ctx)
	return s.mode
}

func (s *Store) Diagnostics(ctx context.Context) Diagnostics {
	s.backend(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	d := Diagnostics{Mode: s.mode, DegradedCalls: s.degraded}
	if s.probeErr != nil {
		d.ProbeError = s.probeErr.Error()
	}
	if s.lastErr != nil {
		d.LastError = s.lastErr.Error()
	}
	return d
}

func (s *Store) degrade(op, key string, err error) Outcome {
	s.mu.Lock()
	s.degraded++
	s.lastErr = err
	s.mu.Unlock()
	s.log.Warn("storage call degraded", zap.String("op", op), zap.String("key", key), zap.Error(err))
	return Outcome{Status: StatusDegraded, Err: err}
}

// Get returns nil with StatusMissing for unset keys and StatusDegraded on backend failure.
func (s *Store) Get(ctx context.Context, key string) ([]byte, Outcome) {
	v, err := s.backend(ctx).Get(ctx, key)
	switch {
	case err == nil:
		return v, Outcome{Status: StatusOK}
	case errors.Is(err, ErrNotFound):
		return nil, Outcome{Status: StatusMissing}
	default:
		return nil, s.degrade("get", key, fmt.Errorf("%w: %w", ErrRead, err))
	}
}

func (s *Store) Set(ctx context.Context, key string, value []byte) Outcome {
	if err := s.backend(ctx).Set(ctx, key, value); err != nil {
		return s.degrade("set", key, fmt.Errorf("%w: %w", ErrWrite, err))
	}
	return Outcome{Status: StatusOK}
}

func (s *Store) Remove(ctx context.Context, key string) Outcome {
	if err := s.backend(ctx).Remove(ctx, key); err != nil {
		return s.degrade("remove", key, fmt.Errorf("%w: %w", ErrWrite, err))
	}
	return Outcome{Status: StatusOK}
}

func (s *Store) Clear(ctx context.Context) Outcome {
	if err := s.backend(ctx).Clear(ctx); err != nil {
		return s.degrade("clear", "*", fmt.Errorf("%w: %w", ErrWrite, err))
	}
	return Outcome{Status: StatusOK}
}

// GetJSON decodes the value at key. Missing, unreadable and undecodable values
// all yield def.
func GetJSON[T any](ctx context.Context, s *Store, key string, def T) (T, Outcome) {
	raw, out := s.Get(ctx, key)
	if !out.OK() {
		return def, out
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, s.degrade("decode", key, fmt.Errorf("%w: %w", ErrParse, err))
	}
	return v, out
}

func (s *Store) SetJSON(ctx context.Context, key string, value any) Outcome {
	raw, err := json.Marshal(value)
	if err != nil {
		return s.degrade("encode", key, fmt.Errorf("%w: %w", ErrWrite, err))
	}
	return s.Set(ctx, key, raw)
}
