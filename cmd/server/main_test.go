package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"haccp-ledger/internal/ledger"
	"haccp-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inMemoryEnv(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("LOG_LEVEL", "error")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStatsCommand(t *testing.T) {
	inMemoryEnv(t)

	out, err := execute(t, "stats")
	require.NoError(t, err)

	var stats models.ComplianceStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats.TotalHazards)
	assert.Equal(t, 2, stats.TotalCCPs)
	assert.Equal(t, 50, stats.ComplianceScore)
}

func TestExportCommandWritesFile(t *testing.T) {
	inMemoryEnv(t)
	path := filepath.Join(t.TempDir(), "ledger.json")

	_, err := execute(t, "export", "--format", "json", "--output", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap ledger.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Equal(t, "fallback", snap.Storage)
	assert.Len(t, snap.Hazards, 3)
	assert.Len(t, snap.CCPs, 2)
}

func TestExportCommandRejectsUnknownFormat(t *testing.T) {
	inMemoryEnv(t)
	_, err := execute(t, "export", "--format", "csv", "--output", "-")
	assert.Error(t, err)
}

func TestServeRequiresSecrets(t *testing.T) {
	inMemoryEnv(t)
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("ADMIN_PASSWORD", "pw")

	_, err := execute(t, "serve")
	assert.ErrorContains(t, err, "SESSION_SECRET")
}

// shortDisk accepts writes and fails on close, like a full disk flushing late.
type shortDisk struct {
	bytes.Buffer
	closed bool
}

func (d *shortDisk) Close() error {
	d.closed = true
	return errors.New("no space left on device")
}

func TestExportReportsCloseFailure(t *testing.T) {
	d := &shortDisk{}
	err := exportTo(d, ledger.Snapshot{}, "json")
	assert.ErrorContains(t, err, "no space left on device")
	assert.True(t, d.closed)
	assert.NotZero(t, d.Len())
}

func TestExportKeepsWriteErrorOverCloseError(t *testing.T) {
	d := &shortDisk{}
	err := exportTo(d, ledger.Snapshot{}, "csv")
	assert.ErrorContains(t, err, "csv")
	assert.True(t, d.closed)
}
