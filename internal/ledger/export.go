package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"haccp-ledger/internal/models"

	"gopkg.in/yaml.v3"
)

// Snapshot is every collection read under a single lock acquisition, for
// offline inspection and hand-off to external auditors.
type Snapshot struct {
	TakenAt         time.Time               `json:"takenAt"`
	Storage         string                  `json:"storage"`
	Stats           models.ComplianceStats  `json:"stats"`
	Hazards         []models.Hazard         `json:"hazards"`
	CCPs            []models.CCP            `json:"ccps"`
	ISOStandards    []models.ISOStandard    `json:"isoStandards"`
	QualityChecks   []models.QualityCheck   `json:"qualityChecks"`
	TrainingRecords []models.TrainingRecord `json:"trainingRecords"`
	Documents       []models.Document       `json:"documents"`
	AuditLogs       []models.AuditLogEntry  `json:"auditLogs"`
}

func (l *Ledger) Snapshot(ctx context.Context) Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	hazards := l.hazards.all(ctx)
	names := make(map[string]string, len(hazards))
	for _, h := range hazards {
		names[h.ID] = h.Name
	}
	ccps := l.ccps.all(ctx)
	for i := range ccps {
		name, ok := names[ccps[i].HazardID]
		ccps[i].HazardName, ccps[i].Orphaned = name, !ok
	}
	logs := l.audit.logs.all(ctx)

	return Snapshot{
		TakenAt:         l.now(),
		Storage:         string(l.kv.Mode(ctx)),
		Stats:           ComputeStats(hazards, ccps, logs),
		Hazards:         hazards,
		CCPs:            ccps,
		ISOStandards:    l.iso.all(ctx),
		QualityChecks:   l.quality.all(ctx),
		TrainingRecords: l.training.all(ctx),
		Documents:       l.documents.all(ctx),
		AuditLogs:       logs,
	}
}

// WriteSnapshot encodes s as "json" or "yaml". YAML output keeps the JSON
// field names.
func WriteSnapshot(w io.Writer, s Snapshot, format string) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	switch format {
	case "json", "":
		_, err = w.Write(append(raw, '\n'))
		return err
	case "yaml", "yml":
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode snapshot as yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
}
