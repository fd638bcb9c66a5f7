package models

import "time"

type AuditModule string
type AuditSeverity string
type AuditCategory string

const (
	ModuleHACCP   AuditModule = "HACCP"
	ModuleISO     AuditModule = "ISO"
	ModuleBRC     AuditModule = "BRC"
	ModuleMSC     AuditModule = "MSC"
	ModuleGeneral AuditModule = "General"

	AuditInfo     AuditSeverity = "Info"
	AuditWarning  AuditSeverity = "Warning"
	AuditError    AuditSeverity = "Error"
	AuditCritical AuditSeverity = "Critical"

	CategoryCreate AuditCategory = "Create"
	CategoryUpdate AuditCategory = "Update"
	CategoryDelete AuditCategory = "Delete"
	CategoryView   AuditCategory = "View"
	CategoryExport AuditCategory = "Export"
	CategoryImport AuditCategory = "Import"
)

var (
	AuditModules    = []AuditModule{ModuleHACCP, ModuleISO, ModuleBRC, ModuleMSC, ModuleGeneral}
	AuditSeverities = []AuditSeverity{AuditInfo, AuditWarning, AuditError, AuditCritical}
	AuditCategories = []AuditCategory{CategoryCreate, CategoryUpdate, CategoryDelete, CategoryView, CategoryExport, CategoryImport}
)

func ParseAuditModule(s string) (AuditModule, error) {
	return parseEnum("audit module", s, AuditModules)
}
func ParseAuditSeverity(s string) (AuditSeverity, error) {
	return parseEnum("audit severity", s, AuditSeverities)
}
func ParseAuditCategory(s string) (AuditCategory, error) {
	return parseEnum("audit category", s, AuditCategories)
}

func (v *AuditModule) UnmarshalJSON(b []byte) (err error) {
	*v, err = decodeEnum(b, "audit module", AuditModules)
	return err
}

func (v *AuditSeverity) UnmarshalJSON(b []byte) (err error) {
	*v, err = decodeEnum(b, "audit severity", AuditSeverities)
	return err
}

func (v *AuditCategory) UnmarshalJSON(b []byte) (err error) {
	*v, err = decodeEnum(b, "audit category", AuditCategories)
	return err
}

// AuditLogEntry records one mutation. Entries are never edited or removed.
type AuditLogEntry struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Module     AuditModule    `json:"module"`
	User       string         `json:"user"`
	Action     string         `json:"action"`
	Details    string         `json:"details"`
	Severity   AuditSeverity  `json:"severity"`
	Category   AuditCategory  `json:"category"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Changes    map[string]any `json:"changes,omitempty"`
}

// AuditInput is an entry as supplied to append: id and timestamp are assigned.
type AuditInput struct {
	Module     AuditModule    `json:"module"`
	User       string         `json:"user"`
	Action     string         `json:"action"`
	Details    string         `json:"details"`
	Severity   AuditSeverity  `json:"severity"`
	Category   AuditCategory  `json:"category"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Changes    map[string]any `json:"changes,omitempty"`
}

func (in AuditInput) Validate() error {
	if _, err := ParseAuditModule(string(in.Module)); err != nil {
		return err
	}
	if _, err := ParseAuditSeverity(string(in.Severity)); err != nil {
		return err
	}
	_, err := ParseAuditCategory(string(in.Category))
	return err
}

// AuditFilter dates bound the calendar-date part of Timestamp, inclusive.
type AuditFilter struct {
	Module     AuditModule   `form:"module"`
	Severity   AuditSeverity `form:"severity"`
	Category   AuditCategory `form:"category"`
	EntityType string        `form:"entityType"`
	User       string        `form:"user"`
	DateFrom   string        `form:"dateFrom"`
	DateTo     string        `form:"dateTo"`
}
