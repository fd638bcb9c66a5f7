package models

// ComplianceStats is derived on demand and never persisted.
type ComplianceStats struct {
	TotalHazards     int `json:"totalHazards"`
	ActiveHazards    int `json:"activeHazards"`
	CriticalHazards  int `json:"criticalHazards"`
	TotalCCPs        int `json:"totalCCPs"`
	CompliantCCPs    int `json:"compliantCCPs"`
	NonCompliantCCPs int `json:"nonCompliantCCPs"`
	PendingAudits    int `json:"pendingAudits"`
	ComplianceScore  int `json:"complianceScore"` // percent of CCPs compliant, 0 when there are none
}
