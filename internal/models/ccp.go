package models

type CCPStatus string
type Compliance string

const (
	CCPActive      CCPStatus = "Active"
	CCPInactive    CCPStatus = "Inactive"
	CCPUnderReview CCPStatus = "UnderReview"

	Compliant    Compliance = "Compliant"
	NonCompliant Compliance = "NonCompliant"
	Pending      Compliance = "Pending"
)

var (
	CCPStatuses = []CCPStatus{CCPActive, CCPInactive, CCPUnderReview}
	Compliances = []Compliance{Compliant, NonCompliant, Pending}
)

func ParseCCPStatus(s string) (CCPStatus, error)   { return parseEnum("ccp status", s, CCPStatuses) }
func ParseCompliance(s string) (Compliance, error) { return parseEnum("compliance", s, Compliances) }

func (v *CCPStatus) UnmarshalJSON(b []byte) (err error) {
	*v, err = decodeEnum(b, "ccp status", CCPStatuses)
	return err
}

func (v *Compliance) UnmarshalJSON(b []byte) (err error) {
	*v, err = decodeEnum(b, "compliance", Compliances)
	return err
}

// CCP is a critical control point safeguarding one hazard.
//
// HazardName and Orphaned are resolved against the live hazard collection on
// every read; whatever is stored for them is ignored.
type CCP struct {
	ID                  string     `json:"id"`
	HazardID            string     `json:"hazardId"`
	HazardName          string     `json:"hazardName"`
	Orphaned            bool       `json:"orphaned,omitempty"`
	Step                string     `json:"step"`
	CriticalLimit       string     `json:"criticalLimit"`
	MonitoringFrequency string     `json:"monitoringFrequency"`
	MonitoringMethod    string     `json:"monitoringMethod"`
	CorrectiveActions   []string   `json:"correctiveActions"`
	Verification        string     `json:"verification"`
	RecordKeeping       string     `json:"recordKeeping"`
	Responsible         string     `json:"responsible"`
	DateEstablished     string     `json:"dateEstablished"`
	Status              CCPStatus  `json:"status"`
	LastMonitored       string     `json:"lastMonitored,omitempty"`
	Compliance          Compliance `json:"compliance"`
}

type CCPInput struct {
	HazardID            string     `json:"hazardId"`
	Step                string     `json:"step"`
	CriticalLimit       string     `json:"criticalLimit"`
	MonitoringFrequency string     `json:"monitoringFrequency"`
	MonitoringMethod    string     `json:"monitoringMethod"`
	CorrectiveActions   []string   `json:"correctiveActions"`
	Verification        string     `json:"verification"`
	RecordKeeping       string     `json:"recordKeeping"`
	Responsible         string     `json:"responsible"`
	DateEstablished     string     `json:"dateEstablished"`
	Status              CCPStatus  `json:"status"`
	LastMonitored       string     `json:"lastMonitored,omitempty"`
	Compliance          Compliance `json:"compliance"`
}

func (in CCPInput) Validate() error {
	if _, err := ParseCCPStatus(string(in.Status)); err != nil {
		return err
	}
	if _, err := ParseCompliance(string(in.Compliance)); err != nil {
		return err
	}
	if in.LastMonitored != "" {
		if err := ValidateDate(in.LastMonitored); err != nil {
			return err
		}
	}
	return ValidateDate(in.DateEstablished)
}

type CCPPatch struct {
	HazardID            *string     `json:"hazardId,omitempty"`
	Step                *string     `json:"step,omitempty"`
	CriticalLimit       *string     `json:"criticalLimit,omitempty"`
	MonitoringFrequency *string     `json:"monitoringFrequency,omitempty"`
	MonitoringMethod    *string     `json:"monitoringMethod,omitempty"`
	CorrectiveActions   *[]string   `json:"correctiveActions,omitempty"`
	Verification        *string     `json:"verification,omitempty"`
	RecordKeeping       *string     `json:"recordKeeping,omitempty"`
	Responsible         *string     `json:"responsible,omitempty"`
	DateEstablished     *string     `json:"dateEstablished,omitempty"`
	Status              *CCPStatus  `json:"status,omitempty"`
	LastMonitored       *string     `json:"lastMonitored,omitempty"`
	Compliance          *Compliance `json:"compliance,omitempty"`
}

func (p CCPPatch) Changes() map[string]any {
	return patchChanges(p)
}

func (p CCPPatch) Validate() error {
	if p.Status != nil {
		if _, err := ParseCCPStatus(string(*p.Status)); err != nil {
			return err
		}
	}
	if p.Compliance != nil {
		if _, err := ParseCompliance(string(*p.Compliance)); err != nil {
			return err
		}
	}
	if p.LastMonitored != nil && *p.LastMonitored != "" {
		if err := ValidateDate(*p.LastMonitored); err != nil {
			return err
		}
	}
	if p.DateEstablished != nil {
		return ValidateDate(*p.DateEstablished)
	}
	return nil
}

type CCPFilter struct {
	HazardID    string     `form:"hazardId"`
	Status      CCPStatus  `form:"status"`
	Compliance  Compliance `form:"compliance"`
	Responsible string     `form:"responsible"`
	DateFrom    string     `form:"dateFrom"`
	DateTo      string     `form:"dateTo"`
}
