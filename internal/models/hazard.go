package models

import "encoding/json"

type HazardType string
type Severity string
type Likelihood string
type HazardStatus string

const (
	HazardBiological HazardType = "Biological"
	HazardChemical   HazardType = "Chemical"
	HazardPhysical   HazardType = "Physical"

	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"

	LikelihoodRare          Likelihood = "Rare"
	LikelihoodUnlikely      Likelihood = "Unlikely"
	LikelihoodPossible      Likelihood = "Possible"
	LikelihoodLikely        Likelihood = "Likely"
	LikelihoodAlmostCertain Likelihood = "AlmostCertain"

	HazardActive     HazardStatus = "Active"
	HazardControlled HazardStatus = "Controlled"
	HazardResolved   HazardStatus = "Resolved"
)

// Ordered lowest to highest; the risk package relies on this order.
var (
	HazardTypes    = []HazardType{HazardBiological, HazardChemical, HazardPhysical}
	Severities     = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	Likelihoods    = []Likelihood{LikelihoodRare, LikelihoodUnlikely, LikelihoodPossible, LikelihoodLikely, LikelihoodAlmostCertain}
	HazardStatuses = []HazardStatus{HazardActive, HazardControlled, HazardResolved}
)

func ParseHazardType(s string) (HazardType, error) { return parseEnum("hazard type", s, HazardTypes) }
func ParseSeverity(s string) (Severity, error)     { return parseEnum("severity", s, Severities) }
func ParseLikelihood(s string) (Likelihood, error) { return parseEnum("likelihood", s, Likelihoods) }
func ParseHazardStatus(s string) (HazardStatus, error) {
	return parseEnum("hazard status", s, HazardStatuses)
}

func (v *HazardType) UnmarshalJSON(b []byte) (err error) {
	*v, err = decodeEnum(b, "hazard type", HazardTypes)
	return err
}

func (v *Severity) UnmarshalJSON(b []byte) (err error) {
	*v, err = decodeEnum(b, "severity", Severities)
	return err
}

func (v *Likelihood) UnmarshalJSON(b []byte) (err error) {
	*v, err = decodeEnum(b, "likelihood", Likelihoods)
	return err
}

func (v *HazardStatus) UnmarshalJSON(b []byte) (err error) {
	*v, err = decodeEnum(b, "hazard status", HazardStatuses)
	return err
}

// Hazard is an identified food-safety risk.
type Hazard struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Type            HazardType   `json:"type"`
	Description     string       `json:"description"`
	Severity        Severity     `json:"severity"`
	Likelihood      Likelihood   `json:"likelihood"`
	RiskScore       int          `json:"riskScore"` // derived, never set by callers
	ControlMeasures []string     `json:"controlMeasures"`
	Responsible     string       `json:"responsible"`
	DateIdentified  string       `json:"dateIdentified"` // YYYY-MM-DD
	Status          HazardStatus `json:"status"`
}

// HazardInput is a hazard as supplied on create: no id, no score.
type HazardInput struct {
	Name            string       `json:"name"`
	Type            HazardType   `json:"type"`
	Description     string       `json:"description"`
	Severity        Severity     `json:"severity"`
	Likelihood      Likelihood   `json:"likelihood"`
	ControlMeasures []string     `json:"controlMeasures"`
	Responsible     string       `json:"responsible"`
	DateIdentified  string       `json:"dateIdentified"`
	Status          HazardStatus `json:"status"`
}

// HazardPatch carries a partial update; nil fields keep their prior value.
type HazardPatch struct {
	Name            *string       `json:"name,omitempty"`
	Type            *HazardType   `json:"type,omitempty"`
	Description     *string       `json:"description,omitempty"`
	Severity        *Severity     `json:"severity,omitempty"`
	Likelihood      *Likelihood   `json:"likelihood,omitempty"`
	ControlMeasures *[]string     `json:"controlMeasures,omitempty"`
	Responsible     *string       `json:"responsible,omitempty"`
	DateIdentified  *string       `json:"dateIdentified,omitempty"`
	Status          *HazardStatus `json:"status,omitempty"`
}

// Changes returns the supplied fields keyed by their JSON names.
func (p HazardPatch) Changes() map[string]any {
	return patchChanges(p)
}

// HazardFilter fields are AND-ed; empty fields impose no constraint.
type HazardFilter struct {
	Type        HazardType   `form:"type"`
	Status      HazardStatus `form:"status"`
	Severity    Severity     `form:"severity"`
	Responsible string       `form:"responsible"`
	DateFrom    string       `form:"dateFrom"`
	DateTo      string       `form:"dateTo"`
}

// patchChanges round-trips a patch through JSON so omitempty drops nil fields.
func patchChanges(patch any) map[string]any {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// Validate checks every enum and the identification date.
func (in HazardInput) Validate() error {
	if _, err := ParseHazardType(string(in.Type)); err != nil {
		return err
	}
	if _, err := ParseSeverity(string(in.Severity)); err != nil {
		return err
	}
	if _, err := ParseLikelihood(string(in.Likelihood)); err != nil {
		return err
	}
	if _, err := ParseHazardStatus(string(in.Status)); err != nil {
		return err
	}
	return ValidateDate(in.DateIdentified)
}

// Validate checks the supplied fields only.
func (p HazardPatch) Validate() error {
	if p.Type != nil {
		if _, err := ParseHazardType(string(*p.Type)); err != nil {
			return err
		}
	}
	if p.Severity != nil {
		if _, err := ParseSeverity(string(*p.Severity)); err != nil {
			return err
		}
	}
	if p.Likelihood != nil {
		if _, err := ParseLikelihood(string(*p.Likelihood)); err != nil {
			return err
		}
	}
	if p.Status != nil {
		if _, err := ParseHazardStatus(string(*p.Status)); err != nil {
			return err
		}
	}
	if p.DateIdentified != nil {
		return ValidateDate(*p.DateIdentified)
	}
	return nil
}
