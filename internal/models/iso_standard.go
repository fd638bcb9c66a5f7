package models

type ISOStatus string

const (
	ISONotStarted ISOStatus = "NotStarted"
	ISOInProgress ISOStatus = "InProgress"
	ISOCertified  ISOStatus = "Certified"
	ISOExpired    ISOStatus = "Expired"
)

var ISOStatuses = []ISOStatus{ISONotStarted, ISOInProgress, ISOCertified, ISOExpired}

func ParseISOStatus(s string) (ISOStatus, error) { return parseEnum("iso status", s, ISOStatuses) }

func (v *ISOStatus) UnmarshalJSON(b []byte) (err error) {
	*v, err = decodeEnum(b, "iso status", ISOStatuses)
	return err
}

// ISOStandard tracks certification against one standard, e.g. ISO 22000.
type ISOStandard struct {
	ID                string    `json:"id"`
	Code              string    `json:"code"`
	Title             string    `json:"title"`
	Version           string    `json:"version"`
	Status            ISOStatus `json:"status"`
	CertificationBody string    `json:"certificationBody"`
	CertifiedOn       string    `json:"certifiedOn,omitempty"`
	ExpiresOn         string    `json:"expiresOn,omitempty"`
	Progress          int       `json:"progress"` // percent, 0..100
	Responsible       string    `json:"responsible"`
}

type ISOStandardInput struct {
	Code              string    `json:"code"`
	Title             string    `json:"title"`
	Version           string    `json:"version"`
	Status            ISOStatus `json:"status"`
	CertificationBody string    `json:"certificationBody"`
	CertifiedOn       string    `json:"certifiedOn,omitempty"`
	ExpiresOn         string    `json:"expiresOn,omitempty"`
	Progress          int       `json:"progress"`
	Responsible       string    `json:"responsible"`
}

func (in ISOStandardInput) Validate() error {
	if _, err := ParseISOStatus(string(in.Status)); err != nil {
		return err
	}
	if in.Progress < 0 || in.Progress > 100 {
		return ErrInvalidProgress
	}
	return validateOptionalDates(in.CertifiedOn, in.ExpiresOn)
}

type ISOStandardPatch struct {
	Title             *string    `json:"title,omitempty"`
	Version           *string    `json:"version,omitempty"`
	Status            *ISOStatus `json:"status,omitempty"`
	CertificationBody *string    `json:"certificationBody,omitempty"`
	CertifiedOn       *string    `json:"certifiedOn,omitempty"`
	ExpiresOn         *string    `json:"expiresOn,omitempty"`
	Progress          *int       `json:"progress,omitempty"`
	Responsible       *string    `json:"responsible,omitempty"`
}

func (p ISOStandardPatch) Changes() map[string]any {
	return patchChanges(p)
}

func (p ISOStandardPatch) Validate() error {
	if p.Status != nil {
		if _, err := ParseISOStatus(string(*p.Status)); err != nil {
			return err
		}
	}
	if p.Progress != nil && (*p.Progress < 0 || *p.Progress > 100) {
		return ErrInvalidProgress
	}
	var certified, expires string
	if p.CertifiedOn != nil {
		certified = *p.CertifiedOn
	}
	if p.ExpiresOn != nil {
		expires = *p.ExpiresOn
	}
	return validateOptionalDates(certified, expires)
}

func validateOptionalDates(dates ...string) error {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if err := ValidateDate(d); err != nil {
			return err
		}
	}
	return nil
}
