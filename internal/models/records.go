package models

// QualityCheck is one inspection result, e.g. a receiving temperature check.
type QualityCheck struct {
	ID        string `json:"id"`
	Product   string `json:"product"`
	Parameter string `json:"parameter"`
	Value     string `json:"value"`
	Passed    bool   `json:"passed"`
	Inspector string `json:"inspector"`
	CheckedOn string `json:"checkedOn"`
	Notes     string `json:"notes,omitempty"`
}

type QualityCheckInput struct {
	Product   string `json:"product"`
	Parameter string `json:"parameter"`
	Value     string `json:"value"`
	Passed    bool   `json:"passed"`
	Inspector string `json:"inspector"`
	CheckedOn string `json:"checkedOn"`
	Notes     string `json:"notes,omitempty"`
}

func (in QualityCheckInput) Validate() error { return ValidateDate(in.CheckedOn) }

// TrainingRecord documents that an employee completed a food-safety course.
type TrainingRecord struct {
	ID          string `json:"id"`
	Employee    string `json:"employee"`
	Course      string `json:"course"`
	CompletedOn string `json:"completedOn"`
	ValidUntil  string `json:"validUntil,omitempty"`
	Trainer     string `json:"trainer"`
}

type TrainingRecordInput struct {
	Employee    string `json:"employee"`
	Course      string `json:"course"`
	CompletedOn string `json:"completedOn"`
	ValidUntil  string `json:"validUntil,omitempty"`
	Trainer     string `json:"trainer"`
}

func (in TrainingRecordInput) Validate() error {
	if err := ValidateDate(in.CompletedOn); err != nil {
		return err
	}
	return validateOptionalDates(in.ValidUntil)
}

// Document is a controlled document such as an SOP or a HACCP plan revision.
type Document struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Module    AuditModule `json:"module"`
	Revision  string      `json:"revision"`
	Owner     string      `json:"owner"`
	IssuedOn  string      `json:"issuedOn"`
	ReviewDue string      `json:"reviewDue,omitempty"`
}

type DocumentInput struct {
	Title     string      `json:"title"`
	Module    AuditModule `json:"module"`
	Revision  string      `json:"revision"`
	Owner     string      `json:"owner"`
	IssuedOn  string      `json:"issuedOn"`
	ReviewDue string      `json:"reviewDue,omitempty"`
}

func (in DocumentInput) Validate() error {
	if _, err := ParseAuditModule(string(in.Module)); err != nil {
		return err
	}
	if err := ValidateDate(in.IssuedOn); err != nil {
		return err
	}
	return validateOptionalDates(in.ReviewDue)
}
