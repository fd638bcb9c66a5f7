package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidEnum is returned when a value is outside its documented set.
var ErrInvalidEnum = errors.New("invalid enum value")

// ErrInvalidDate is returned for calendar dates not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid calendar date")

// ErrInvalidProgress is returned for percentages outside 0..100.
var ErrInvalidProgress = errors.New("progress must be between 0 and 100")

// DateLayout is the calendar date format used by every date field.
const DateLayout = "2006-01-02"

func parseEnum[T ~string](kind, raw string, allowed []T) (T, error) {
	for _, v := range allowed {
		if string(v) == raw {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrInvalidEnum, kind, raw)
}

func decodeEnum[T ~string](data []byte, kind string, allowed []T) (T, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", kind, err)
	}
	return parseEnum(kind, raw, allowed)
}

// ValidateDate checks that s is a calendar date in DateLayout.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}
