package util

import (
	"errors"
	"strings"
	"time"
)

// ValidateAmount checks that a salary amount is strictly positive.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return errors.New("amount must be greater than 0")
	}
	return nil
}

// ValidateEmployee checks that an employee name is non-empty.
func ValidateEmployee(employee string) error {
	if strings.TrimSpace(employee) == "" {
		return errors.New("employee is required")
	}
	return nil
}

// ValidateDate checks that a salary date is present.
func ValidateDate(date *time.Time) error {
	if date == nil || date.IsZero() {
		return errors.New("salary date is required")
	}
	return nil
}
