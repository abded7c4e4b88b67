package models

import "time"

// Salary is a single salary record for an employee.
// SalaryDate is a pointer because the change-event payload is published
// with the date cleared (see notifier); the persisted row always has one.
type Salary struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	Salary     float64    `gorm:"not null" json:"salary"`
	Employee   string     `gorm:"size:255;not null" json:"employee"`
	SalaryDate *time.Time `json:"salaryDate"`
}

// TableName keeps the historical table name.
func (Salary) TableName() string {
	return "salaries"
}
