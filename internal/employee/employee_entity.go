package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee rows are never deleted: departure is a status transition, so
// there is no soft-delete column either.
type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	Department     string    `gorm:"type:varchar(100);not null;index"`
	Position       string    `gorm:"type:varchar(100);not null"`
	HireDate       time.Time `gorm:"type:date;not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'active';index"`

	// Weak reference into the same table; cycle-checked on update.
	ManagerID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
