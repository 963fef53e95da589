package leave

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`

	LeaveType string    `gorm:"type:varchar(20);not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	// Inclusive calendar-day count, fixed at submission.
	TotalDays int    `gorm:"type:int;not null"`
	Reason    string `gorm:"type:text;not null"`

	Status      string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_leave_requests_status"`
	RequestedAt time.Time  `gorm:"not null"`
	ApproverID  *uuid.UUID `gorm:"type:uuid"`
	DecidedAt   *time.Time
	Comments    *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
