package ledger

import (
	"time"

	"github.com/google/uuid"
)

type LeaveBalance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_balance_employee_type"`
	LeaveType  string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_balance_employee_type"`
	Days       int       `gorm:"type:int;not null;check:chk_balance_days_non_negative,days >= 0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
