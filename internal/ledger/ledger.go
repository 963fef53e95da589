// Package ledger owns per-employee leave balances. Mutations run through a
// caller-supplied transaction-scoped Repository so the workflow can commit
// a debit together with the request's status change.
package ledger

import (
	"context"
	"errors"

	ledgererrors "leavedesk/internal/ledger/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Balance is the read snapshot handed to callers. Tracked is false for the
// non-countable types, which have no number at all.
type Balance struct {
	LeaveType string
	Tracked   bool
	Days      int
}

// InitDefaults creates one balance row per countable type at its default
// quota. Called inside the employee-create transaction.
func InitDefaults(ctx context.Context, repo Repository, employeeID uuid.UUID) error {
	for _, leaveType := range CountableTypes() {
		b := &LeaveBalance{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			LeaveType:  leaveType,
			Days:       DefaultQuota[leaveType],
		}
		if err := repo.Create(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the current balance snapshot for one employee/type pair.
func Get(ctx context.Context, repo Repository, employeeID uuid.UUID, leaveType string) (Balance, error) {
	if !ValidType(leaveType) {
		return Balance{}, ledgererrors.ErrInvalidLeaveType
	}
	if !Countable(leaveType) {
		return Balance{LeaveType: leaveType, Tracked: false}, nil
	}

	b, err := repo.FindByEmployeeAndType(ctx, employeeID.String(), leaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Balance{}, ledgererrors.ErrBalanceNotFound
		}
		return Balance{}, err
	}
	return Balance{LeaveType: leaveType, Tracked: true, Days: b.Days}, nil
}

// Debit reduces a countable balance by days, failing when the balance is
// insufficient. Non-countable types are a no-op. The repo must be
// transaction-scoped: the row lock taken here is what serializes
// concurrent approvals on the same employee/type pair.
func Debit(ctx context.Context, repo Repository, employeeID uuid.UUID, leaveType string, days int) error {
	if !ValidType(leaveType) {
		return ledgererrors.ErrInvalidLeaveType
	}
	if days <= 0 {
		return ledgererrors.ErrInvalidDays
	}
	if !Countable(leaveType) {
		return nil
	}

	b, err := repo.FindForUpdate(ctx, employeeID.String(), leaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledgererrors.ErrBalanceNotFound
		}
		return err
	}

	if days > b.Days {
		return ledgererrors.ErrInsufficientBalance
	}

	b.Days -= days
	return repo.Save(ctx, b)
}

// Credit is the administrative top-up. Only countable types hold a number
// to increase.
func Credit(ctx context.Context, repo Repository, employeeID uuid.UUID, leaveType string, days int) error {
	if !ValidType(leaveType) {
		return ledgererrors.ErrInvalidLeaveType
	}
	if days <= 0 {
		return ledgererrors.ErrInvalidDays
	}
	if !Countable(leaveType) {
		return ledgererrors.ErrNotCountable
	}

	b, err := repo.FindForUpdate(ctx, employeeID.String(), leaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledgererrors.ErrBalanceNotFound
		}
		return err
	}

	b.Days += days
	return repo.Save(ctx, b)
}
