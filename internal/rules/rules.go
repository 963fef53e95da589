// Package rules holds the decision functions shared by the employee
// directory and the leave workflow. Every function is pure: callers pass
// in snapshots, nothing here touches storage.
package rules

import (
	"time"

	ruleserrors "leavedesk/internal/rules/errors"

	"github.com/google/uuid"
)

const (
	EmployeeStatusActive     = "active"
	EmployeeStatusInactive   = "inactive"
	EmployeeStatusTerminated = "terminated"
)

const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusRejected  = "rejected"
	RequestStatusCancelled = "cancelled"
)

// maxManagerDepth bounds the reporting-chain walk; real org charts are
// nowhere near this deep, so hitting it means a cycle slipped through.
const maxManagerDepth = 100

func ValidEmployeeStatus(s string) bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusTerminated:
		return true
	}
	return false
}

func ValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, ruleserrors.ErrInvalidDateFormat
	}
	return t, nil
}

func ValidateDateRange(start, end time.Time) error {
	if start.After(end) {
		return ruleserrors.ErrInvalidDateRange
	}
	return nil
}

// DayCount is the inclusive calendar-day span: start == end counts as one
// day. Weekends and holidays are not excluded.
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// ValidateSubmission gates leave submission on the employee snapshot.
func ValidateSubmission(employeeStatus string) error {
	if employeeStatus != EmployeeStatusActive {
		return ruleserrors.ErrEmployeeNotActive
	}
	return nil
}

// ValidateDecision gates approve/reject: the request must still be
// pending and nobody decides their own request.
func ValidateDecision(requestStatus string, ownerID, approverID uuid.UUID) error {
	if requestStatus != RequestStatusPending {
		return ruleserrors.ErrRequestNotPending
	}
	if approverID == ownerID {
		return ruleserrors.ErrSelfApproval
	}
	return nil
}

// ValidateCancel gates cancellation: owner only, pending only.
func ValidateCancel(requestStatus string, ownerID, requesterID uuid.UUID) error {
	if requestStatus != RequestStatusPending {
		return ruleserrors.ErrRequestNotPending
	}
	if requesterID != ownerID {
		return ruleserrors.ErrNotOwner
	}
	return nil
}

// CheckManagerChain walks the reporting chain starting at managerID and
// fails if it ever reaches employeeID again (or exceeds the depth bound).
// lookup resolves an employee id to its manager id, nil when none.
func CheckManagerChain(employeeID uuid.UUID, managerID *uuid.UUID, lookup func(uuid.UUID) (*uuid.UUID, error)) error {
	if managerID == nil {
		return nil
	}

	seen := map[uuid.UUID]struct{}{employeeID: {}}
	current := *managerID

	for depth := 0; depth < maxManagerDepth; depth++ {
		if _, ok := seen[current]; ok {
			return ruleserrors.ErrCyclicHierarchy
		}
		seen[current] = struct{}{}

		next, err := lookup(current)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		current = *next
	}

	return ruleserrors.ErrCyclicHierarchy
}
