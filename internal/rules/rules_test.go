package rules

import (
	"errors"
	"testing"
	"time"

	ruleserrors "leavedesk/internal/rules/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d, err := ParseDate("2025-07-01")
		assert.NoError(t, err)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.July, d.Month())
		assert.Equal(t, 1, d.Day())
	})

	t.Run("negative - wrong layout", func(t *testing.T) {
		_, err := ParseDate("01-07-2025")
		assert.ErrorIs(t, err, ruleserrors.ErrInvalidDateFormat)
	})

	t.Run("negative - impossible date", func(t *testing.T) {
		_, err := ParseDate("2025-13-40")
		assert.ErrorIs(t, err, ruleserrors.ErrInvalidDateFormat)
	})
}

func TestValidateDateRange(t *testing.T) {
	start, _ := ParseDate("2025-07-01")
	end, _ := ParseDate("2025-07-05")

	assert.NoError(t, ValidateDateRange(start, end))
	assert.NoError(t, ValidateDateRange(start, start))
	assert.ErrorIs(t, ValidateDateRange(end, start), ruleserrors.ErrInvalidDateRange)
}

func TestDayCount(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-07-01", "2025-07-01", 1},
		{"2025-07-01", "2025-07-05", 5},
		{"2025-06-25", "2025-06-26", 2},
		{"2025-07-01", "2025-07-30", 30},
	}
	for _, c := range cases {
		start, _ := ParseDate(c.start)
		end, _ := ParseDate(c.end)
		assert.Equal(t, c.want, DayCount(start, end), "%s..%s", c.start, c.end)
	}
}

func TestValidateSubmission(t *testing.T) {
	assert.NoError(t, ValidateSubmission(EmployeeStatusActive))
	assert.ErrorIs(t, ValidateSubmission(EmployeeStatusInactive), ruleserrors.ErrEmployeeNotActive)
	assert.ErrorIs(t, ValidateSubmission(EmployeeStatusTerminated), ruleserrors.ErrEmployeeNotActive)
}

func TestValidateDecision(t *testing.T) {
	owner := uuid.New()
	approver := uuid.New()

	t.Run("success", func(t *testing.T) {
		assert.NoError(t, ValidateDecision(RequestStatusPending, owner, approver))
	})

	t.Run("negative - already decided", func(t *testing.T) {
		assert.ErrorIs(t, ValidateDecision(RequestStatusApproved, owner, approver), ruleserrors.ErrRequestNotPending)
		assert.ErrorIs(t, ValidateDecision(RequestStatusRejected, owner, approver), ruleserrors.ErrRequestNotPending)
		assert.ErrorIs(t, ValidateDecision(RequestStatusCancelled, owner, approver), ruleserrors.ErrRequestNotPending)
	})

	t.Run("negative - self approval", func(t *testing.T) {
		assert.ErrorIs(t, ValidateDecision(RequestStatusPending, owner, owner), ruleserrors.ErrSelfApproval)
	})

	t.Run("not pending wins over self approval", func(t *testing.T) {
		assert.ErrorIs(t, ValidateDecision(RequestStatusApproved, owner, owner), ruleserrors.ErrRequestNotPending)
	})
}

func TestValidateCancel(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	assert.NoError(t, ValidateCancel(RequestStatusPending, owner, owner))
	assert.ErrorIs(t, ValidateCancel(RequestStatusPending, owner, other), ruleserrors.ErrNotOwner)
	assert.ErrorIs(t, ValidateCancel(RequestStatusApproved, owner, owner), ruleserrors.ErrRequestNotPending)
}

func TestCheckManagerChain(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	chain := func(links map[uuid.UUID]*uuid.UUID) func(uuid.UUID) (*uuid.UUID, error) {
		return func(id uuid.UUID) (*uuid.UUID, error) { return links[id], nil }
	}

	t.Run("success - no manager", func(t *testing.T) {
		assert.NoError(t, CheckManagerChain(alice, nil, chain(nil)))
	})

	t.Run("success - straight chain", func(t *testing.T) {
		// alice -> bob -> carol -> nobody
		links := map[uuid.UUID]*uuid.UUID{bob: &carol}
		assert.NoError(t, CheckManagerChain(alice, &bob, chain(links)))
	})

	t.Run("negative - direct self manage", func(t *testing.T) {
		err := CheckManagerChain(alice, &alice, chain(nil))
		assert.ErrorIs(t, err, ruleserrors.ErrCyclicHierarchy)
	})

	t.Run("negative - two hop cycle", func(t *testing.T) {
		// alice would report to bob while bob reports to alice
		links := map[uuid.UUID]*uuid.UUID{bob: &alice}
		err := CheckManagerChain(alice, &bob, chain(links))
		assert.ErrorIs(t, err, ruleserrors.ErrCyclicHierarchy)
	})

	t.Run("negative - three hop cycle", func(t *testing.T) {
		links := map[uuid.UUID]*uuid.UUID{bob: &carol, carol: &alice}
		err := CheckManagerChain(alice, &bob, chain(links))
		assert.ErrorIs(t, err, ruleserrors.ErrCyclicHierarchy)
	})

	t.Run("negative - lookup failure propagates", func(t *testing.T) {
		boom := errors.New("db down")
		err := CheckManagerChain(alice, &bob, func(uuid.UUID) (*uuid.UUID, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
	})
}
