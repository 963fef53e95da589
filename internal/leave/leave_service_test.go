package leave_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"leavedesk/internal/employee"
	"leavedesk/internal/events"
	"leavedesk/internal/ledger"
	ledgererrors "leavedesk/internal/ledger/errors"
	"leavedesk/internal/leave"
	leaveerrors "leavedesk/internal/leave/errors"
	"leavedesk/internal/messaging/kafka"
	ruleserrors "leavedesk/internal/rules/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeLeaveRepo struct {
	requests map[string]*leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: map[string]*leave.LeaveRequest{}}
}

func (f *fakeLeaveRepo) WithTx(tx *gorm.DB) leave.Repository { return f }

func (f *fakeLeaveRepo) Create(ctx context.Context, l *leave.LeaveRequest) error {
	cp := *l
	f.requests[l.ID.String()] = &cp
	return nil
}

func (f *fakeLeaveRepo) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	l, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeaveRepo) FindByIDForUpdate(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeLeaveRepo) FindAll(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.requests {
		if filter.EmployeeID != "" && l.EmployeeID.String() != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.LeaveType != "" && l.LeaveType != filter.LeaveType {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, l *leave.LeaveRequest) error {
	cp := *l
	f.requests[l.ID.String()] = &cp
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]*employee.Employee{}}
}

func (f *fakeEmployeeRepo) add(e employee.Employee) {
	f.employees[e.ID.String()] = &e
}

func (f *fakeEmployeeRepo) WithTx(tx *gorm.DB) employee.Repository { return f }

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	f.add(*e)
	return nil
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.employees[id]
	return ok, nil
}

func (f *fakeEmployeeRepo) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) FullName(ctx context.Context, id string) (string, error) {
	e, ok := f.employees[id]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return e.FullName(), nil
}

func (f *fakeEmployeeRepo) ManagerOf(ctx context.Context, id string) (*uuid.UUID, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e.ManagerID, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error {
	f.add(*e)
	return nil
}

type fakeBalanceRepo struct {
	balances map[string]*ledger.LeaveBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: map[string]*ledger.LeaveBalance{}}
}

func (f *fakeBalanceRepo) set(employeeID uuid.UUID, leaveType string, days int) {
	f.balances[employeeID.String()+"/"+leaveType] = &ledger.LeaveBalance{
		ID: uuid.New(), EmployeeID: employeeID, LeaveType: leaveType, Days: days,
	}
}

func (f *fakeBalanceRepo) days(employeeID uuid.UUID, leaveType string) int {
	return f.balances[employeeID.String()+"/"+leaveType].Days
}

func (f *fakeBalanceRepo) WithTx(tx *gorm.DB) ledger.Repository { return f }

func (f *fakeBalanceRepo) Create(ctx context.Context, b *ledger.LeaveBalance) error {
	cp := *b
	f.balances[b.EmployeeID.String()+"/"+b.LeaveType] = &cp
	return nil
}

func (f *fakeBalanceRepo) FindByEmployee(ctx context.Context, employeeID string) ([]ledger.LeaveBalance, error) {
	var out []ledger.LeaveBalance
	for _, b := range f.balances {
		if b.EmployeeID.String() == employeeID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) FindByEmployeeAndType(ctx context.Context, employeeID, leaveType string) (*ledger.LeaveBalance, error) {
	b, ok := f.balances[employeeID+"/"+leaveType]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBalanceRepo) FindForUpdate(ctx context.Context, employeeID, leaveType string) (*ledger.LeaveBalance, error) {
	return f.FindByEmployeeAndType(ctx, employeeID, leaveType)
}

func (f *fakeBalanceRepo) Save(ctx context.Context, b *ledger.LeaveBalance) error {
	cp := *b
	f.balances[b.EmployeeID.String()+"/"+b.LeaveType] = &cp
	return nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Balances(ctx context.Context, employeeID string) (ledger.BalanceSummaryResponse, error) {
	return ledger.BalanceSummaryResponse{}, nil
}

func (f *fakeCache) Credit(ctx context.Context, employeeID string, req ledger.CreditBalanceRequest) (ledger.BalanceSummaryResponse, error) {
	return ledger.BalanceSummaryResponse{}, nil
}

func (f *fakeCache) InvalidateCache(ctx context.Context, employeeID string) {
	f.invalidated = append(f.invalidated, employeeID)
}

type leaveFixture struct {
	sqlMock   sqlmock.Sqlmock
	service   leave.Service
	repo      *fakeLeaveRepo
	employees *fakeEmployeeRepo
	balances  *fakeBalanceRepo
	outbox    *fakeOutbox
	cache     *fakeCache

	owner    employee.Employee
	approver employee.Employee
}

func setupLeaveTest(t *testing.T) *leaveFixture {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}),
		&gorm.Config{SkipDefaultTransaction: true},
	)
	assert.NoError(t, err)

	f := &leaveFixture{
		sqlMock:   sqlMock,
		repo:      newFakeLeaveRepo(),
		employees: newFakeEmployeeRepo(),
		balances:  newFakeBalanceRepo(),
		outbox:    &fakeOutbox{},
		cache:     &fakeCache{},
	}

	f.owner = employee.Employee{
		ID: uuid.New(), FirstName: "John", LastName: "Doe", Status: "active",
	}
	f.approver = employee.Employee{
		ID: uuid.New(), FirstName: "Jane", LastName: "Smith", Status: "active",
	}
	f.employees.add(f.owner)
	f.employees.add(f.approver)
	f.balances.set(f.owner.ID, ledger.TypeAnnual, 25)
	f.balances.set(f.owner.ID, ledger.TypeSick, 10)

	f.service = leave.NewServiceWithOutbox(
		gdb, f.repo, f.employees, f.balances, f.outbox, f.cache,
	)
	return f
}

func (f *leaveFixture) expectTx(commit bool) {
	f.sqlMock.ExpectBegin()
	if commit {
		f.sqlMock.ExpectCommit()
	} else {
		f.sqlMock.ExpectRollback()
	}
}

// pending stores a request directly, bypassing the service, so decision
// tests control every field.
func (f *leaveFixture) pending(leaveType string, totalDays int) *leave.LeaveRequest {
	start, _ := time.Parse("2006-01-02", "2025-07-01")
	l := &leave.LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  f.owner.ID,
		LeaveType:   leaveType,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, totalDays-1),
		TotalDays:   totalDays,
		Reason:      "family trip",
		Status:      leave.StatusPending,
		RequestedAt: time.Now().UTC(),
	}
	f.repo.requests[l.ID.String()] = l
	return l
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := setupLeaveTest(t)
		f.expectTx(true)

		resp, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: f.owner.ID.String(),
			LeaveType:  ledger.TypeAnnual,
			StartDate:  "2025-07-01",
			EndDate:    "2025-07-05",
			Reason:     "family trip",
		})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 5, resp.TotalDays)
		assert.Equal(t, "John Doe", resp.EmployeeName)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - single day counts as one", func(t *testing.T) {
		f := setupLeaveTest(t)
		f.expectTx(true)

		resp, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: f.owner.ID.String(),
			LeaveType:  ledger.TypeSick,
			StartDate:  "2025-06-25",
			EndDate:    "2025-06-25",
			Reason:     "doctor visit",
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, resp.TotalDays)
	})

	t.Run("success - request larger than the balance still goes pending", func(t *testing.T) {
		f := setupLeaveTest(t)
		f.expectTx(true)

		resp, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: f.owner.ID.String(),
			LeaveType:  ledger.TypeAnnual,
			StartDate:  "2025-07-01",
			EndDate:    "2025-07-30",
			Reason:     "long haul",
		})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 30, resp.TotalDays)
		assert.Equal(t, 25, f.balances.days(f.owner.ID, ledger.TypeAnnual))
	})

	t.Run("negative - inactive employee", func(t *testing.T) {
		f := setupLeaveTest(t)
		inactive := employee.Employee{
			ID: uuid.New(), FirstName: "Old", LastName: "Timer", Status: "terminated",
		}
		f.employees.add(inactive)
		f.expectTx(false)

		_, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: inactive.ID.String(),
			LeaveType:  ledger.TypeAnnual,
			StartDate:  "2025-07-01",
			EndDate:    "2025-07-05",
			Reason:     "trip",
		})
		assert.ErrorIs(t, err, ruleserrors.ErrEmployeeNotActive)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - unknown employee", func(t *testing.T) {
		f := setupLeaveTest(t)
		f.expectTx(false)

		_, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: uuid.New().String(),
			LeaveType:  ledger.TypeAnnual,
			StartDate:  "2025-07-01",
			EndDate:    "2025-07-05",
			Reason:     "trip",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotFound)
	})

	t.Run("negative - bad date format", func(t *testing.T) {
		f := setupLeaveTest(t)

		_, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: f.owner.ID.String(),
			LeaveType:  ledger.TypeAnnual,
			StartDate:  "07/01/2025",
			EndDate:    "2025-07-05",
			Reason:     "trip",
		})
		assert.ErrorIs(t, err, ruleserrors.ErrInvalidDateFormat)
	})

	t.Run("negative - end before start", func(t *testing.T) {
		f := setupLeaveTest(t)

		_, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: f.owner.ID.String(),
			LeaveType:  ledger.TypeAnnual,
			StartDate:  "2025-07-05",
			EndDate:    "2025-07-01",
			Reason:     "trip",
		})
		assert.ErrorIs(t, err, ruleserrors.ErrInvalidDateRange)
	})

	t.Run("negative - unknown leave type", func(t *testing.T) {
		f := setupLeaveTest(t)

		_, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: f.owner.ID.String(),
			LeaveType:  "sabbatical",
			StartDate:  "2025-07-01",
			EndDate:    "2025-07-05",
			Reason:     "trip",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)
	})
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("success - debit and status commit together", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 5)
		f.expectTx(true)

		resp, err := f.service.Approve(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: f.approver.ID.String(),
		})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ApproverID)
		assert.Equal(t, f.approver.ID.String(), *resp.ApproverID)
		assert.NotNil(t, resp.DecidedAt)

		assert.Equal(t, 20, f.balances.days(f.owner.ID, ledger.TypeAnnual))
		assert.Equal(t, []string{f.owner.ID.String()}, f.cache.invalidated)

		// the decision is also queued for publication
		assert.Len(t, f.outbox.created, 1)
		assert.Equal(t, "leave_decided", f.outbox.created[0].EventType)
		assert.Equal(t, events.LeaveDecidedTopic, f.outbox.created[0].Topic)
		var event events.LeaveDecidedEvent
		assert.NoError(t, json.Unmarshal(f.outbox.created[0].Payload, &event))
		assert.Equal(t, leave.StatusApproved, event.Status)
		assert.Equal(t, 5, event.TotalDays)

		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - non countable type skips the debit", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeUnpaid, 60)
		f.expectTx(true)

		resp, err := f.service.Approve(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: f.approver.ID.String(),
		})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, 25, f.balances.days(f.owner.ID, ledger.TypeAnnual))
	})

	t.Run("negative - insufficient balance leaves the request pending", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 30)
		f.expectTx(false)

		_, err := f.service.Approve(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: f.approver.ID.String(),
		})
		assert.ErrorIs(t, err, ledgererrors.ErrInsufficientBalance)

		stored, _ := f.repo.FindByID(ctx, l.ID.String())
		assert.Equal(t, leave.StatusPending, stored.Status)
		assert.Nil(t, stored.ApproverID)
		assert.Equal(t, 25, f.balances.days(f.owner.ID, ledger.TypeAnnual))
		assert.Empty(t, f.outbox.created)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - self approval", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 5)
		f.expectTx(false)

		_, err := f.service.Approve(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: f.owner.ID.String(),
		})
		assert.ErrorIs(t, err, ruleserrors.ErrSelfApproval)

		stored, _ := f.repo.FindByID(ctx, l.ID.String())
		assert.Equal(t, leave.StatusPending, stored.Status)
		assert.Equal(t, 25, f.balances.days(f.owner.ID, ledger.TypeAnnual))
	})

	t.Run("negative - second approval is rejected and debits nothing more", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 5)

		f.expectTx(true)
		_, err := f.service.Approve(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: f.approver.ID.String(),
		})
		assert.NoError(t, err)

		f.expectTx(false)
		_, err = f.service.Approve(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: f.approver.ID.String(),
		})
		assert.ErrorIs(t, err, ruleserrors.ErrRequestNotPending)

		// debited exactly once
		assert.Equal(t, 20, f.balances.days(f.owner.ID, ledger.TypeAnnual))
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - unknown approver", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 5)
		f.expectTx(false)

		_, err := f.service.Approve(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: uuid.New().String(),
		})
		assert.ErrorIs(t, err, leaveerrors.ErrApproverNotFound)
	})

	t.Run("negative - unknown request", func(t *testing.T) {
		f := setupLeaveTest(t)
		f.expectTx(false)

		_, err := f.service.Approve(ctx, uuid.New().String(), leave.DecideLeaveRequest{
			ApproverID: f.approver.ID.String(),
		})
		assert.ErrorIs(t, err, leaveerrors.ErrRequestNotFound)
	})

	t.Run("negative - malformed ids", func(t *testing.T) {
		f := setupLeaveTest(t)

		_, err := f.service.Approve(ctx, "nope", leave.DecideLeaveRequest{
			ApproverID: f.approver.ID.String(),
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidRequestID)

		l := f.pending(ledger.TypeAnnual, 5)
		_, err = f.service.Approve(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: "nope",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidApproverID)
	})
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("success - balance untouched", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 5)
		f.expectTx(true)

		resp, err := f.service.Reject(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: f.approver.ID.String(),
			Comments:   "overlaps the release window",
		})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.NotNil(t, resp.Comments)
		assert.Equal(t, "overlaps the release window", *resp.Comments)
		assert.Equal(t, 25, f.balances.days(f.owner.ID, ledger.TypeAnnual))
	})

	t.Run("negative - comments are mandatory", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 5)

		_, err := f.service.Reject(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: f.approver.ID.String(),
		})
		assert.ErrorIs(t, err, leaveerrors.ErrMissingComments)

		stored, _ := f.repo.FindByID(ctx, l.ID.String())
		assert.Equal(t, leave.StatusPending, stored.Status)
	})

	t.Run("negative - self rejection", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 5)
		f.expectTx(false)

		_, err := f.service.Reject(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: f.owner.ID.String(),
			Comments:   "changed my mind",
		})
		assert.ErrorIs(t, err, ruleserrors.ErrSelfApproval)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success - owner cancels a pending request", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 5)
		f.expectTx(true)

		resp, err := f.service.Cancel(ctx, l.ID.String(), leave.CancelLeaveRequest{
			RequesterID: f.owner.ID.String(),
		})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
		assert.Equal(t, 25, f.balances.days(f.owner.ID, ledger.TypeAnnual))
	})

	t.Run("negative - only the owner can cancel", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 5)
		f.expectTx(false)

		_, err := f.service.Cancel(ctx, l.ID.String(), leave.CancelLeaveRequest{
			RequesterID: f.approver.ID.String(),
		})
		assert.ErrorIs(t, err, ruleserrors.ErrNotOwner)

		stored, _ := f.repo.FindByID(ctx, l.ID.String())
		assert.Equal(t, leave.StatusPending, stored.Status)
	})

	t.Run("negative - decided requests cannot be cancelled", func(t *testing.T) {
		f := setupLeaveTest(t)
		l := f.pending(ledger.TypeAnnual, 5)

		f.expectTx(true)
		_, err := f.service.Approve(ctx, l.ID.String(), leave.DecideLeaveRequest{
			ApproverID: f.approver.ID.String(),
		})
		assert.NoError(t, err)

		f.expectTx(false)
		_, err = f.service.Cancel(ctx, l.ID.String(), leave.CancelLeaveRequest{
			RequesterID: f.owner.ID.String(),
		})
		assert.ErrorIs(t, err, ruleserrors.ErrRequestNotPending)
	})
}

func TestLeaveService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success - filters combine as a conjunction", func(t *testing.T) {
		f := setupLeaveTest(t)
		f.pending(ledger.TypeAnnual, 5)
		f.pending(ledger.TypeSick, 2)

		all, err := f.service.GetAll(ctx, leave.ListFilter{
			EmployeeID: f.owner.ID.String(),
			Status:     leave.StatusPending,
			LeaveType:  ledger.TypeSick,
		})
		assert.NoError(t, err)
		assert.Len(t, all, 1)
		assert.Equal(t, ledger.TypeSick, all[0].LeaveType)
	})

	t.Run("negative - invalid filter values", func(t *testing.T) {
		f := setupLeaveTest(t)

		_, err := f.service.GetAll(ctx, leave.ListFilter{Status: "held"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusFilter)

		_, err = f.service.GetAll(ctx, leave.ListFilter{EmployeeID: "nope"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidEmployeeID)

		_, err = f.service.GetAll(ctx, leave.ListFilter{LeaveType: "sabbatical"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)
	})
}

func TestLeaveService_GetByID(t *testing.T) {
	ctx := context.Background()
	f := setupLeaveTest(t)
	l := f.pending(ledger.TypeAnnual, 5)

	resp, err := f.service.GetByID(ctx, l.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, l.ID.String(), resp.ID)
	assert.Equal(t, "John Doe", resp.EmployeeName)

	_, err = f.service.GetByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, leaveerrors.ErrRequestNotFound)

	_, err = f.service.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidRequestID)
}
