package leave

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"leavedesk/internal/employee"
	"leavedesk/internal/events"
	"leavedesk/internal/ledger"
	leaveerrors "leavedesk/internal/leave/errors"
	"leavedesk/internal/messaging/kafka"
	"leavedesk/internal/rules"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending   = rules.RequestStatusPending
	StatusApproved  = rules.RequestStatusApproved
	StatusRejected  = rules.RequestStatusRejected
	StatusCancelled = rules.RequestStatusCancelled
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Approve(ctx context.Context, id string, req DecideLeaveRequest) (LeaveResponse, error)
	Reject(ctx context.Context, id string, req DecideLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, id string, req CancelLeaveRequest) (LeaveResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees employee.Repository
	balances  ledger.Repository
	outbox    kafka.OutboxRepository
	cache     ledger.Service
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	balances ledger.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, employees, balances, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	balances ledger.Repository,
	outboxRepo kafka.OutboxRepository,
	cache ledger.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		balances:  balances,
		outbox:    outboxRepo,
		cache:     cache,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	if !ledger.ValidType(req.LeaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	startDate, err := rules.ParseDate(req.StartDate)
	if err != nil {
		s.logger.Warn("submit leave invalid start_date", zap.Error(err))
		return LeaveResponse{}, err
	}
	endDate, err := rules.ParseDate(req.EndDate)
	if err != nil {
		s.logger.Warn("submit leave invalid end_date", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := rules.ValidateDateRange(startDate, endDate); err != nil {
		return LeaveResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(tx.Error))
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	empl, err := s.employees.WithTx(tx).FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		s.logger.Error("submit leave employee lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := rules.ValidateSubmission(empl.Status); err != nil {
		s.logger.Warn("submit leave employee not active",
			zap.String("employee_id", req.EmployeeID),
			zap.String("status", empl.Status),
		)
		return LeaveResponse{}, err
	}

	// Balance is not checked here: sufficiency is decided at approval,
	// a pending request reserves nothing.
	l := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  employeeUUID,
		LeaveType:   req.LeaveType,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalDays:   rules.DayCount(startDate, endDate),
		Reason:      req.Reason,
		Status:      StatusPending,
		RequestedAt: time.Now().UTC(),
	}

	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("total_days", l.TotalDays),
	)

	return s.mapToResponse(ctx, *l), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, leaveerrors.ErrInvalidEmployeeID
		}
	}
	if filter.Status != "" && !rules.ValidRequestStatus(filter.Status) {
		return nil, leaveerrors.ErrInvalidStatusFilter
	}
	if filter.LeaveType != "" && !ledger.ValidType(filter.LeaveType) {
		return nil, leaveerrors.ErrInvalidLeaveType
	}

	requests, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(requests))
	for i, l := range requests {
		resp[i] = s.mapToResponse(ctx, l)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidRequestID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrRequestNotFound
		}
		return LeaveResponse{}, err
	}
	return s.mapToResponse(ctx, *l), nil
}

func (s *service) Approve(ctx context.Context, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	var comments *string
	if req.Comments != "" {
		comments = &req.Comments
	}
	return s.decide(ctx, id, req.ApproverID, StatusApproved, comments)
}

func (s *service) Reject(ctx context.Context, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	if req.Comments == "" {
		return LeaveResponse{}, leaveerrors.ErrMissingComments
	}
	return s.decide(ctx, id, req.ApproverID, StatusRejected, &req.Comments)
}

// decide is the shared approve/reject transaction. The request row is
// locked first, then (for approval) the balance row: the debit and the
// status write commit together or not at all.
func (s *service) decide(ctx context.Context, id, approverID, targetStatus string, comments *string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("approver_id", approverID),
		zap.String("target_status", targetStatus),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidRequestID
	}
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidApproverID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(tx.Error))
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrRequestNotFound
		}
		s.logger.Error("decide leave fetch failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	exists, err := s.employees.WithTx(tx).Exists(ctx, approverID)
	if err != nil {
		s.logger.Error("decide leave approver check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveerrors.ErrApproverNotFound
	}

	if err := rules.ValidateDecision(l.Status, l.EmployeeID, approverUUID); err != nil {
		s.logger.Warn("decide leave rejected by rules",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if targetStatus == StatusApproved {
		if err := ledger.Debit(ctx, s.balances.WithTx(tx), l.EmployeeID, l.LeaveType, l.TotalDays); err != nil {
			s.logger.Warn("approve leave debit failed",
				zap.String("leave_id", id),
				zap.String("employee_id", l.EmployeeID.String()),
				zap.String("leave_type", l.LeaveType),
				zap.Int("total_days", l.TotalDays),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	now := time.Now().UTC()
	l.Status = targetStatus
	l.ApproverID = &approverUUID
	l.DecidedAt = &now
	l.Comments = comments

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if s.outbox != nil {
		event := events.LeaveDecidedEvent{
			EventType:  "leave_decided",
			RequestID:  rid,
			LeaveID:    l.ID.String(),
			EmployeeID: l.EmployeeID.String(),
			ApproverID: approverUUID.String(),
			LeaveType:  l.LeaveType,
			TotalDays:  l.TotalDays,
			Status:     targetStatus,
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.Error(err))
			return LeaveResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave_request",
			AggregateID:   l.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveDecidedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("decide leave outbox persist failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("decide leave commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		// Nothing was applied; the caller can safely retry.
		return LeaveResponse{}, apperror.Wrap(err, apperror.CodeConflict,
			"decision could not be committed, please retry", http.StatusConflict)
	}

	if targetStatus == StatusApproved && s.cache != nil {
		s.cache.InvalidateCache(ctx, l.EmployeeID.String())
	}

	s.logger.Info("decide leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
	)

	return s.mapToResponse(ctx, *l), nil
}

func (s *service) Cancel(ctx context.Context, id string, req CancelLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("cancel leave requested",
		zap.String("leave_id", id),
		zap.String("requester_id", req.RequesterID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidRequestID
	}
	requesterUUID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidRequesterID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(tx.Error))
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrRequestNotFound
		}
		s.logger.Error("cancel leave fetch failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := rules.ValidateCancel(l.Status, l.EmployeeID, requesterUUID); err != nil {
		s.logger.Warn("cancel leave rejected by rules",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	l.Status = StatusCancelled

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("cancel leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("cancel leave success", zap.String("leave_id", id))

	return s.mapToResponse(ctx, *l), nil
}

func (s *service) mapToResponse(ctx context.Context, l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID.String(),
		EmployeeID:  l.EmployeeID.String(),
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate.Format("2006-01-02"),
		EndDate:     l.EndDate.Format("2006-01-02"),
		TotalDays:   l.TotalDays,
		Reason:      l.Reason,
		Status:      l.Status,
		RequestedAt: l.RequestedAt.Format(time.RFC3339),
	}
	if name, err := s.employees.FullName(ctx, l.EmployeeID.String()); err == nil {
		resp.EmployeeName = name
	}
	if l.ApproverID != nil {
		v := l.ApproverID.String()
		resp.ApproverID = &v
		if name, err := s.employees.FullName(ctx, v); err == nil {
			resp.ApproverName = &name
		}
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	resp.Comments = l.Comments
	return resp
}
