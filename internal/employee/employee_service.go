package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	employeeerrors "leavedesk/internal/employee/errors"
	"leavedesk/internal/events"
	"leavedesk/internal/ledger"
	"leavedesk/internal/messaging/kafka"
	"leavedesk/internal/rules"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	balances ledger.Repository
	counter  counter.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	balances ledger.Repository,
	counterRepo counter.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, balances, counterRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	balances ledger.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		balances: balances,
		counter:  counterRepo,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department", req.Department),
	)

	hireDate, err := rules.ParseDate(req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	taken, err := qtx.EmailExists(ctx, req.Email, "")
	if err != nil {
		s.logger.Error("create employee email check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	}

	var managerID *uuid.UUID
	if req.ManagerID != nil && *req.ManagerID != "" {
		id, err := uuid.Parse(*req.ManagerID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidManagerID
		}
		exists, err := qtx.Exists(ctx, id.String())
		if err != nil {
			s.logger.Error("create employee manager check failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if !exists {
			s.logger.Warn("create employee manager not found", zap.String("manager_id", id.String()))
			return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
		}
		managerID = &id
	}

	nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, "employee_number")
	if err != nil {
		s.logger.Error("create employee generate number failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:             uuid.New(),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          req.Email,
		EmployeeNumber: fmt.Sprintf("EMP-%06d", nextVal),
		Department:     req.Department,
		Position:       req.Position,
		HireDate:       hireDate,
		Status:         rules.EmployeeStatusActive,
		ManagerID:      managerID,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// Starting balances are part of the same commit: an employee without
	// a ledger row could never submit countable leave.
	if err := ledger.InitDefaults(ctx, s.balances.WithTx(tx), empl.ID); err != nil {
		s.logger.Error("create employee init balances failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Department: empl.Department,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return s.mapToResponse(ctx, *empl), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.String("department", filter.Department),
		zap.String("status", filter.Status),
	)

	if filter.Status != "" && !rules.ValidEmployeeStatus(filter.Status) {
		return nil, employeeerrors.ErrInvalidStatus
	}

	employees, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, empl := range employees {
		resp[i] = s.mapToResponse(ctx, empl)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return s.mapToResponse(ctx, *empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if req.FirstName == nil && req.LastName == nil && req.Email == nil &&
		req.Department == nil && req.Position == nil && req.Status == nil && req.ManagerID == nil {
		return EmployeeResponse{}, employeeerrors.ErrNoFieldsToUpdate
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.Email != nil && *req.Email != empl.Email {
		taken, err := qtx.EmailExists(ctx, *req.Email, id)
		if err != nil {
			s.logger.Error("update employee email check failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if taken {
			return EmployeeResponse{}, employeeerrors.ErrEmailTaken
		}
		empl.Email = *req.Email
	}

	if req.FirstName != nil {
		empl.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		empl.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Department != nil {
		empl.Department = *req.Department
	}
	if req.Position != nil {
		empl.Position = *req.Position
	}
	if req.Status != nil {
		if !rules.ValidEmployeeStatus(*req.Status) {
			return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
		}
		empl.Status = *req.Status
	}

	if req.ManagerID != nil {
		if *req.ManagerID == "" {
			empl.ManagerID = nil
		} else {
			managerID, err := uuid.Parse(*req.ManagerID)
			if err != nil {
				return EmployeeResponse{}, employeeerrors.ErrInvalidManagerID
			}
			exists, err := qtx.Exists(ctx, managerID.String())
			if err != nil {
				s.logger.Error("update employee manager check failed", zap.Error(err))
				return EmployeeResponse{}, err
			}
			if !exists {
				return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
			}

			if err := rules.CheckManagerChain(empl.ID, &managerID, func(current uuid.UUID) (*uuid.UUID, error) {
				return qtx.ManagerOf(ctx, current.String())
			}); err != nil {
				s.logger.Warn("update employee manager chain rejected",
					zap.String("employee_id", id),
					zap.String("manager_id", managerID.String()),
					zap.Error(err),
				)
				return EmployeeResponse{}, err
			}
			empl.ManagerID = &managerID
		}
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return s.mapToResponse(ctx, *empl), nil
}

func (s *service) mapToResponse(ctx context.Context, empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		FirstName:      empl.FirstName,
		LastName:       empl.LastName,
		Email:          empl.Email,
		EmployeeNumber: empl.EmployeeNumber,
		Department:     empl.Department,
		Position:       empl.Position,
		HireDate:       empl.HireDate.Format("2006-01-02"),
		Status:         empl.Status,
	}
	if empl.ManagerID != nil {
		v := empl.ManagerID.String()
		resp.ManagerID = &v
		if name, err := s.repo.FullName(ctx, v); err == nil {
			resp.ManagerName = &name
		}
	}
	return resp
}
