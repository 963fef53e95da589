package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	ledgererrors "leavedesk/internal/ledger/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const BalancesKeyPrefix = "balances:employee:"

func GetBalancesKey(employeeID string) string {
	return BalancesKeyPrefix + employeeID
}

const balancesCacheTTL = 10 * time.Minute

// EmployeeLookup resolves an employee id to a display name. Satisfied by
// the employee repository; declared here to keep the dependency one-way.
type EmployeeLookup interface {
	FullName(ctx context.Context, employeeID string) (string, error)
}

//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_service_mock.go -package=mock
type Service interface {
	Balances(ctx context.Context, employeeID string) (BalanceSummaryResponse, error)
	Credit(ctx context.Context, employeeID string, req CreditBalanceRequest) (BalanceSummaryResponse, error)
	InvalidateCache(ctx context.Context, employeeID string)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees EmployeeLookup
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, employees EmployeeLookup, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Balances(ctx context.Context, employeeID string) (BalanceSummaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return BalanceSummaryResponse{}, ledgererrors.ErrInvalidEmployeeID
	}

	cacheKey := GetBalancesKey(employeeID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp BalanceSummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses concurrent cache misses into one DB read.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.loadBalances(ctx, employeeID)
		if err != nil {
			return BalanceSummaryResponse{}, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, balancesCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return BalanceSummaryResponse{}, err
	}

	return v.(BalanceSummaryResponse), nil
}

func (s *service) loadBalances(ctx context.Context, employeeID string) (BalanceSummaryResponse, error) {
	name, err := s.employees.FullName(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BalanceSummaryResponse{}, ledgererrors.ErrEmployeeNotFound
		}
		return BalanceSummaryResponse{}, err
	}

	balances, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return BalanceSummaryResponse{}, err
	}

	resp := BalanceSummaryResponse{
		EmployeeID:   employeeID,
		EmployeeName: name,
		Balances:     make([]BalanceItem, len(balances)),
	}
	for i, b := range balances {
		resp.Balances[i] = BalanceItem{LeaveType: b.LeaveType, Days: b.Days}
	}
	return resp, nil
}

func (s *service) Credit(ctx context.Context, employeeID string, req CreditBalanceRequest) (BalanceSummaryResponse, error) {
	s.logger.Debug("credit balance requested",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("days", req.Days),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return BalanceSummaryResponse{}, ledgererrors.ErrInvalidEmployeeID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("credit balance begin tx failed", zap.Error(tx.Error))
		return BalanceSummaryResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := Credit(ctx, qtx, employeeUUID, req.LeaveType, req.Days); err != nil {
		s.logger.Warn("credit balance failed", zap.Error(err))
		return BalanceSummaryResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("credit balance commit failed", zap.Error(err))
		return BalanceSummaryResponse{}, err
	}

	s.InvalidateCache(ctx, employeeID)

	s.logger.Info("credit balance success",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("days", req.Days),
	)

	return s.loadBalances(ctx, employeeID)
}

func (s *service) InvalidateCache(ctx context.Context, employeeID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetBalancesKey(employeeID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate balances cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}
