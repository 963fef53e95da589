package ledger

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, b *LeaveBalance) error
	FindByEmployee(ctx context.Context, employeeID string) ([]LeaveBalance, error)
	FindByEmployeeAndType(ctx context.Context, employeeID, leaveType string) (*LeaveBalance, error)
	// FindForUpdate locks the balance row for the duration of the caller's
	// transaction so the sufficiency check and the write are one unit.
	FindForUpdate(ctx context.Context, employeeID, leaveType string) (*LeaveBalance, error)
	Save(ctx context.Context, b *LeaveBalance) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("leave_type ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindByEmployeeAndType(ctx context.Context, employeeID, leaveType string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&b, "leave_type = ?", leaveType).Error
	return &b, err
}

func (r *repository) FindForUpdate(ctx context.Context, employeeID, leaveType string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		First(&b, "leave_type = ?", leaveType).Error
	return &b, err
}

func (r *repository) Save(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(b).Error
}
