package employee

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Department string
	Status     string
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, error)
	Exists(ctx context.Context, id string) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID string) (bool, error)
	FullName(ctx context.Context, id string) (string, error)
	ManagerOf(ctx context.Context, id string) (*uuid.UUID, error)
	Update(ctx context.Context, empl *Employee) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	db := r.db.WithContext(ctx).Model(&Employee{})

	if filter.Department != "" {
		db = db.Where("LOWER(department) = LOWER(?)", filter.Department)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var employees []Employee
	err := db.Order("last_name ASC, first_name ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmailExists(ctx context.Context, email string, excludeID string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("LOWER(email) = LOWER(?)", email)

	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) FullName(ctx context.Context, id string) (string, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Select("first_name", "last_name").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return "", err
	}
	return empl.FullName(), nil
}

func (r *repository) ManagerOf(ctx context.Context, id string) (*uuid.UUID, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Select("manager_id").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return empl.ManagerID, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}
