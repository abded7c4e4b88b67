package repository

import (
	"context"
	"errors"

	"github.com/OblivionLi/salaries-management-system/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a salary id does not exist in the store.
var ErrNotFound = errors.New("salary not found")

// Repository is the single-table persistence gateway for salary records.
// Any error other than ErrNotFound is a store failure; callers must not
// assume partial writes succeeded.
type Repository interface {
	FindAll(ctx context.Context) ([]models.Salary, error)
	FindByID(ctx context.Context, id int64) (*models.Salary, error)
	Save(ctx context.Context, salary *models.Salary) error
	Delete(ctx context.Context, salary *models.Salary) error
}

type gormRepository struct {
	db *gorm.DB
}

// New creates a Repository backed by the given GORM database.
func New(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// FindAll returns every salary record. No rows is an empty slice, not an error.
func (r *gormRepository) FindAll(ctx context.Context) ([]models.Salary, error) {
	var salaries []models.Salary
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&salaries).Error; err != nil {
		return nil, err
	}
	return salaries, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*models.Salary, error) {
	var salary models.Salary
	if err := r.db.WithContext(ctx).First(&salary, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &salary, nil
}

// Save inserts the record or updates it in place; the store assigns the id
// on insert and the passed record reflects the persisted state afterwards.
func (r *gormRepository) Save(ctx context.Context, salary *models.Salary) error {
	return r.db.WithContext(ctx).Save(salary).Error
}

func (r *gormRepository) Delete(ctx context.Context, salary *models.Salary) error {
	return r.db.WithContext(ctx).Delete(salary).Error
}
