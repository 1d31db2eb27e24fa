package employee

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAllActive(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindActiveByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Deactivate(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// session routes statements through the bound transaction when one is set.
// *sql.Tx satisfies gorm.ConnPool, so the tx-scoped repository runs the same
// query builders against the caller's transaction.
func (r *repository) session(ctx context.Context) *gorm.DB {
	if r.tx == nil {
		return r.db.WithContext(ctx)
	}
	db := r.db.Session(&gorm.Session{Context: ctx, NewDB: true})
	db.Statement.ConnPool = r.tx
	return db
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.session(ctx).Create(e).Error
}

func (r *repository) FindAllActive(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.session(ctx).
		Where("status = ?", StatusActive).
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.session(ctx).
		Select("id", "first_name", "last_name", "position").
		Where("status = ?", StatusActive).
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.session(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindActiveByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.session(ctx).
		Where("status = ?", StatusActive).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.session(ctx).Save(e).Error
}

func (r *repository) Deactivate(ctx context.Context, id string) (int64, error) {
	res := r.session(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Where("status = ?", StatusActive).
		Updates(map[string]any{"status": StatusInactive, "updated_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}
