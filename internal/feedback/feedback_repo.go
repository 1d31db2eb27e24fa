package feedback

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=feedback_repo.go -destination=mock/feedback_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, f *Feedback) error
	FindByID(ctx context.Context, id string) (*Feedback, error)
	Update(ctx context.Context, f *Feedback) error
	Archive(ctx context.Context, id string) (int64, error)

	FindForEmployee(ctx context.Context, employeeID string, publicOnly bool) ([]Feedback, error)
	FindGivenBy(ctx context.Context, giverID string) ([]Feedback, error)
	FindByType(ctx context.Context, feedbackType string) ([]Feedback, error)
	FindByCategory(ctx context.Context, category string) ([]Feedback, error)
	Search(ctx context.Context, term string) ([]Feedback, error)
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

func (r *repository) session(ctx context.Context) *gorm.DB {
	if r.tx == nil {
		return r.db.WithContext(ctx)
	}
	db := r.db.Session(&gorm.Session{Context: ctx, NewDB: true})
	db.Statement.ConnPool = r.tx
	return db
}

func (r *repository) Create(ctx context.Context, f *Feedback) error {
	return r.session(ctx).Create(f).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Feedback, error) {
	var f Feedback
	err := r.session(ctx).First(&f, "id = ?", id).Error
	return &f, err
}

func (r *repository) Update(ctx context.Context, f *Feedback) error {
	return r.session(ctx).Save(f).Error
}

func (r *repository) Archive(ctx context.Context, id string) (int64, error) {
	res := r.session(ctx).
		Model(&Feedback{}).
		Where("id = ?", id).
		Where("status = ?", StatusActive).
		Update("status", StatusArchived)
	return res.RowsAffected, res.Error
}

func (r *repository) FindForEmployee(ctx context.Context, employeeID string, publicOnly bool) ([]Feedback, error) {
	db := r.session(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusActive)
	if publicOnly {
		db = db.Where("is_public = ?", true)
	}

	var items []Feedback
	err := db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *repository) FindGivenBy(ctx context.Context, giverID string) ([]Feedback, error) {
	var items []Feedback
	err := r.session(ctx).
		Where("giver_id = ?", giverID).
		Where("status = ?", StatusActive).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByType(ctx context.Context, feedbackType string) ([]Feedback, error) {
	var items []Feedback
	err := r.session(ctx).
		Where("feedback_type = ?", feedbackType).
		Where("status = ?", StatusActive).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByCategory(ctx context.Context, category string) ([]Feedback, error) {
	var items []Feedback
	err := r.session(ctx).
		Where("category = ?", category).
		Where("status = ?", StatusActive).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) Search(ctx context.Context, term string) ([]Feedback, error) {
	pattern := "%" + term + "%"

	var items []Feedback
	err := r.session(ctx).
		Where("status = ?", StatusActive).
		Where("title ILIKE ? OR content ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
