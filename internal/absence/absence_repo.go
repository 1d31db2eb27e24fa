package absence

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=absence_repo.go -destination=mock/absence_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *AbsenceRequest) error
	FindByID(ctx context.Context, id string) (*AbsenceRequest, error)
	Update(ctx context.Context, r *AbsenceRequest) error

	// TransitionStatus performs the compare-and-set write for the approval
	// workflow: the row is touched only while its status still equals
	// fromStatus, and the caller learns via the affected-row count whether
	// it won the race.
	TransitionStatus(ctx context.Context, id, fromStatus string, updates map[string]any) (int64, error)

	HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)

	FindByEmployee(ctx context.Context, employeeID string) ([]AbsenceRequest, error)
	FindByEmployeeAndStatus(ctx context.Context, employeeID, status string) ([]AbsenceRequest, error)
	FindByStatus(ctx context.Context, status string) ([]AbsenceRequest, error)
	FindApprovedByType(ctx context.Context, absenceType string) ([]AbsenceRequest, error)
	FindPendingForManager(ctx context.Context, managerID string) ([]AbsenceRequest, error)
	FindPendingByDepartment(ctx context.Context, department string) ([]AbsenceRequest, error)
	FindCurrent(ctx context.Context, date time.Time, status string) ([]AbsenceRequest, error)
	FindCurrentForEmployee(ctx context.Context, employeeID string, date time.Time, status string) ([]AbsenceRequest, error)
	FindUpcoming(ctx context.Context, date time.Time, status string) ([]AbsenceRequest, error)
	FindUpcomingForEmployee(ctx context.Context, employeeID string, date time.Time, status string) ([]AbsenceRequest, error)

	CountByEmployeeAndStatus(ctx context.Context, employeeID, status string) (int64, error)
	CountPendingSince(ctx context.Context, since time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, req *AbsenceRequest) error {
	return r.session(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*AbsenceRequest, error) {
	var req AbsenceRequest
	err := r.session(ctx).First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) Update(ctx context.Context, req *AbsenceRequest) error {
	return r.session(ctx).Save(req).Error
}

func (r *repository) TransitionStatus(ctx context.Context, id, fromStatus string, updates map[string]any) (int64, error) {
	res := r.session(ctx).
		Model(&AbsenceRequest{}).
		Where("id = ?", id).
		Where("status = ?", fromStatus).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.session(ctx).
		Model(&AbsenceRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", BlockingStatuses).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]AbsenceRequest, error) {
	var reqs []AbsenceRequest
	err := r.session(ctx).
		Where("employee_id = ?", employeeID).
		Order("requested_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByEmployeeAndStatus(ctx context.Context, employeeID, status string) ([]AbsenceRequest, error) {
	var reqs []AbsenceRequest
	err := r.session(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", status).
		Order("requested_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]AbsenceRequest, error) {
	var reqs []AbsenceRequest
	err := r.session(ctx).
		Where("status = ?", status).
		Order("requested_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindApprovedByType(ctx context.Context, absenceType string) ([]AbsenceRequest, error) {
	var reqs []AbsenceRequest
	err := r.session(ctx).
		Where("absence_type = ?", absenceType).
		Where("status = ?", StatusApproved).
		Order("start_date DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindPendingForManager(ctx context.Context, managerID string) ([]AbsenceRequest, error) {
	var reqs []AbsenceRequest
	err := r.session(ctx).
		Joins("JOIN employees ON employees.id = absence_requests.employee_id").
		Where("employees.manager_id = ?", managerID).
		Where("absence_requests.status = ?", StatusPending).
		Order("absence_requests.requested_at ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindPendingByDepartment(ctx context.Context, department string) ([]AbsenceRequest, error) {
	var reqs []AbsenceRequest
	err := r.session(ctx).
		Joins("JOIN employees ON employees.id = absence_requests.employee_id").
		Where("employees.department = ?", department).
		Where("absence_requests.status = ?", StatusPending).
		Order("absence_requests.requested_at ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindCurrent(ctx context.Context, date time.Time, status string) ([]AbsenceRequest, error) {
	var reqs []AbsenceRequest
	err := r.session(ctx).
		Where("status = ?", status).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Order("start_date ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindCurrentForEmployee(ctx context.Context, employeeID string, date time.Time, status string) ([]AbsenceRequest, error) {
	var reqs []AbsenceRequest
	err := r.session(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", status).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Order("start_date ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindUpcoming(ctx context.Context, date time.Time, status string) ([]AbsenceRequest, error) {
	var reqs []AbsenceRequest
	err := r.session(ctx).
		Where("status = ?", status).
		Where("start_date > ?", date).
		Order("start_date ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindUpcomingForEmployee(ctx context.Context, employeeID string, date time.Time, status string) ([]AbsenceRequest, error) {
	var reqs []AbsenceRequest
	err := r.session(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", status).
		Where("start_date > ?", date).
		Order("start_date ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) CountByEmployeeAndStatus(ctx context.Context, employeeID, status string) (int64, error) {
	var count int64
	err := r.session(ctx).
		Model(&AbsenceRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *repository) CountPendingSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.session(ctx).
		Model(&AbsenceRequest{}).
		Where("status = ?", StatusPending).
		Where("requested_at > ?", since).
		Count(&count).Error
	return count, err
}
