package absence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	absenceerrors "go-people/internal/absence/errors"
	"go-people/internal/employee"
	employeeerrors "go-people/internal/employee/errors"
	"go-people/internal/events"
	"go-people/internal/messaging/kafka"
	"go-people/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const PendingCountCacheKey = "absences:pending_count"

const maxReasonLength = 1000

//go:generate mockgen -source=absence_service.go -destination=mock/absence_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actorID string, req SubmitAbsenceRequest) (AbsenceResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateAbsenceRequest) (AbsenceResponse, error)
	Cancel(ctx context.Context, actorID, id string) (AbsenceResponse, error)
	Approve(ctx context.Context, approverID, id string, comments *string) (AbsenceResponse, error)
	Reject(ctx context.Context, approverID, id string, comments *string) (AbsenceResponse, error)

	GetByID(ctx context.Context, id string) (AbsenceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, pendingOnly bool) ([]AbsenceResponse, error)
	ListByStatus(ctx context.Context, status string) ([]AbsenceResponse, error)
	ListByType(ctx context.Context, absenceType string) ([]AbsenceResponse, error)
	ListPendingForManager(ctx context.Context, managerID string) ([]AbsenceResponse, error)
	ListPendingByDepartment(ctx context.Context, department string) ([]AbsenceResponse, error)
	ListCurrent(ctx context.Context, employeeID string) ([]AbsenceResponse, error)
	ListUpcoming(ctx context.Context, employeeID string) ([]AbsenceResponse, error)

	IsOnLeave(ctx context.Context, employeeID string, date time.Time) (bool, error)
	CountForEmployee(ctx context.Context, employeeID, status string) (int64, error)
	PendingCount(ctx context.Context) (int64, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	directory employee.DirectoryLookup
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, directory employee.DirectoryLookup, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, directory, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	directory employee.DirectoryLookup,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("absence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absence.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		directory: directory,
		outbox:    outboxRepo,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, actorID string, req SubmitAbsenceRequest) (AbsenceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit absence requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AbsenceResponse{}, absenceerrors.ErrInvalidEmployeeID
	}
	fields, err := validateMutableFields(mutableFields{
		AbsenceType:           req.AbsenceType,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		IsHalfDay:             req.IsHalfDay,
		HalfDayPeriod:         req.HalfDayPeriod,
		Reason:                req.Reason,
		EmergencyContact:      req.EmergencyContact,
		EmergencyContactPhone: req.EmergencyContactPhone,
		WorkDelegationNotes:   req.WorkDelegationNotes,
		DelegatedTo:           req.DelegatedTo,
	})
	if err != nil {
		s.logger.Warn("submit absence validation failed", zap.Error(err))
		return AbsenceResponse{}, err
	}

	if _, err := s.directory.Lookup(ctx, employeeID.String()); err != nil {
		return AbsenceResponse{}, err
	}
	if err := s.checkDelegate(ctx, fields.delegatedTo); err != nil {
		return AbsenceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit absence begin tx failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlapping(ctx, employeeID.String(), fields.startDate, fields.endDate, nil)
	if err != nil {
		s.logger.Error("submit absence overlap check failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	if overlap {
		s.logger.Warn("submit absence overlap detected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return AbsenceResponse{}, absenceerrors.ErrAbsenceOverlap
	}

	now := s.now()
	r := &AbsenceRequest{
		ID:                    uuid.New(),
		EmployeeID:            employeeID,
		AbsenceType:           fields.absenceType,
		StartDate:             fields.startDate,
		EndDate:               fields.endDate,
		IsHalfDay:             fields.isHalfDay,
		HalfDayPeriod:         fields.halfDayPeriod,
		Reason:                fields.reason,
		EmergencyContact:      req.EmergencyContact,
		EmergencyContactPhone: req.EmergencyContactPhone,
		WorkDelegationNotes:   req.WorkDelegationNotes,
		DelegatedTo:           fields.delegatedTo,
		Status:                StatusPending,
		RequestedAt:           now,
	}

	if err := qtx.Create(ctx, r); err != nil {
		s.logger.Error("submit absence persist failed", zap.Error(err))
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit absence commit failed", zap.Error(err))
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	s.invalidatePendingCount(ctx)

	s.logger.Info("submit absence success",
		zap.String("request_id", rid),
		zap.String("absence_id", r.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return s.mapToResponse(*r), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateAbsenceRequest) (AbsenceResponse, error) {
	s.logger.Debug("update absence requested",
		zap.String("absence_id", id),
		zap.String("actor_id", actorID),
	)

	fields, err := validateMutableFields(mutableFields{
		AbsenceType:           req.AbsenceType,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		IsHalfDay:             req.IsHalfDay,
		HalfDayPeriod:         req.HalfDayPeriod,
		Reason:                req.Reason,
		EmergencyContact:      req.EmergencyContact,
		EmergencyContactPhone: req.EmergencyContactPhone,
		WorkDelegationNotes:   req.WorkDelegationNotes,
		DelegatedTo:           req.DelegatedTo,
	})
	if err != nil {
		s.logger.Warn("update absence validation failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	if err := s.checkDelegate(ctx, fields.delegatedTo); err != nil {
		return AbsenceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update absence begin tx failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AbsenceResponse{}, absenceerrors.ErrAbsenceNotFound
		}
		return AbsenceResponse{}, err
	}
	if r.Status != StatusPending {
		s.logger.Warn("update absence not pending",
			zap.String("absence_id", id),
			zap.String("status", r.Status),
		)
		return AbsenceResponse{}, absenceerrors.ErrRequestImmutable
	}

	// Exclude the request's own row so an unchanged range never conflicts
	// with itself.
	overlap, err := qtx.HasOverlapping(ctx, r.EmployeeID.String(), fields.startDate, fields.endDate, &id)
	if err != nil {
		s.logger.Error("update absence overlap check failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	if overlap {
		return AbsenceResponse{}, absenceerrors.ErrAbsenceOverlap
	}

	r.AbsenceType = fields.absenceType
	r.StartDate = fields.startDate
	r.EndDate = fields.endDate
	r.IsHalfDay = fields.isHalfDay
	r.HalfDayPeriod = fields.halfDayPeriod
	r.Reason = fields.reason
	r.EmergencyContact = req.EmergencyContact
	r.EmergencyContactPhone = req.EmergencyContactPhone
	r.WorkDelegationNotes = req.WorkDelegationNotes
	r.DelegatedTo = fields.delegatedTo

	if err := qtx.Update(ctx, r); err != nil {
		s.logger.Error("update absence persist failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update absence commit failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update absence success", zap.String("absence_id", id))

	return s.mapToResponse(*r), nil
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (AbsenceResponse, error) {
	s.logger.Debug("cancel absence requested",
		zap.String("absence_id", id),
		zap.String("actor_id", actorID),
	)

	now := s.now()
	rows, err := s.repo.TransitionStatus(ctx, id, StatusPending, map[string]any{
		"status":     StatusCancelled,
		"updated_at": now,
	})
	if err != nil {
		s.logger.Error("cancel absence transition failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, err
	}
	if rows == 0 {
		return AbsenceResponse{}, s.classifyTransitionFailure(ctx, id, absenceerrors.ErrNotCancellable)
	}

	s.invalidatePendingCount(ctx)

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("cancel absence success", zap.String("absence_id", id))

	return s.mapToResponse(*r), nil
}

func (s *service) Approve(ctx context.Context, approverID, id string, comments *string) (AbsenceResponse, error) {
	return s.resolve(ctx, approverID, id, StatusApproved, comments)
}

func (s *service) Reject(ctx context.Context, approverID, id string, comments *string) (AbsenceResponse, error) {
	return s.resolve(ctx, approverID, id, StatusRejected, comments)
}

// resolve is the shared approve/reject path. The status write is a
// compare-and-set guarded on PENDING, so of two racing approvers exactly
// one wins and the other sees the already-resolved error.
func (s *service) resolve(ctx context.Context, approverID, id, targetStatus string, comments *string) (AbsenceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("resolve absence requested",
		zap.String("request_id", rid),
		zap.String("absence_id", id),
		zap.String("approver_id", approverID),
		zap.String("target_status", targetStatus),
	)

	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return AbsenceResponse{}, absenceerrors.ErrInvalidApproverID
	}
	if _, err := s.directory.Lookup(ctx, approverUUID.String()); err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return AbsenceResponse{}, absenceerrors.ErrApproverNotFound
		}
		return AbsenceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("resolve absence begin tx failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	now := s.now()
	updates := map[string]any{
		"status":           targetStatus,
		"approved_by":      approverUUID,
		"manager_comments": comments,
		"updated_at":       now,
	}
	if targetStatus == StatusApproved {
		updates["approved_at"] = now
	} else {
		updates["rejected_at"] = now
	}

	rows, err := qtx.TransitionStatus(ctx, id, StatusPending, updates)
	if err != nil {
		s.logger.Error("resolve absence transition failed",
			zap.String("absence_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return AbsenceResponse{}, err
	}
	if rows == 0 {
		s.logger.Warn("resolve absence not pending",
			zap.String("absence_id", id),
			zap.String("target_status", targetStatus),
		)
		return AbsenceResponse{}, s.classifyTransitionFailure(ctx, id, absenceerrors.ErrAlreadyResolved)
	}

	r, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		eventType := events.AbsenceApprovedEventType
		if targetStatus == StatusRejected {
			eventType = events.AbsenceRejectedEventType
		}
		event := events.AbsenceResolvedEvent{
			EventType:  eventType,
			RequestID:  rid,
			AbsenceID:  r.ID.String(),
			EmployeeID: r.EmployeeID.String(),
			ResolvedBy: approverUUID.String(),
			StartDate:  r.StartDate.Format("2006-01-02"),
			EndDate:    r.EndDate.Format("2006-01-02"),
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal absence event failed", zap.Error(err))
			return AbsenceResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "absence_request",
			AggregateID:   r.ID.String(),
			EventType:     eventType,
			Topic:         events.AbsenceLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("resolve absence outbox persist failed",
				zap.String("absence_id", id),
				zap.Error(err),
			)
			return AbsenceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("resolve absence commit failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, err
	}

	s.invalidatePendingCount(ctx)

	s.logger.Info("resolve absence success",
		zap.String("request_id", rid),
		zap.String("absence_id", id),
		zap.String("status", targetStatus),
	)

	return s.mapToResponse(*r), nil
}

// classifyTransitionFailure distinguishes an unknown id from a CAS loss.
func (s *service) classifyTransitionFailure(ctx context.Context, id string, stateErr error) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return absenceerrors.ErrAbsenceNotFound
		}
		return err
	}
	return stateErr
}

func (s *service) GetByID(ctx context.Context, id string) (AbsenceResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AbsenceResponse{}, absenceerrors.ErrAbsenceNotFound
		}
		return AbsenceResponse{}, err
	}
	return s.mapToResponse(*r), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string, pendingOnly bool) ([]AbsenceResponse, error) {
	if _, err := s.directory.Lookup(ctx, employeeID); err != nil {
		return nil, err
	}

	var (
		reqs []AbsenceRequest
		err  error
	)
	if pendingOnly {
		reqs, err = s.repo.FindByEmployeeAndStatus(ctx, employeeID, StatusPending)
	} else {
		reqs, err = s.repo.FindByEmployee(ctx, employeeID)
	}
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(reqs), nil
}

func (s *service) ListByStatus(ctx context.Context, status string) ([]AbsenceResponse, error) {
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
	default:
		return nil, absenceerrors.ErrInvalidStatusFilter
	}

	reqs, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(reqs), nil
}

func (s *service) ListByType(ctx context.Context, absenceType string) ([]AbsenceResponse, error) {
	if !IsValidType(absenceType) {
		return nil, absenceerrors.ErrInvalidAbsenceType
	}

	reqs, err := s.repo.FindApprovedByType(ctx, absenceType)
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(reqs), nil
}

func (s *service) ListPendingForManager(ctx context.Context, managerID string) ([]AbsenceResponse, error) {
	if _, err := s.directory.Lookup(ctx, managerID); err != nil {
		return nil, err
	}

	reqs, err := s.repo.FindPendingForManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(reqs), nil
}

func (s *service) ListPendingByDepartment(ctx context.Context, department string) ([]AbsenceResponse, error) {
	reqs, err := s.repo.FindPendingByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(reqs), nil
}

func (s *service) ListCurrent(ctx context.Context, employeeID string) ([]AbsenceResponse, error) {
	today := truncateToDay(s.now())

	var (
		reqs []AbsenceRequest
		err  error
	)
	if employeeID == "" {
		reqs, err = s.repo.FindCurrent(ctx, today, StatusApproved)
	} else {
		reqs, err = s.repo.FindCurrentForEmployee(ctx, employeeID, today, StatusApproved)
	}
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(reqs), nil
}

func (s *service) ListUpcoming(ctx context.Context, employeeID string) ([]AbsenceResponse, error) {
	today := truncateToDay(s.now())

	var (
		reqs []AbsenceRequest
		err  error
	)
	if employeeID == "" {
		reqs, err = s.repo.FindUpcoming(ctx, today, StatusApproved)
	} else {
		reqs, err = s.repo.FindUpcomingForEmployee(ctx, employeeID, today, StatusApproved)
	}
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(reqs), nil
}

// IsOnLeave is true exactly when an approved request's inclusive range
// contains the given date, boundary days included.
func (s *service) IsOnLeave(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return false, absenceerrors.ErrInvalidEmployeeID
	}

	reqs, err := s.repo.FindCurrentForEmployee(ctx, employeeID, truncateToDay(date), StatusApproved)
	if err != nil {
		return false, err
	}
	return len(reqs) > 0, nil
}

func (s *service) CountForEmployee(ctx context.Context, employeeID, status string) (int64, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return 0, absenceerrors.ErrInvalidEmployeeID
	}
	return s.repo.CountByEmployeeAndStatus(ctx, employeeID, status)
}

// PendingCount reports pending requests from the last year, cached briefly
// in redis so dashboard polling stays off the database.
func (s *service) PendingCount(ctx context.Context) (int64, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, PendingCountCacheKey).Result(); err == nil {
			if n, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return n, nil
			}
		}
	}

	v, err, _ := s.sf.Do(PendingCountCacheKey, func() (interface{}, error) {
		since := s.now().AddDate(-1, 0, 0)
		count, err := s.repo.CountPendingSince(ctx, since)
		if err != nil {
			return int64(0), err
		}

		if s.rdb != nil {
			s.rdb.Set(ctx, PendingCountCacheKey, strconv.FormatInt(count, 10), time.Minute)
		}

		return count, nil
	})
	if err != nil {
		return 0, err
	}

	return v.(int64), nil
}

func (s *service) checkDelegate(ctx context.Context, delegatedTo *uuid.UUID) error {
	if delegatedTo == nil {
		return nil
	}
	if _, err := s.directory.Lookup(ctx, delegatedTo.String()); err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return absenceerrors.ErrDelegateNotFound
		}
		return err
	}
	return nil
}

func (s *service) invalidatePendingCount(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, PendingCountCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate pending count cache",
			zap.Error(err),
			zap.String("key", PendingCountCacheKey),
		)
	}
}

type mutableFields struct {
	AbsenceType           string
	StartDate             string
	EndDate               string
	IsHalfDay             bool
	HalfDayPeriod         *string
	Reason                string
	EmergencyContact      *string
	EmergencyContactPhone *string
	WorkDelegationNotes   *string
	DelegatedTo           *string
}

type validatedFields struct {
	absenceType   string
	startDate     time.Time
	endDate       time.Time
	isHalfDay     bool
	halfDayPeriod *string
	reason        string
	delegatedTo   *uuid.UUID
}

func validateMutableFields(f mutableFields) (validatedFields, error) {
	var out validatedFields

	if !IsValidType(f.AbsenceType) {
		return out, absenceerrors.ErrInvalidAbsenceType
	}
	out.absenceType = f.AbsenceType

	startDate, err := parseDate(f.StartDate)
	if err != nil {
		return out, err
	}
	endDate, err := parseDate(f.EndDate)
	if err != nil {
		return out, err
	}
	if startDate.After(endDate) {
		return out, absenceerrors.ErrInvalidDateRange
	}

	out.isHalfDay = f.IsHalfDay
	if f.IsHalfDay {
		if f.HalfDayPeriod == nil || *f.HalfDayPeriod == "" {
			return out, absenceerrors.ErrHalfDayPeriodRequired
		}
		if *f.HalfDayPeriod != HalfDayMorning && *f.HalfDayPeriod != HalfDayAfternoon {
			return out, absenceerrors.ErrInvalidHalfDayPeriod
		}
		out.halfDayPeriod = f.HalfDayPeriod
		// A half day occupies a single calendar day; normalize the range.
		endDate = startDate
	}
	out.startDate = startDate
	out.endDate = endDate

	reason := strings.TrimSpace(f.Reason)
	if reason == "" {
		return out, absenceerrors.ErrReasonRequired
	}
	if len(reason) > maxReasonLength {
		return out, absenceerrors.ErrReasonTooLong
	}
	out.reason = reason

	if f.DelegatedTo != nil && *f.DelegatedTo != "" {
		delegateID, err := uuid.Parse(*f.DelegatedTo)
		if err != nil {
			return out, absenceerrors.ErrInvalidDelegateID
		}
		out.delegatedTo = &delegateID
	}

	return out, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, absenceerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) mapToResponse(r AbsenceRequest) AbsenceResponse {
	resp := AbsenceResponse{
		ID:                    r.ID.String(),
		EmployeeID:            r.EmployeeID.String(),
		AbsenceType:           r.AbsenceType,
		StartDate:             r.StartDate.Format("2006-01-02"),
		EndDate:               r.EndDate.Format("2006-01-02"),
		IsHalfDay:             r.IsHalfDay,
		HalfDayPeriod:         r.HalfDayPeriod,
		DurationDays:          r.DurationDays(),
		Reason:                r.Reason,
		ManagerComments:       r.ManagerComments,
		EmergencyContact:      r.EmergencyContact,
		EmergencyContactPhone: r.EmergencyContactPhone,
		WorkDelegationNotes:   r.WorkDelegationNotes,
		Status:                r.EffectiveStatus(truncateToDay(s.now())),
		RequestedAt:           r.RequestedAt.Format(time.RFC3339),
	}
	if r.ApprovedBy != nil {
		v := r.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if r.DelegatedTo != nil {
		v := r.DelegatedTo.String()
		resp.DelegatedTo = &v
	}
	if r.ApprovedAt != nil {
		v := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if r.RejectedAt != nil {
		v := r.RejectedAt.Format(time.RFC3339)
		resp.RejectedAt = &v
	}
	return resp
}

func (s *service) mapToListResponse(reqs []AbsenceRequest) []AbsenceResponse {
	resp := make([]AbsenceResponse, len(reqs))
	for i, r := range reqs {
		resp[i] = s.mapToResponse(r)
	}
	return resp
}
