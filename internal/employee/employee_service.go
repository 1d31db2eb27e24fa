package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-people/internal/events"
	"go-people/internal/messaging/kafka"
	"go-people/internal/shared/contextutil"
	"go-people/internal/shared/counter"

	employeeerrors "go-people/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsCacheKey = "employees:options"

// DirectoryEntry is the slice of an employee record the absence workflow
// needs: identity plus the approval scope (manager, department).
type DirectoryEntry struct {
	ID         string
	FullName   string
	ManagerID  string
	Department string
}

// DirectoryLookup is the read-only contract other modules consume instead
// of reaching into employee rows themselves.
type DirectoryLookup interface {
	Lookup(ctx context.Context, id string) (DirectoryEntry, error)
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	DirectoryLookup
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department", req.Department),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	managerID, err := s.resolveManager(ctx, req.ManagerID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	if req.EmploymentType == "" {
		req.EmploymentType = EmploymentFullTime
	}

	e := &Employee{
		ID:             uuid.New(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		EmployeeNumber: req.EmployeeNumber,
		Position:       req.Position,
		Department:     req.Department,
		ManagerID:      managerID,
		HireDate:       hireDate,
		EmploymentType: req.EmploymentType,
		Bio:            req.Bio,
		Skills:         req.Skills,
		Status:         StatusActive,
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: e.ID.String(),
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   e.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", e.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", e.ID.String()),
	)

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight keeps a cold cache from fanning out into N identical
	// queries when every open picker refreshes at once.
	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(employees))
		for i, e := range employees {
			resp[i] = EmployeeOption{
				ID:       e.ID.String(),
				FullName: e.FullName(),
				Position: e.Position,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

// Lookup satisfies DirectoryLookup for the absence workflow. Inactive
// employees are not part of the directory.
func (s *service) Lookup(ctx context.Context, id string) (DirectoryEntry, error) {
	e, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DirectoryEntry{}, employeeerrors.ErrEmployeeNotFound
		}
		return DirectoryEntry{}, err
	}

	entry := DirectoryEntry{
		ID:         e.ID.String(),
		FullName:   e.FullName(),
		Department: e.Department,
	}
	if e.ManagerID != nil {
		entry.ManagerID = e.ManagerID.String()
	}
	return entry, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("update employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	managerID, err := s.resolveManager(ctx, req.ManagerID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	e.FirstName = req.FirstName
	e.LastName = req.LastName
	e.Email = req.Email
	e.Phone = req.Phone
	e.Address = req.Address
	if req.EmployeeNumber != "" {
		e.EmployeeNumber = req.EmployeeNumber
	}
	e.Position = req.Position
	e.Department = req.Department
	e.ManagerID = managerID
	e.HireDate = hireDate
	if req.EmploymentType != "" {
		e.EmploymentType = req.EmploymentType
	}
	e.Bio = req.Bio
	e.Skills = req.Skills

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*e), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	s.logger.Debug("deactivate employee requested", zap.String("employee_id", id))

	rows, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		s.logger.Error("deactivate employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("deactivate employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) resolveManager(ctx context.Context, managerID *string) (*uuid.UUID, error) {
	if managerID == nil || *managerID == "" {
		return nil, nil
	}

	id, err := uuid.Parse(*managerID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidManagerID
	}

	if _, err := s.repo.FindActiveByID(ctx, id.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrManagerNotFound
		}
		return nil, err
	}

	return &id, nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID.String(),
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		Address:        e.Address,
		EmployeeNumber: e.EmployeeNumber,
		Position:       e.Position,
		Department:     e.Department,
		HireDate:       e.HireDate.Format("2006-01-02"),
		EmploymentType: e.EmploymentType,
		Bio:            e.Bio,
		Skills:         e.Skills,
		Status:         e.Status,
	}
	if e.ManagerID != nil {
		v := e.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
