package feedback

import (
	"context"
	"errors"
	"strings"
	"time"

	feedbackerrors "go-people/internal/feedback/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, giverID string, req CreateFeedbackRequest) (FeedbackResponse, error)
	GetByID(ctx context.Context, id string) (FeedbackResponse, error)
	ListForEmployee(ctx context.Context, employeeID string, publicOnly bool) ([]FeedbackResponse, error)
	ListGivenBy(ctx context.Context, giverID string) ([]FeedbackResponse, error)
	ListByType(ctx context.Context, feedbackType string) ([]FeedbackResponse, error)
	ListByCategory(ctx context.Context, category string) ([]FeedbackResponse, error)
	Search(ctx context.Context, term string) ([]FeedbackResponse, error)
	Update(ctx context.Context, id string, req UpdateFeedbackRequest) (FeedbackResponse, error)
	Archive(ctx context.Context, id string) error
	Enhance(ctx context.Context, id string) (FeedbackResponse, error)
}

type service struct {
	repo     Repository
	enhancer Enhancer

	// failOpen keeps the original content when the enhancer is down;
	// otherwise the write is refused with SERVICE_UNAVAILABLE.
	failOpen bool

	logger *zap.Logger
}

func NewService(repo Repository, enhancer Enhancer, failOpen bool, logger ...*zap.Logger) Service {
	l := zap.L().Named("feedback.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.service")
	}
	return &service{
		repo:     repo,
		enhancer: enhancer,
		failOpen: failOpen,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, giverID string, req CreateFeedbackRequest) (FeedbackResponse, error) {
	s.logger.Debug("create feedback requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("feedback_type", req.FeedbackType),
		zap.Bool("enhance", req.Enhance),
	)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return FeedbackResponse{}, feedbackerrors.ErrInvalidEmployeeID
	}
	giverUUID, err := uuid.Parse(giverID)
	if err != nil {
		return FeedbackResponse{}, feedbackerrors.ErrInvalidGiverID
	}
	if !IsValidType(req.FeedbackType) {
		return FeedbackResponse{}, feedbackerrors.ErrInvalidFeedbackType
	}
	if err := validateRating(req.Rating); err != nil {
		return FeedbackResponse{}, err
	}

	f := &Feedback{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		GiverID:      giverUUID,
		Title:        strings.TrimSpace(req.Title),
		Content:      req.Content,
		FeedbackType: req.FeedbackType,
		Rating:       req.Rating,
		Category:     req.Category,
		Tags:         req.Tags,
		IsPublic:     req.IsPublic,
		IsAnonymous:  req.IsAnonymous,
		Status:       StatusActive,
	}

	if req.Enhance {
		enhanced, err := s.runEnhancer(ctx, f.Content)
		if err != nil {
			return FeedbackResponse{}, err
		}
		if enhanced != "" {
			f.EnhancedContent = &enhanced
		}
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error("create feedback persist failed", zap.Error(err))
		return FeedbackResponse{}, err
	}

	s.logger.Info("create feedback success",
		zap.String("feedback_id", f.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*f), nil
}

// runEnhancer applies the configured failure policy. An empty return with a
// nil error means the enhancement was skipped.
func (s *service) runEnhancer(ctx context.Context, content string) (string, error) {
	if s.enhancer == nil {
		return "", nil
	}

	enhanced, err := s.enhancer.Enhance(ctx, content)
	if err == nil {
		return enhanced, nil
	}

	if s.failOpen {
		s.logger.Warn("enhancer unavailable, storing original content", zap.Error(err))
		return "", nil
	}
	s.logger.Warn("enhancer unavailable, refusing write", zap.Error(err))
	return "", feedbackerrors.ErrEnhancerUnavailable
}

func (s *service) GetByID(ctx context.Context, id string) (FeedbackResponse, error) {
	f, err := s.findByID(ctx, id)
	if err != nil {
		return FeedbackResponse{}, err
	}
	return mapToResponse(*f), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string, publicOnly bool) ([]FeedbackResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, feedbackerrors.ErrInvalidEmployeeID
	}

	items, err := s.repo.FindForEmployee(ctx, employeeID, publicOnly)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) ListGivenBy(ctx context.Context, giverID string) ([]FeedbackResponse, error) {
	if _, err := uuid.Parse(giverID); err != nil {
		return nil, feedbackerrors.ErrInvalidGiverID
	}

	items, err := s.repo.FindGivenBy(ctx, giverID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) ListByType(ctx context.Context, feedbackType string) ([]FeedbackResponse, error) {
	if !IsValidType(feedbackType) {
		return nil, feedbackerrors.ErrInvalidFeedbackType
	}

	items, err := s.repo.FindByType(ctx, feedbackType)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]FeedbackResponse, error) {
	items, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) Search(ctx context.Context, term string) ([]FeedbackResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, feedbackerrors.ErrSearchTermRequired
	}

	items, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateFeedbackRequest) (FeedbackResponse, error) {
	s.logger.Debug("update feedback requested", zap.String("feedback_id", id))

	if !IsValidType(req.FeedbackType) {
		return FeedbackResponse{}, feedbackerrors.ErrInvalidFeedbackType
	}
	if err := validateRating(req.Rating); err != nil {
		return FeedbackResponse{}, err
	}

	f, err := s.findByID(ctx, id)
	if err != nil {
		return FeedbackResponse{}, err
	}
	if f.Status != StatusActive {
		return FeedbackResponse{}, feedbackerrors.ErrFeedbackArchived
	}

	contentChanged := f.Content != req.Content

	f.Title = strings.TrimSpace(req.Title)
	f.Content = req.Content
	f.FeedbackType = req.FeedbackType
	f.Rating = req.Rating
	f.Category = req.Category
	f.Tags = req.Tags
	f.IsPublic = req.IsPublic
	f.IsAnonymous = req.IsAnonymous

	// A stale enhancement is worse than none.
	if contentChanged {
		f.EnhancedContent = nil
	}

	if err := s.repo.Update(ctx, f); err != nil {
		s.logger.Error("update feedback persist failed", zap.String("feedback_id", id), zap.Error(err))
		return FeedbackResponse{}, err
	}

	s.logger.Info("update feedback success", zap.String("feedback_id", id))
	return mapToResponse(*f), nil
}

func (s *service) Archive(ctx context.Context, id string) error {
	s.logger.Debug("archive feedback requested", zap.String("feedback_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return feedbackerrors.ErrInvalidFeedbackID
	}

	rows, err := s.repo.Archive(ctx, id)
	if err != nil {
		s.logger.Error("archive feedback failed", zap.String("feedback_id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		if _, err := s.findByID(ctx, id); err != nil {
			return err
		}
		return feedbackerrors.ErrFeedbackArchived
	}

	s.logger.Info("archive feedback success", zap.String("feedback_id", id))
	return nil
}

func (s *service) Enhance(ctx context.Context, id string) (FeedbackResponse, error) {
	s.logger.Debug("enhance feedback requested", zap.String("feedback_id", id))

	f, err := s.findByID(ctx, id)
	if err != nil {
		return FeedbackResponse{}, err
	}
	if f.Status != StatusActive {
		return FeedbackResponse{}, feedbackerrors.ErrFeedbackArchived
	}
	if s.enhancer == nil {
		return FeedbackResponse{}, feedbackerrors.ErrEnhancerUnavailable
	}

	// An explicit re-run is always fail-closed: the caller asked for the
	// enhancement, not for a silent no-op.
	enhanced, err := s.enhancer.Enhance(ctx, f.Content)
	if err != nil {
		s.logger.Warn("enhancer unavailable", zap.String("feedback_id", id), zap.Error(err))
		return FeedbackResponse{}, feedbackerrors.ErrEnhancerUnavailable
	}

	f.EnhancedContent = &enhanced
	if err := s.repo.Update(ctx, f); err != nil {
		s.logger.Error("enhance feedback persist failed", zap.String("feedback_id", id), zap.Error(err))
		return FeedbackResponse{}, err
	}

	s.logger.Info("enhance feedback success", zap.String("feedback_id", id))
	return mapToResponse(*f), nil
}

func (s *service) findByID(ctx context.Context, id string) (*Feedback, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, feedbackerrors.ErrInvalidFeedbackID
	}

	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, feedbackerrors.ErrFeedbackNotFound
		}
		return nil, err
	}
	return f, nil
}

func validateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < 1 || *rating > 5 {
		return feedbackerrors.ErrInvalidRating
	}
	return nil
}

func mapToResponse(f Feedback) FeedbackResponse {
	resp := FeedbackResponse{
		ID:              f.ID.String(),
		EmployeeID:      f.EmployeeID.String(),
		Title:           f.Title,
		Content:         f.Content,
		EnhancedContent: f.EnhancedContent,
		FeedbackType:    f.FeedbackType,
		Rating:          f.Rating,
		Category:        f.Category,
		Tags:            f.Tags,
		IsPublic:        f.IsPublic,
		IsAnonymous:     f.IsAnonymous,
		Status:          f.Status,
		CreatedAt:       f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       f.UpdatedAt.Format(time.RFC3339),
	}

	// Anonymous feedback never exposes the giver.
	if !f.IsAnonymous {
		giver := f.GiverID.String()
		resp.GiverID = &giver
	}
	return resp
}

func mapToListResponse(items []Feedback) []FeedbackResponse {
	resp := make([]FeedbackResponse, len(items))
	for i, f := range items {
		resp[i] = mapToResponse(f)
	}
	return resp
}
