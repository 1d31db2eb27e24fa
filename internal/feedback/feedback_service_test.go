package feedback

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	feedbackerrors "go-people/internal/feedback/errors"
	"go-people/internal/feedback/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeRepository struct {
	mu    sync.Mutex
	items map[string]*Feedback
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]*Feedback)}
}

func (f *fakeRepository) seed(item Feedback) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := item
	f.items[item.ID.String()] = &cp
}

func (f *fakeRepository) WithTx(_ *sql.Tx) Repository { return f }

func (f *fakeRepository) Create(_ context.Context, item *Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[item.ID.String()] = &cp
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeRepository) Update(_ context.Context, item *Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[item.ID.String()] = &cp
	return nil
}

func (f *fakeRepository) Archive(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok || item.Status != StatusActive {
		return 0, nil
	}
	item.Status = StatusArchived
	return 1, nil
}

func (f *fakeRepository) filter(pred func(item *Feedback) bool) []Feedback {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Feedback
	for _, item := range f.items {
		if pred(item) {
			out = append(out, *item)
		}
	}
	return out
}

func (f *fakeRepository) FindForEmployee(_ context.Context, employeeID string, publicOnly bool) ([]Feedback, error) {
	return f.filter(func(item *Feedback) bool {
		if item.EmployeeID.String() != employeeID || item.Status != StatusActive {
			return false
		}
		return !publicOnly || item.IsPublic
	}), nil
}

func (f *fakeRepository) FindGivenBy(_ context.Context, giverID string) ([]Feedback, error) {
	return f.filter(func(item *Feedback) bool {
		return item.GiverID.String() == giverID && item.Status == StatusActive
	}), nil
}

func (f *fakeRepository) FindByType(_ context.Context, feedbackType string) ([]Feedback, error) {
	return f.filter(func(item *Feedback) bool {
		return item.FeedbackType == feedbackType && item.Status == StatusActive
	}), nil
}

func (f *fakeRepository) FindByCategory(_ context.Context, category string) ([]Feedback, error) {
	return f.filter(func(item *Feedback) bool {
		return item.Category != nil && *item.Category == category && item.Status == StatusActive
	}), nil
}

func (f *fakeRepository) Search(_ context.Context, term string) ([]Feedback, error) {
	lowered := strings.ToLower(term)
	return f.filter(func(item *Feedback) bool {
		if item.Status != StatusActive {
			return false
		}
		return strings.Contains(strings.ToLower(item.Title), lowered) ||
			strings.Contains(strings.ToLower(item.Content), lowered)
	}), nil
}

func createRequest(employeeID string) CreateFeedbackRequest {
	return CreateFeedbackRequest{
		EmployeeID:   employeeID,
		Title:        "Great sprint work",
		Content:      "Shipped the migration ahead of schedule.",
		FeedbackType: TypePraise,
	}
}

func TestCreateStoresFeedback(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, true)

	giverID := uuid.NewString()
	resp, err := svc.Create(context.Background(), giverID, createRequest(uuid.NewString()))
	require.NoError(t, err)

	assert.Equal(t, StatusActive, resp.Status)
	require.NotNil(t, resp.GiverID)
	assert.Equal(t, giverID, *resp.GiverID)
	assert.Nil(t, resp.EnhancedContent)
}

func TestCreateAnonymousHidesGiver(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, true)

	req := createRequest(uuid.NewString())
	req.IsAnonymous = true

	resp, err := svc.Create(context.Background(), uuid.NewString(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.GiverID)
}

func TestCreateValidation(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, true)

	req := createRequest(uuid.NewString())
	req.FeedbackType = "RANT"
	_, err := svc.Create(context.Background(), uuid.NewString(), req)
	assert.ErrorIs(t, err, feedbackerrors.ErrInvalidFeedbackType)

	req = createRequest(uuid.NewString())
	rating := 6
	req.Rating = &rating
	_, err = svc.Create(context.Background(), uuid.NewString(), req)
	assert.ErrorIs(t, err, feedbackerrors.ErrInvalidRating)

	req = createRequest("not-a-uuid")
	_, err = svc.Create(context.Background(), uuid.NewString(), req)
	assert.ErrorIs(t, err, feedbackerrors.ErrInvalidEmployeeID)
}

func TestCreateWithEnhancement(t *testing.T) {
	ctrl := gomock.NewController(t)
	enhancer := mock.NewMockEnhancer(ctrl)
	enhancer.EXPECT().
		Enhance(gomock.Any(), gomock.Any()).
		Return("A polished version of the feedback.", nil)

	repo := newFakeRepository()
	svc := NewService(repo, enhancer, true)

	req := createRequest(uuid.NewString())
	req.Enhance = true

	resp, err := svc.Create(context.Background(), uuid.NewString(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.EnhancedContent)
	assert.Equal(t, "A polished version of the feedback.", *resp.EnhancedContent)
	assert.Equal(t, req.Content, resp.Content)
}

func TestCreateEnhancerDownFailOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	enhancer := mock.NewMockEnhancer(ctrl)
	enhancer.EXPECT().
		Enhance(gomock.Any(), gomock.Any()).
		Return("", errors.New("connection refused"))

	repo := newFakeRepository()
	svc := NewService(repo, enhancer, true)

	req := createRequest(uuid.NewString())
	req.Enhance = true

	resp, err := svc.Create(context.Background(), uuid.NewString(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.EnhancedContent)
	assert.Equal(t, req.Content, resp.Content)
}

func TestCreateEnhancerDownFailClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	enhancer := mock.NewMockEnhancer(ctrl)
	enhancer.EXPECT().
		Enhance(gomock.Any(), gomock.Any()).
		Return("", errors.New("connection refused"))

	repo := newFakeRepository()
	svc := NewService(repo, enhancer, false)

	req := createRequest(uuid.NewString())
	req.Enhance = true

	_, err := svc.Create(context.Background(), uuid.NewString(), req)
	assert.ErrorIs(t, err, feedbackerrors.ErrEnhancerUnavailable)
	assert.Empty(t, repo.items)
}

func TestUpdateClearsStaleEnhancement(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, true)

	enhanced := "Polished."
	id := uuid.New()
	repo.seed(Feedback{
		ID:              id,
		EmployeeID:      uuid.New(),
		GiverID:         uuid.New(),
		Title:           "Title",
		Content:         "Original content",
		EnhancedContent: &enhanced,
		FeedbackType:    TypeGeneral,
		Status:          StatusActive,
	})

	resp, err := svc.Update(context.Background(), id.String(), UpdateFeedbackRequest{
		Title:        "Title",
		Content:      "Different content",
		FeedbackType: TypeGeneral,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.EnhancedContent)
}

func TestUpdateRejectsArchived(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, true)

	id := uuid.New()
	repo.seed(Feedback{
		ID:           id,
		EmployeeID:   uuid.New(),
		GiverID:      uuid.New(),
		Title:        "Title",
		Content:      "Content",
		FeedbackType: TypeGeneral,
		Status:       StatusArchived,
	})

	_, err := svc.Update(context.Background(), id.String(), UpdateFeedbackRequest{
		Title:        "Title",
		Content:      "Content",
		FeedbackType: TypeGeneral,
	})
	assert.ErrorIs(t, err, feedbackerrors.ErrFeedbackArchived)
}

func TestArchive(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, true)

	id := uuid.New()
	repo.seed(Feedback{
		ID:           id,
		EmployeeID:   uuid.New(),
		GiverID:      uuid.New(),
		Title:        "Title",
		Content:      "Content",
		FeedbackType: TypeGeneral,
		Status:       StatusActive,
	})

	require.NoError(t, svc.Archive(context.Background(), id.String()))

	// A second archive finds no active row.
	err := svc.Archive(context.Background(), id.String())
	assert.ErrorIs(t, err, feedbackerrors.ErrFeedbackArchived)

	err = svc.Archive(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, feedbackerrors.ErrFeedbackNotFound)
}

func TestEnhanceRerunIsFailClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	enhancer := mock.NewMockEnhancer(ctrl)
	enhancer.EXPECT().
		Enhance(gomock.Any(), "Content").
		Return("", errors.New("timeout"))

	repo := newFakeRepository()
	// failOpen only governs the create path.
	svc := NewService(repo, enhancer, true)

	id := uuid.New()
	repo.seed(Feedback{
		ID:           id,
		EmployeeID:   uuid.New(),
		GiverID:      uuid.New(),
		Title:        "Title",
		Content:      "Content",
		FeedbackType: TypeGeneral,
		Status:       StatusActive,
	})

	_, err := svc.Enhance(context.Background(), id.String())
	assert.ErrorIs(t, err, feedbackerrors.ErrEnhancerUnavailable)
}

func TestEnhanceRerunStoresResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	enhancer := mock.NewMockEnhancer(ctrl)
	enhancer.EXPECT().
		Enhance(gomock.Any(), "Content").
		Return("Better content", nil)

	repo := newFakeRepository()
	svc := NewService(repo, enhancer, true)

	id := uuid.New()
	repo.seed(Feedback{
		ID:           id,
		EmployeeID:   uuid.New(),
		GiverID:      uuid.New(),
		Title:        "Title",
		Content:      "Content",
		FeedbackType: TypeGeneral,
		Status:       StatusActive,
	})

	resp, err := svc.Enhance(context.Background(), id.String())
	require.NoError(t, err)
	require.NotNil(t, resp.EnhancedContent)
	assert.Equal(t, "Better content", *resp.EnhancedContent)

	stored, err := repo.FindByID(context.Background(), id.String())
	require.NoError(t, err)
	require.NotNil(t, stored.EnhancedContent)
	assert.Equal(t, "Better content", *stored.EnhancedContent)
}

func TestSearchRequiresTerm(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, true)

	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, feedbackerrors.ErrSearchTermRequired)
}

func TestListForEmployeePublicOnly(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, true)

	employeeID := uuid.New()
	repo.seed(Feedback{
		ID: uuid.New(), EmployeeID: employeeID, GiverID: uuid.New(),
		Title: "Public", Content: "c", FeedbackType: TypePraise,
		IsPublic: true, Status: StatusActive,
	})
	repo.seed(Feedback{
		ID: uuid.New(), EmployeeID: employeeID, GiverID: uuid.New(),
		Title: "Private", Content: "c", FeedbackType: TypePraise,
		Status: StatusActive,
	})

	all, err := svc.ListForEmployee(context.Background(), employeeID.String(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	public, err := svc.ListForEmployee(context.Background(), employeeID.String(), true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Public", public[0].Title)
}

func TestHTTPEnhancer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"rewritten"}`))
	}))
	defer server.Close()

	enhancer := NewHTTPEnhancer(server.URL, time.Second)
	out, err := enhancer.Enhance(context.Background(), "original")
	require.NoError(t, err)
	assert.Equal(t, "rewritten", out)
}

func TestHTTPEnhancerNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	enhancer := NewHTTPEnhancer(server.URL, time.Second)
	_, err := enhancer.Enhance(context.Background(), "original")
	assert.Error(t, err)
}

func TestHTTPEnhancerEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"text":""}`))
	}))
	defer server.Close()

	enhancer := NewHTTPEnhancer(server.URL, time.Second)
	_, err := enhancer.Enhance(context.Background(), "original")
	assert.Error(t, err)
}
