package absence

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	absenceerrors "go-people/internal/absence/errors"
	"go-people/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService overrides only the methods a test exercises; calling anything
// else panics, which is the failure we want.
type stubService struct {
	Service

	submitFn       func(ctx context.Context, actorID string, req SubmitAbsenceRequest) (AbsenceResponse, error)
	getByIDFn      func(ctx context.Context, id string) (AbsenceResponse, error)
	approveFn      func(ctx context.Context, approverID, id string, comments *string) (AbsenceResponse, error)
	cancelFn       func(ctx context.Context, actorID, id string) (AbsenceResponse, error)
	isOnLeaveFn    func(ctx context.Context, employeeID string, date time.Time) (bool, error)
	pendingCountFn func(ctx context.Context) (int64, error)
}

func (s *stubService) Submit(ctx context.Context, actorID string, req SubmitAbsenceRequest) (AbsenceResponse, error) {
	return s.submitFn(ctx, actorID, req)
}

func (s *stubService) GetByID(ctx context.Context, id string) (AbsenceResponse, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubService) Approve(ctx context.Context, approverID, id string, comments *string) (AbsenceResponse, error) {
	return s.approveFn(ctx, approverID, id, comments)
}

func (s *stubService) Cancel(ctx context.Context, actorID, id string) (AbsenceResponse, error) {
	return s.cancelFn(ctx, actorID, id)
}

func (s *stubService) IsOnLeave(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return s.isOnLeaveFn(ctx, employeeID, date)
}

func (s *stubService) PendingCount(ctx context.Context) (int64, error) {
	return s.pendingCountFn(ctx)
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	RegisterRoutes(api, NewHandler(svc), nil)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Employee-ID", uuid.NewString())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	envelope := decodeEnvelope(t, w)
	errObj, ok := envelope["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %s", w.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

func TestSubmitEndpointCreated(t *testing.T) {
	svc := &stubService{
		submitFn: func(_ context.Context, _ string, req SubmitAbsenceRequest) (AbsenceResponse, error) {
			return AbsenceResponse{
				ID:         uuid.NewString(),
				EmployeeID: req.EmployeeID,
				Status:     StatusPending,
			}, nil
		},
	}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/absence-requests", SubmitAbsenceRequest{
		EmployeeID:  uuid.NewString(),
		AbsenceType: TypeVacation,
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-11",
		Reason:      "Family trip",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["ok"])
}

func TestSubmitEndpointRejectsMissingFields(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := doJSON(t, router, http.MethodPost, "/api/v1/absence-requests", map[string]any{
		"employee_id": uuid.NewString(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidInput, errorCode(t, w))
}

func TestSubmitEndpointMapsOverlapToConflict(t *testing.T) {
	svc := &stubService{
		submitFn: func(_ context.Context, _ string, _ SubmitAbsenceRequest) (AbsenceResponse, error) {
			return AbsenceResponse{}, absenceerrors.ErrAbsenceOverlap
		},
	}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/absence-requests", SubmitAbsenceRequest{
		EmployeeID:  uuid.NewString(),
		AbsenceType: TypeVacation,
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-11",
		Reason:      "Family trip",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperror.CodeConflict, errorCode(t, w))
}

func TestSubmitEndpointRequiresIdentity(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/absence-requests", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetEndpointMapsUnknownIDToNotFound(t *testing.T) {
	svc := &stubService{
		getByIDFn: func(_ context.Context, _ string) (AbsenceResponse, error) {
			return AbsenceResponse{}, absenceerrors.ErrAbsenceNotFound
		},
	}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodGet, "/api/v1/absence-requests/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, errorCode(t, w))
}

func TestApproveEndpointMapsResolvedToInvalidState(t *testing.T) {
	svc := &stubService{
		approveFn: func(_ context.Context, _, _ string, _ *string) (AbsenceResponse, error) {
			return AbsenceResponse{}, absenceerrors.ErrAlreadyResolved
		},
	}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/absence-requests/"+uuid.NewString()+"/approve",
		ResolveAbsenceRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidState, errorCode(t, w))
}

func TestApproveEndpointPassesComments(t *testing.T) {
	var gotComments *string
	svc := &stubService{
		approveFn: func(_ context.Context, _, id string, comments *string) (AbsenceResponse, error) {
			gotComments = comments
			return AbsenceResponse{ID: id, Status: StatusApproved}, nil
		},
	}
	router := newTestRouter(svc)

	comments := "Looks fine"
	w := doJSON(t, router, http.MethodPost, "/api/v1/absence-requests/"+uuid.NewString()+"/approve",
		ResolveAbsenceRequest{Comments: &comments})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotComments)
	assert.Equal(t, comments, *gotComments)
}

func TestCancelEndpoint(t *testing.T) {
	svc := &stubService{
		cancelFn: func(_ context.Context, _, id string) (AbsenceResponse, error) {
			return AbsenceResponse{ID: id, Status: StatusCancelled}, nil
		},
	}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/absence-requests/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOnLeaveEndpointParsesDate(t *testing.T) {
	var gotDate time.Time
	svc := &stubService{
		isOnLeaveFn: func(_ context.Context, _ string, date time.Time) (bool, error) {
			gotDate = date
			return true, nil
		},
	}
	router := newTestRouter(svc)

	employeeID := uuid.NewString()
	w := doJSON(t, router, http.MethodGet,
		"/api/v1/absence-requests/employee/"+employeeID+"/on-leave?date=2026-09-09", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-09-09", gotDate.Format("2006-01-02"))

	envelope := decodeEnvelope(t, w)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["on_leave"])
	assert.Equal(t, employeeID, data["employee_id"])
}

func TestOnLeaveEndpointRejectsBadDate(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := doJSON(t, router, http.MethodGet,
		"/api/v1/absence-requests/employee/"+uuid.NewString()+"/on-leave?date=tomorrow", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidInput, errorCode(t, w))
}

func TestPendingCountEndpoint(t *testing.T) {
	svc := &stubService{
		pendingCountFn: func(_ context.Context) (int64, error) { return 7, nil },
	}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodGet, "/api/v1/absence-requests/stats/pending-count", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), data["pending_count"])
}
