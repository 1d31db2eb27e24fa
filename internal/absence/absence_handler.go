package absence

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	absenceerrors "go-people/internal/absence/errors"
	"go-people/internal/shared/apperror"
	"go-people/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyCacheTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	return NewHandlerWithRedis(service, nil, logger...)
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("absence.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absence.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("absence request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// finalizeIdempotency caches a successful response body and releases the
// in-flight lock taken by the idempotency middleware.
func (h *Handler) finalizeIdempotency(c *gin.Context, body any) {
	if h.rdb == nil {
		return
	}
	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if cacheKey == "" {
		return
	}

	payload, err := json.Marshal(body)
	if err != nil {
		h.logger.Error("failed to marshal idempotent response", zap.Error(err))
		return
	}
	if err := h.rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyCacheTTL).Err(); err != nil {
		h.logger.Error("failed to cache idempotent response", zap.Error(err), zap.String("key", cacheKey))
	}
	if lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit absence validation failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.finalizeIdempotency(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	if absenceType := c.Query("type"); absenceType != "" {
		resp, err := h.service.ListByType(c.Request.Context(), absenceType)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	status := c.DefaultQuery("status", StatusPending)
	resp, err := h.service.ListByStatus(c.Request.Context(), status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update absence validation failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetString("employee_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	resp, err := h.service.Cancel(c.Request.Context(), c.GetString("employee_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.resolve(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.resolve(c, h.service.Reject)
}

func (h *Handler) resolve(c *gin.Context, fn func(ctx context.Context, approverID, id string, comments *string) (AbsenceResponse, error)) {
	var req ResolveAbsenceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("http resolve absence validation failed", zap.Error(err))
			mapped := apperror.ToHTTP(apperror.MapValidationError(err))
			response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
			return
		}
	}

	resp, err := fn(c.Request.Context(), c.GetString("employee_id"), c.Param("id"), req.Comments)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	resp, err := h.service.ListByEmployee(c.Request.Context(), c.Param("employeeId"), false)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListPendingByEmployee(c *gin.Context) {
	resp, err := h.service.ListByEmployee(c.Request.Context(), c.Param("employeeId"), true)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListPendingForManager(c *gin.Context) {
	resp, err := h.service.ListPendingForManager(c.Request.Context(), c.Param("managerId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListPendingByDepartment(c *gin.Context) {
	resp, err := h.service.ListPendingByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListCurrent(c *gin.Context) {
	resp, err := h.service.ListCurrent(c.Request.Context(), c.Query("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListUpcoming(c *gin.Context) {
	resp, err := h.service.ListUpcoming(c.Request.Context(), c.Query("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) IsOnLeave(c *gin.Context) {
	employeeID := c.Param("employeeId")

	date := time.Now().UTC()
	rawDate := c.DefaultQuery("date", date.Format("2006-01-02"))
	parsed, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		h.writeServiceError(c, absenceerrors.ErrInvalidDateFormat)
		return
	}

	onLeave, err := h.service.IsOnLeave(c.Request.Context(), employeeID, parsed)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, OnLeaveResponse{
		EmployeeID: employeeID,
		Date:       rawDate,
		OnLeave:    onLeave,
	}, nil)
}

func (h *Handler) PendingCount(c *gin.Context) {
	count, err := h.service.PendingCount(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PendingCountResponse{PendingCount: count}, nil)
}
