package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "app error passes through",
			err:        New(CodeConflict, "already there", http.StatusConflict),
			wantStatus: http.StatusConflict,
			wantCode:   CodeConflict,
		},
		{
			name:       "wrapped app error is unwrapped",
			err:        fmt.Errorf("outer: %w", New(CodeNotFound, "missing", http.StatusNotFound)),
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
		},
		{
			name:       "plain error becomes opaque 500",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestOpaque500HidesInternalMessage(t *testing.T) {
	got := ToHTTP(errors.New("password=hunter2 leaked into error"))
	assert.NotContains(t, got.Message, "hunter2")
}
