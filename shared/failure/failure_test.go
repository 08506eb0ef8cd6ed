package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"nest/shared/failure"
)

func TestFailure_Codes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing field",
			err:        failure.BadRequestWithCode(failure.MissingField("time"), "time is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_TIME",
		},
		{
			name:       "not found",
			err:        failure.NotFound("BOOKING_NOT_FOUND", "booking not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "BOOKING_NOT_FOUND",
		},
		{
			name:       "unauthorized",
			err:        failure.Unauthorized("missing token"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   failure.CodeUnauthenticated,
		},
		{
			name:       "forbidden",
			err:        failure.Forbidden("not an admin"),
			wantStatus: http.StatusForbidden,
			wantCode:   failure.CodeForbidden,
		},
		{
			name:       "plain error maps to internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   failure.CodeInternal,
		},
		{
			name:       "wrapped failure keeps status",
			err:        fmt.Errorf("update failed: %w", failure.NotFound("BOOKING_NOT_FOUND", "booking not found")),
			wantStatus: http.StatusNotFound,
			wantCode:   "BOOKING_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, failure.GetStatus(tt.err))
			assert.Equal(t, tt.wantCode, failure.GetErrorCode(tt.err))
		})
	}
}

func TestMissingField(t *testing.T) {
	assert.Equal(t, "MISSING_NAME", failure.MissingField("name"))
	assert.Equal(t, "MISSING_PROPERTYTYPE", failure.MissingField("propertyType"))
}
