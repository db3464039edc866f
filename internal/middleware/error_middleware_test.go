package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mertc/coursehub/internal/pkg/apperrors"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	HandleAPIError(c, err)
	return rec.Code
}

func TestHandleAPIErrorMapsGatewayFailureTo502(t *testing.T) {
	err := fmt.Errorf("%w: checkout declined by provider", apperrors.ErrPaymentGateway)
	if got := statusFor(t, err); got != http.StatusBadGateway {
		t.Fatalf("expected 502 for gateway failure, got %d", got)
	}
}

func TestHandleAPIErrorMapsEmailDeliveryTo502(t *testing.T) {
	if got := statusFor(t, apperrors.ErrEmailDelivery); got != http.StatusBadGateway {
		t.Fatalf("expected 502 for email delivery failure, got %d", got)
	}
}

func TestHandleAPIErrorStatusTable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading course: %w", apperrors.ErrCourseNotFound), http.StatusNotFound},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"duplicate role name", apperrors.ErrRoleNameTaken, http.StatusConflict},
		{"validation failure", apperrors.NewValidationError("name is invalid"), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusFor(t, tc.err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
