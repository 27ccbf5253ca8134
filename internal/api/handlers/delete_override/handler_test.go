package delete_override

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/PetSitting-BookingService/internal/api/middleware"
	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/internal/service/capacity"
)

type mockService struct{ mock.Mock }

func (m *mockService) DeleteOverride(ctx context.Context, caller domain.Caller, id int64) error {
	return m.Called(ctx, caller, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{name: "deleted", path: "/api/v1/admin/capacity/overrides/4", wantStatus: http.StatusNoContent},
		{name: "not found", path: "/api/v1/admin/capacity/overrides/4", err: capacity.ErrOverrideNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", path: "/api/v1/admin/capacity/overrides/4", err: capacity.ErrInternal, wantStatus: http.StatusInternalServerError},
		{name: "bad id", path: "/api/v1/admin/capacity/overrides/four", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("DeleteOverride", mock.Anything, mock.Anything, int64(4)).Return(tt.err).Maybe()

			r := mux.NewRouter()
			r.Handle("/api/v1/admin/capacity/overrides/{overrideId}",
				middleware.Auth(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle)))

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			req.Header.Set(middleware.HeaderUserID, "1")
			req.Header.Set(middleware.HeaderUserRole, "admin")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
