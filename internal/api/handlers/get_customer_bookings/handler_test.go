package get_customer_bookings

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
	"github.com/m04kA/PetSitting-BookingService/internal/service/bookings"
	"github.com/m04kA/PetSitting-BookingService/internal/service/bookings/models"
	"github.com/m04kA/PetSitting-BookingService/pkg/ptr"
)

type mockService struct{ mock.Mock }

func (m *mockService) ListForCustomer(ctx context.Context, caller domain.Caller, req *models.ListCustomerBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, caller, req)
	if r := args.Get(0); r != nil {
		return r.(*models.BookingListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/api/v1/customers/{customerId}/bookings", middleware.Auth(http.HandlerFunc(h.Handle)))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.HeaderUserID, "5")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	svc := &mockService{}
	caller := domain.Caller{UserID: 5, Role: domain.RoleCustomer}
	svc.On("ListForCustomer", mock.Anything, caller, &models.ListCustomerBookingsRequest{
		CustomerID: 5,
		Status:     ptr.Ptr("approved"),
	}).Return(&models.BookingListResponse{}, nil)

	rec := serve(NewHandler(svc, nopLogger{}), "/api/v1/customers/5/bookings?status=approved")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_InvalidCustomerID(t *testing.T) {
	svc := &mockService{}

	rec := serve(NewHandler(svc, nopLogger{}), "/api/v1/customers/abc/bookings")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ListForCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{bookings.ErrAccessDenied, http.StatusForbidden},
		{bookings.ErrInvalidInput, http.StatusBadRequest},
		{bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("ListForCustomer", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(svc, nopLogger{}), "/api/v1/customers/9/bookings")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
