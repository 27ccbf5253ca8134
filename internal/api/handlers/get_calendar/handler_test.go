package get_calendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetSitting-BookingService/internal/availability"
	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	getCalendar "github.com/m04kA/PetSitting-BookingService/internal/usecase/get_calendar"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*getCalendar.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/calendar"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	uc := &mockUseCase{}
	day := types.MustParseDate("2025-10-13")
	booking := &domain.BookingRequest{
		ID:          2,
		CustomerID:  5,
		PetID:       7,
		ServiceType: domain.ServiceCatSitting,
		StartDate:   day,
		EndDate:     day,
		Status:      domain.StatusApproved,
	}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getCalendar.Request) bool {
		return r.View == "week" && r.Date.String() == "2025-10-15" &&
			r.ServiceType != nil && *r.ServiceType == domain.ServiceCatSitting
	})).Return(&getCalendar.Response{
		View:      availability.ViewWeek,
		Reference: types.MustParseDate("2025-10-15"),
		From:      day,
		To:        types.MustParseDate("2025-10-19"),
		Previous:  types.MustParseDate("2025-10-08"),
		Next:      types.MustParseDate("2025-10-22"),
		Cells: []availability.CalendarCell{{
			Date:           day,
			InCurrentMonth: true,
			Bookings:       []*domain.BookingRequest{booking},
			Capacity: []availability.CellCapacity{
				{Scope: domain.ScopeOf(domain.ServiceCatSitting), Current: 1, Max: 3},
				{Scope: domain.TotalScope(), Current: 2, Max: 1},
			},
		}},
	}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), "?view=week&date=2025-10-15&serviceType=katzenbetreuung")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"view": "week", "date": "2025-10-15", "from": "2025-10-13", "to": "2025-10-19",
		"previous": "2025-10-08", "next": "2025-10-22",
		"cells": [{
			"date": "2025-10-13", "inCurrentMonth": true,
			"bookings": [{"id": 2, "customerId": 5, "petId": 7, "serviceType": "katzenbetreuung",
				"startDate": "2025-10-13", "endDate": "2025-10-13", "status": "approved"}],
			"capacity": [
				{"serviceType": "katzenbetreuung", "current": 1, "max": 3, "overCapacity": false},
				{"serviceType": null, "current": 2, "max": 1, "overCapacity": true}
			]
		}]
	}`, rec.Body.String())
}

func TestHandler_DefaultsPassedThrough(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getCalendar.Request{}).Return(&getCalendar.Response{View: availability.ViewMonth}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandler_InvalidQuery(t *testing.T) {
	for _, query := range []string{"?date=15.10.2025", "?serviceType=grooming"} {
		t.Run(query, func(t *testing.T) {
			uc := &mockUseCase{}

			rec := serve(NewHandler(uc, nopLogger{}), query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{getCalendar.ErrInvalidInput, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, nopLogger{}), "?view=year")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
