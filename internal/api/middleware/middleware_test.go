package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
)

func callerEcho(t *testing.T, got *domain.Caller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := GetCaller(r.Context())
		require.True(t, ok)
		*got = caller
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
		wantCaller domain.Caller
	}{
		{name: "customer by default", userID: "5", wantStatus: http.StatusOK, wantCaller: domain.Caller{UserID: 5, Role: domain.RoleCustomer}},
		{name: "admin", userID: "1", role: "admin", wantStatus: http.StatusOK, wantCaller: domain.Caller{UserID: 1, Role: domain.RoleAdmin}},
		{name: "unknown role", userID: "5", role: "root", wantStatus: http.StatusOK, wantCaller: domain.Caller{UserID: 5, Role: domain.RoleCustomer}},
		{name: "missing user", wantStatus: http.StatusUnauthorized},
		{name: "not a number", userID: "abc", wantStatus: http.StatusUnauthorized},
		{name: "negative", userID: "-3", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Caller
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			if tt.role != "" {
				req.Header.Set(HeaderUserRole, tt.role)
			}
			rec := httptest.NewRecorder()

			Auth(callerEcho(t, &got)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCaller, got)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	handler := Auth(RequireAdmin(ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "5")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "1")
	req.Header.Set(HeaderUserRole, "admin")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "7c9e6679-7425-40de-944b-e07fc1f90ae7")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", seen)
}

type observed struct {
	method, route, status string
}

type fakeMetrics struct{ calls []observed }

func (f *fakeMetrics) ObserveHTTP(method, route, status string, _ float64) {
	f.calls = append(f.calls, observed{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/17", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, observed{"GET", "/bookings/{bookingId}", "404"}, m.calls[0])
}
