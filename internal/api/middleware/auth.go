package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/PetSitting-BookingService/internal/api/handlers"
	"github.com/m04kA/PetSitting-BookingService/internal/domain"
)

// Заголовки, которые выставляет API gateway после аутентификации
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidUserID = "некорректный ID пользователя"
	msgAdminOnly     = "доступно только администраторам"
)

type contextKey string

const callerKey contextKey = "caller"

// Auth извлекает пользователя из заголовков X-User-ID и X-User-Role.
// Неизвестная или пустая роль считается customer.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		caller := domain.Caller{UserID: userID, Role: domain.ParseRole(r.Header.Get(HeaderUserRole))}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

// RequireAdmin пропускает только администраторов. Ставится после Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := GetCaller(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		if !caller.IsAdmin() {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithCaller кладет пользователя в контекст
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// GetCaller возвращает пользователя из контекста
func GetCaller(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerKey).(domain.Caller)
	return caller, ok
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	caller, ok := GetCaller(ctx)
	return caller.UserID, ok
}
