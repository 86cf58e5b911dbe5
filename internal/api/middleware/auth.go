package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
)

// userIDHeader заголовок аутентификации, проставляется API gateway
const userIDHeader = "X-User-ID"

type userIDCtxKey struct{}

// Auth требует валидный X-User-ID и кладет его в контекст запроса
// Проверка подписи/токена - зона ответственности gateway
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+userIDHeader)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+userIDHeader)
			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID аутентифицированного пользователя
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(int64)
	return userID, ok
}
