package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/damn-devil/bath.book/internal/api/handlers"
)

type userIDKey struct{}

const userIDHeader = "X-User-ID"

// Auth извлекает идентификатор пользователя из заголовка X-User-ID.
// Идентичность пользователя — непрозрачный стабильный ID, который
// проставляет доверенный фронт (чат-транспорт); без него запрос отклоняется.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, проставленный middleware Auth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
