// Package middleware содержит HTTP-middleware: идентификация
// пользователя, метрики и логирование запросов.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aidosbay/HBP-RatesService/internal/api/handlers"
)

// UserIDHeader заголовок с идентификатором пользователя
const UserIDHeader = "X-User-ID"

type ctxKey int

const userIDKey ctxKey = iota

// Auth извлекает идентификатор пользователя из заголовка X-User-ID и
// кладёт его в контекст запроса. Запрос без корректного заголовка
// отклоняется с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+UserIDHeader)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+UserIDHeader)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
