package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mwielgus/finance-tracker/internal/user"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JWTAccessTokenMiddleware validates the bearer token, resolves the asserted
// principal email to the internal user id and stores the id in the request
// context. A token for a user that no longer exists is rejected the same way
// as an invalid token.
func (s *service) JWTAccessTokenMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				writeJSONError(w, http.StatusUnauthorized, "Invalid token format")
				return
			}

			email, err := s.jwtManager.ValidateAccessToken(tokenString)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			userID, err := s.userService.ResolveOwnerID(email)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					writeJSONError(w, http.StatusUnauthorized, user.ErrUserNotFound.Error())
					return
				}
				writeJSONError(w, http.StatusInternalServerError, ErrInternalError.Error())
				return
			}

			ctx := context.WithValue(r.Context(), "userID", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
