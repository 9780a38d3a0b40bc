package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := NewMockJWTServiceInterface(ctrl)

	tests := []struct {
		name           string
		header         string
		prepareMock    func()
		expectedStatus int
		expectedUserID string
	}{
		{
			name:           "Missing header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Invalid token",
			header: "Bearer broken",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("broken").Return(nil, ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Valid token",
			header: "Bearer good",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("good").Return(&Claims{UserID: "usr_456", Role: "user"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUserID: "usr_456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			var gotUserID, gotRole string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = UserID(r.Context())
				gotRole = Role(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user/wallet", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tokens)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedUserID, gotUserID)
			if tt.expectedUserID != "" {
				assert.Equal(t, "user", gotRole)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokens := NewJWTService("secret")
	adminOnly := RequireRole(func(role string) bool { return role == "admin" })
	handler := AuthMiddleware(tokens)(adminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	for role, status := range map[string]int{"admin": http.StatusNoContent, "user": http.StatusForbidden} {
		token, err := tokens.GenerateJWT("usr_1", role, time.Now().Add(time.Minute))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", http.NoBody)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, status, rec.Code, role)
	}
}
