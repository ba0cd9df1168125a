//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"plateshare-server/internal/handler/middleware"
	"plateshare-server/internal/pkg/errs"
	usecasemock "plateshare-server/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type caller struct {
	Email    string `json:"email"`
	Found    bool   `json:"found"`
	Verified bool   `json:"verified"`
}

func newAuthRouter(v *usecasemock.MockTokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/whoami", middleware.NewAuthMiddleware(v).ResolveCaller(), func(c *gin.Context) {
		email, found := middleware.GetCallerEmail(c)
		c.JSON(http.StatusOK, caller{Email: email, Found: found, Verified: middleware.IsCallerVerified(c)})
	})
	return r
}

func TestResolveCaller(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		path       string
		authHeader string
		setup      func(v *usecasemock.MockTokenValidator)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "email query when tokens are disabled",
			path:       "/whoami?email=donor@example.com",
			authHeader: "Bearer ignored",
			wantStatus: http.StatusOK,
			wantBody:   `{"email":"donor@example.com","found":true,"verified":false}`,
		},
		{
			name:       "no caller at all",
			path:       "/whoami",
			wantStatus: http.StatusOK,
			wantBody:   `{"email":"","found":false,"verified":false}`,
		},
		{
			name:       "valid token wins over the query",
			enabled:    true,
			path:       "/whoami?email=someone@example.com",
			authHeader: "Bearer good",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("good").Return("donor@example.com", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"email":"donor@example.com","found":true,"verified":true}`,
		},
		{
			name:       "invalid token is rejected",
			enabled:    true,
			path:       "/whoami?email=donor@example.com",
			authHeader: "Bearer bad",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("bad").Return("", errs.New("token expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":{"code":"UNAUTHORIZED","message":"Invalid or expired token"}}`,
		},
		{
			name:       "enabled without a header falls back to the query",
			enabled:    true,
			path:       "/whoami?email=donor@example.com",
			wantStatus: http.StatusOK,
			wantBody:   `{"email":"donor@example.com","found":true,"verified":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			v := usecasemock.NewMockTokenValidator(ctrl)
			v.EXPECT().Enabled().Return(tt.enabled).AnyTimes()
			if tt.setup != nil {
				tt.setup(v)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			newAuthRouter(v).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
