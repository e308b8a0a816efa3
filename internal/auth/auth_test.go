package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"court-scheduling-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)
	return svc
}

func TestNewAuthService(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		_, err := NewAuthService("", time.Hour)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("defaults expiry", func(t *testing.T) {
		svc, err := NewAuthService("secret", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, svc.expiry)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateJWT(Principal{UserID: userID, Role: models.UserRoleCourtScheduler, Name: "Registrar"})
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)

	principal, err := claims.Principal()
	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, models.UserRoleCourtScheduler, principal.Role)
	assert.Equal(t, "Registrar", principal.Name)
}

func TestValidateJWTRejects(t *testing.T) {
	svc := newTestService(t)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService("another-key", time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateJWT(Principal{UserID: uuid.New(), Role: models.UserRoleLawyer})
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &AuthClaims{
			UserID: uuid.NewString(),
			Role:   "lawyer",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestClaimsPrincipalUnknownRole(t *testing.T) {
	claims := &AuthClaims{UserID: uuid.NewString(), Role: "judge"}
	_, err := claims.Principal()
	assert.Error(t, err)

	claims = &AuthClaims{UserID: "nope", Role: "lawyer"}
	_, err = claims.Principal()
	assert.Error(t, err)
}

func TestRequireAuthAndRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	mw := NewAuthMiddleware(svc)

	router := gin.New()
	router.GET("/scheduler-only", mw.RequireAuth(), RequireRole(models.UserRoleCourtScheduler), func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID.String(), "logged_as": c.GetString("user_id")})
	})

	schedulerToken, err := svc.GenerateJWT(Principal{UserID: uuid.New(), Role: models.UserRoleCourtScheduler})
	require.NoError(t, err)
	lawyerToken, err := svc.GenerateJWT(Principal{UserID: uuid.New(), Role: models.UserRoleLawyer})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer abc", http.StatusUnauthorized},
		{"wrong role", "Bearer " + lawyerToken, http.StatusForbidden},
		{"scheduler", "Bearer " + schedulerToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/scheduler-only", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)

			if tt.want == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, body["user_id"], body["logged_as"])
			}
		})
	}
}

func TestAuthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	h := NewAuthHandler(svc)

	router := gin.New()
	router.POST("/api/auth/dev-token", h.IssueDevToken)
	router.POST("/api/auth/validate", h.ValidateToken)

	payload, _ := json.Marshal(DevTokenRequest{UserID: uuid.NewString(), Role: "client", Name: "Kamala"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/dev-token", bytes.NewReader(payload)))
	require.Equal(t, http.StatusOK, w.Code)

	var issued map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))
	token, _ := issued["accessToken"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var validated AuthValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &validated))
	assert.True(t, validated.Valid)
	assert.Equal(t, "client", validated.Claims.Role)

	badRole, _ := json.Marshal(map[string]string{"user_id": uuid.NewString(), "role": "judge"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/dev-token", bytes.NewReader(badRole)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
