package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/middleware"
	"github.com/emredok/studenthub/internal/pkg/auth"
)

func newGuardedRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	router.GET("/private", authMiddleware.JWTAuth(), func(c *gin.Context) {
		studentID := c.MustGet(middleware.ContextStudentID).(int64)
		c.JSON(http.StatusOK, gin.H{"studentId": studentID})
	})
	return router
}

func newTestJWTService(expiry time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-signing-secret",
		TokenExpiry: expiry,
		TokenIssuer: "studenthub.test",
	})
}

func doRequest(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := newGuardedRouter(jwtService)

	token, _, err := jwtService.GenerateToken(42)
	require.NoError(t, err)

	recorder := doRequest(t, router, "Bearer "+token)

	require.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]int64
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body["studentId"])
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := newGuardedRouter(newTestJWTService(time.Hour))

	recorder := doRequest(t, router, "")

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	resp := decodeErrorResponse(t, recorder)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuthBareTokenAccepted(t *testing.T) {
	// A header carrying just the raw token still authenticates; only the
	// signature decides.
	jwtService := newTestJWTService(time.Hour)
	router := newGuardedRouter(jwtService)

	token, _, err := jwtService.GenerateToken(42)
	require.NoError(t, err)

	recorder := doRequest(t, router, token)

	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestJWTAuthNonBearerScheme(t *testing.T) {
	// A foreign scheme passes extraction whole and fails verification
	router := newGuardedRouter(newTestJWTService(time.Hour))

	recorder := doRequest(t, router, "Token abcdef")

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	resp := decodeErrorResponse(t, recorder)
	assert.Equal(t, dto.ErrorCodeInvalidToken, resp.Error.Code)
}

func TestJWTAuthEmptyBearerPayload(t *testing.T) {
	router := newGuardedRouter(newTestJWTService(time.Hour))

	recorder := doRequest(t, router, "Bearer ")

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	resp := decodeErrorResponse(t, recorder)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuthBadSignature(t *testing.T) {
	router := newGuardedRouter(newTestJWTService(time.Hour))

	otherService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "studenthub.test",
	})
	token, _, err := otherService.GenerateToken(42)
	require.NoError(t, err)

	recorder := doRequest(t, router, "Bearer "+token)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	resp := decodeErrorResponse(t, recorder)
	assert.Equal(t, dto.ErrorCodeInvalidToken, resp.Error.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(-time.Minute)
	router := newGuardedRouter(jwtService)

	token, _, err := jwtService.GenerateToken(42)
	require.NoError(t, err)

	recorder := doRequest(t, router, "Bearer "+token)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	resp := decodeErrorResponse(t, recorder)
	assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
}
