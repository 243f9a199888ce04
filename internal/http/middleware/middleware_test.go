package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/talentswap-backend/internal/http/response"
	"github.com/yungbote/talentswap-backend/internal/observability"
	"github.com/yungbote/talentswap-backend/internal/platform/ctxutil"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
	"github.com/yungbote/talentswap-backend/internal/services"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	return log
}

func protectedRouter(t *testing.T, auth services.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(testLogger(t)))
	r.GET("/me", NewAuthMiddleware(testLogger(t), auth).RequireAuth(), func(c *gin.Context) {
		id, _ := ctxutil.MemberID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"memberId": id})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	auth := services.NewAuthService(testLogger(t), "test-secret", time.Hour)
	other := services.NewAuthService(testLogger(t), "other-secret", time.Hour)
	r := protectedRouter(t, auth)

	token, err := auth.IssueToken(42)
	require.NoError(t, err)
	forged, err := other.IssueToken(42)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"forged", "Bearer " + forged, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			require.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				require.JSONEq(t, `{"memberId":42}`, rec.Body.String())
				return
			}
			var body response.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, "UNAUTHORIZED", body.Code)
		})
	}
}

func TestAttachTraceContextEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	var seen *ctxutil.TraceData
	r.GET("/", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, "req-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, "req-1", rec.Header().Get(headerRequestID))
	require.NotEmpty(t, rec.Header().Get(headerTraceID))
	require.NotNil(t, seen)
	require.Equal(t, "req-1", seen.RequestID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, rec.Header().Get(headerRequestID))
}

func TestAttachTraceContextReplacesMalformedRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, bad := range []string{"has space", "semi;colon", strings.Repeat("a", maxRequestIDLen+1)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(headerRequestID, bad)
		req.Header.Set(headerTraceID, "client-chosen")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		got := rec.Header().Get(headerRequestID)
		require.NotEqual(t, bad, got)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
		require.NotEqual(t, "client-chosen", rec.Header().Get(headerTraceID))
	}
}

func TestAttachTraceContextSeesAuthenticatedMember(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := services.NewAuthService(testLogger(t), "test-secret", time.Hour)
	token, err := auth.IssueToken(9)
	require.NoError(t, err)

	var seen uint64
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/me", NewAuthMiddleware(testLogger(t), auth).RequireAuth(), func(c *gin.Context) {
		seen, _ = ctxutil.MemberID(c.Request.Context())
		require.NotNil(t, ctxutil.GetTraceData(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.EqualValues(t, 9, seen)
}

func TestMetricsPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m, err := observability.NewMetrics()
	require.NoError(t, err)
	for _, h := range []gin.HandlerFunc{Metrics(m), Metrics(nil)} {
		r := gin.New()
		r.Use(h)
		r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusTeapot) })
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}
}
