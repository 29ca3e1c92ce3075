package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
	mem "wanderwise/pkg/memcache"
	"wanderwise/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func echoCaller(c *gin.Context) {
	c.String(http.StatusOK, c.GetString(CtxUserID))
}

func TestJWTAuthMiddleware(t *testing.T) {
	c := qt.New(t)

	issuer := utils.NewTokenIssuer("secret", time.Hour)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(issuer), echoCaller)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)

	id := uuid.New()
	tok, err := issuer.CreateToken(id, "user")
	c.Assert(err, qt.IsNil)
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Body.String(), qt.Equals, id.String())
}

func TestOptionalAuthMiddleware(t *testing.T) {
	c := qt.New(t)

	issuer := utils.NewTokenIssuer("secret", time.Hour)
	r := gin.New()
	r.GET("/trip", OptionalAuthMiddleware(issuer), echoCaller)

	req := httptest.NewRequest(http.MethodGet, "/trip", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Body.String(), qt.Equals, "")
}

func TestRateLimitMiddleware(t *testing.T) {
	c := qt.New(t)

	store := mem.NewTTLStore[string, *rate.Limiter]()
	r := gin.New()
	r.Use(RateLimitMiddleware(store, 2, time.Hour))
	r.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	c.Assert(codes, qt.DeepEquals, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests})

	// another client has its own bucket
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusNoContent)
	c.Assert(store.Len(), qt.Equals, 2)
}

func TestTraceIDMiddleware(t *testing.T) {
	c := qt.New(t)

	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, ctx.GetString("trace_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(TraceHeader)
	_, err := uuid.Parse(generated)
	c.Assert(err, qt.IsNil)
	c.Assert(w.Body.String(), qt.Equals, generated)

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Header().Get(TraceHeader), qt.Equals, given)
}

func TestCORSMiddleware(t *testing.T) {
	c := qt.New(t)

	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}))
	r.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusNoContent)
	c.Assert(w.Header().Get("Access-Control-Allow-Origin"), qt.Equals, "https://app.example.com")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Header().Get("Access-Control-Allow-Origin"), qt.Equals, "")
}
