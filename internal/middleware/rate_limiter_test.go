package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func doRequest(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/ai-search", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	handler := rateLimit(newVisitorStore(5, 10))(okHandler)

	for i := 0; i < 10; i++ {
		rec := doRequest(e, handler, "192.168.1.100:12345")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst should succeed", i)
	}

	rec := doRequest(e, handler, "192.168.1.100:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiterWithConfig(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithConfig(1, 2)(okHandler)

	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, handler, "10.0.0.1:1").Code)
}

func TestRateLimiterDifferentIPs(t *testing.T) {
	e := echo.New()
	handler := rateLimit(newVisitorStore(1, 1))(okHandler)

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
		assert.Equal(t, http.StatusOK, doRequest(e, handler, addr).Code, addr)
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, handler, "10.0.0.1:1").Code)
}

func TestNewVisitorStoreDefaults(t *testing.T) {
	store := newVisitorStore(0, -1)
	assert.Equal(t, rate.Limit(defaultRequestsPerSecond), store.rps)
	assert.Equal(t, defaultBurstSize, store.burst)
}

func TestRateLimiterKeysOnExtractedIP(t *testing.T) {
	newEcho := func(extractor echo.IPExtractor) *echo.Echo {
		e := echo.New()
		e.IPExtractor = extractor
		e.Use(RateLimiterWithConfig(1, 1))
		e.POST("/api/ai-search", okHandler)
		return e
	}
	send := func(e *echo.Echo, remoteAddr, xff string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/ai-search", nil)
		req.RemoteAddr = remoteAddr
		if xff != "" {
			req.Header.Set(echo.HeaderXForwardedFor, xff)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("direct peers cannot spoof forwarding headers", func(t *testing.T) {
		e := newEcho(echo.ExtractIPDirect())
		assert.Equal(t, http.StatusOK, send(e, "198.51.100.9:4000", "203.0.113.1"))
		assert.Equal(t, http.StatusTooManyRequests, send(e, "198.51.100.9:4000", "203.0.113.2"))
	})

	t.Run("trusted proxy forwards the client address", func(t *testing.T) {
		e := newEcho(echo.ExtractIPFromXFFHeader())
		assert.Equal(t, http.StatusOK, send(e, "127.0.0.1:4000", "203.0.113.1, 10.0.0.2"))
		assert.Equal(t, http.StatusOK, send(e, "127.0.0.1:4000", "203.0.113.2, 10.0.0.2"))
		assert.Equal(t, http.StatusTooManyRequests, send(e, "127.0.0.1:4000", "203.0.113.1"))
	})

	t.Run("untrusted peer falls back to its own address", func(t *testing.T) {
		e := newEcho(echo.ExtractIPFromXFFHeader())
		assert.Equal(t, http.StatusOK, send(e, "198.51.100.9:4000", "203.0.113.1"))
		assert.Equal(t, http.StatusTooManyRequests, send(e, "198.51.100.9:4000", "203.0.113.7"))
	})
}

func TestVisitorStoreSweepsOnAccess(t *testing.T) {
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	store := newVisitorStore(5, 10)
	store.now = func() time.Time { return clock }
	store.lastSweep = clock

	store.get("idle_ip")
	clock = clock.Add(visitorTTL + cleanupInterval)
	store.get("busy_ip")

	assert.Equal(t, 1, store.size())
	assert.Equal(t, clock, store.lastSweep)
}

func TestVisitorCleanup(t *testing.T) {
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	store := newVisitorStore(5, 10)
	store.now = func() time.Time { return clock }

	store.get("old_ip")
	clock = clock.Add(5 * time.Minute)
	store.get("new_ip")

	assert.Equal(t, 1, store.cleanup(visitorTTL))
	assert.Equal(t, 1, store.size())

	store.mu.Lock()
	_, oldExists := store.visitors["old_ip"]
	_, newExists := store.visitors["new_ip"]
	store.mu.Unlock()

	assert.False(t, oldExists, "Old visitor should not exist")
	assert.True(t, newExists, "New visitor should still exist")
}

func TestRateLimiterConcurrency(t *testing.T) {
	e := echo.New()
	handler := rateLimit(newVisitorStore(5, 10))(okHandler)

	var wg sync.WaitGroup
	var successCount, rateLimitCount atomic.Int32

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch doRequest(e, handler, "192.168.1.100:12345").Code {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusTooManyRequests:
				rateLimitCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(20), successCount.Load()+rateLimitCount.Load())
	assert.GreaterOrEqual(t, successCount.Load(), int32(10))
	assert.Greater(t, rateLimitCount.Load(), int32(0))
}
