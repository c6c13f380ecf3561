package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gamerental/internal/config"
	"gamerental/internal/testutil"

	"github.com/gin-gonic/gin"
)

// ConcurrentUsers is the number of simulated clients in the load benchmark.
const ConcurrentUsers = 50

func benchEngine(b *testing.B) *gin.Engine {
	b.Helper()
	gin.SetMode(gin.ReleaseMode)
	cfg := &config.Config{
		JWTSecret:      "0123456789abcdef0123456789abcdef",
		JWTExpiry:      time.Hour,
		PageSize:       10,
		RequestTimeout: 5 * time.Second,
		LoginRateLimit: 1000,
		LoginRateBurst: 1000,
	}
	engine := NewRouter(Dependencies{
		DB:     testutil.NewDB(b),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	for i := 0; i < 30; i++ {
		body := fmt.Sprintf(`{"name":"c%d","price":100,"tvrequirements":"HDMI"}`, i)
		req := httptest.NewRequest(http.MethodPost, "/consoles", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			b.Fatalf("seed console: %d %s", w.Code, w.Body.String())
		}
	}
	return engine
}

func BenchmarkListConsoles(b *testing.B) {
	engine := benchEngine(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/consoles?page=%d", i%3+1), nil))
		if w.Code != http.StatusOK {
			b.Fatalf("list consoles: %d", w.Code)
		}
	}
}

// BenchmarkConcurrentUsers spreads b.N reads over ConcurrentUsers goroutines
// and reports the failure count.
func BenchmarkConcurrentUsers(b *testing.B) {
	engine := benchEngine(b)
	var failed int64
	b.ResetTimer()

	var wg sync.WaitGroup
	work := make(chan int)
	for u := 0; u < ConcurrentUsers; u++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				w := httptest.NewRecorder()
				engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/consoles/%d", i%30+1), nil))
				if w.Code != http.StatusOK {
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}
	for i := 0; i < b.N; i++ {
		work <- i
	}
	close(work)
	wg.Wait()

	b.ReportMetric(float64(atomic.LoadInt64(&failed)), "failed")
}
