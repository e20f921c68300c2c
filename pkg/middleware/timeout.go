package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Timeout rejects requests that outlive the deadline with a 504. The
// response writer is guarded so a late handler write cannot interleave with
// the timeout body.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			gw := &guardedWriter{ResponseWriter: w}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(gw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if gw.markTimedOut() {
					slog.Warn("request deadline exceeded",
						"method", r.Method,
						"path", r.URL.Path,
						"timeout", d,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusGatewayTimeout)
					w.Write([]byte(`{"error":"request timeout"}`))
				}
				<-done
			}
		})
	}
}

const (
	writerUntouched = iota
	writerUsed
	writerTimedOut
)

type guardedWriter struct {
	http.ResponseWriter
	mu    sync.Mutex
	state int
}

func (g *guardedWriter) WriteHeader(code int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == writerTimedOut {
		return
	}
	g.state = writerUsed
	g.ResponseWriter.WriteHeader(code)
}

func (g *guardedWriter) Write(b []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == writerTimedOut {
		return len(b), nil
	}
	g.state = writerUsed
	return g.ResponseWriter.Write(b)
}

// markTimedOut flips the writer into the timed-out state, suppressing any
// further handler output. It reports false when the handler already wrote.
func (g *guardedWriter) markTimedOut() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == writerUsed {
		return false
	}
	g.state = writerTimedOut
	return true
}
