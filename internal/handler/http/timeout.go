package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"back-office/internal/handler/http/respond"
)

// Timeout cancels the request context after d and answers 504 if the
// handler has not written anything by then. Later writes by the handler
// fail with http.ErrHandlerTimeout. A zero or negative d disables it.
//
// Only the middleware's own deadline produces a 504. When the parent
// context ends first (client gone), the handler is left to finish against
// its cancelled context.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{w: w, h: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
				return
			case p := <-panicked:
				panic(p)
			case <-ctx.Done():
			}

			if r.Context().Err() == nil && tw.expire() {
				respond.JSON(w, http.StatusGatewayTimeout, respond.ErrorBody{Error: "request timeout"})
				return
			}

			// The handler owns the response; wait for it.
			select {
			case <-done:
			case p := <-panicked:
				panic(p)
			}
		})
	}
}

// timeoutWriter keeps the handler's headers in its own map until the
// handler writes, so a 504 never races with header mutations.
type timeoutWriter struct {
	w http.ResponseWriter
	h http.Header

	mu       sync.Mutex
	timedOut bool
	wrote    bool
}

// expire marks the writer timed out unless the handler already started
// the response. It reports whether the caller may answer instead.
func (w *timeoutWriter) expire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.wrote {
		return false
	}
	w.timedOut = true
	return true
}

func (w *timeoutWriter) Header() http.Header { return w.h }

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut || w.wrote {
		return
	}
	w.writeHeaderLocked(code)
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !w.wrote {
		w.writeHeaderLocked(http.StatusOK)
	}
	return w.w.Write(b)
}

func (w *timeoutWriter) writeHeaderLocked(code int) {
	w.wrote = true
	dst := w.w.Header()
	for k, vv := range w.h {
		dst[k] = vv
	}
	w.w.WriteHeader(code)
}
