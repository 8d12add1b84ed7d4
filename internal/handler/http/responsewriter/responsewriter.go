// Package responsewriter wraps http.ResponseWriter so middleware can observe
// the status code and body size after the handler returns.
package responsewriter

import "net/http"

// Recorder captures the first status code and counts body bytes.
type Recorder struct {
	http.ResponseWriter
	status  int
	written int64
	wrote   bool
}

// Wrap returns w itself when it is already a *Recorder, so stacked
// middleware share one recorder.
func Wrap(w http.ResponseWriter) *Recorder {
	if rec, ok := w.(*Recorder); ok {
		return rec
	}
	return &Recorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *Recorder) WriteHeader(status int) {
	if r.wrote {
		return
	}
	r.status = status
	r.wrote = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *Recorder) Write(b []byte) (int, error) {
	if !r.wrote {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.written += int64(n)
	return n, err
}

// Flush forwards to the underlying writer when it supports flushing.
func (r *Recorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		if !r.wrote {
			r.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}

// Status is the status sent to the client, 200 if the handler never set one.
func (r *Recorder) Status() int { return r.status }

// Written is the number of body bytes sent.
func (r *Recorder) Written() int64 { return r.written }

// HeaderSent reports whether the status line has gone out. Error handlers use
// it to avoid writing a second response.
func (r *Recorder) HeaderSent() bool { return r.wrote }

// Unwrap supports http.ResponseController.
func (r *Recorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }
