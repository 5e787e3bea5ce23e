package middleware

import "net/http"

// ResponseRecorder wraps a ResponseWriter, captures the status code, and lets
// middleware hook in just before the first byte goes out (the session cookie
// must be set before the headers flush).
type ResponseRecorder struct {
	http.ResponseWriter
	status      int
	wrote       bool
	beforeWrite func(http.ResponseWriter)
}

func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	return &ResponseRecorder{ResponseWriter: w, status: http.StatusOK}
}

// SetBeforeWrite registers a hook invoked once, right before headers flush.
func (rw *ResponseRecorder) SetBeforeWrite(fn func(http.ResponseWriter)) {
	rw.beforeWrite = fn
}

func (rw *ResponseRecorder) WriteHeader(statusCode int) {
	rw.flushHook()
	rw.status = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *ResponseRecorder) Write(b []byte) (int, error) {
	rw.flushHook()
	return rw.ResponseWriter.Write(b)
}

func (rw *ResponseRecorder) flushHook() {
	if rw.wrote {
		return
	}
	rw.wrote = true
	if rw.beforeWrite != nil {
		rw.beforeWrite(rw.ResponseWriter)
	}
}

func (rw *ResponseRecorder) Status() int { return rw.status }

// Wrote reports whether any response byte or header has been sent.
func (rw *ResponseRecorder) Wrote() bool { return rw.wrote }
