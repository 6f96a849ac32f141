package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// statusWriter records the status code and injects the X-Response-Time
// header just before headers are flushed.
type statusWriter struct {
	http.ResponseWriter
	start       time.Time
	status      int
	wroteHeader bool
}

func (sw *statusWriter) WriteHeader(status int) {
	if sw.wroteHeader {
		return
	}
	sw.wroteHeader = true
	sw.status = status
	sw.Header().Set("X-Response-Time", fmt.Sprintf("%dms", time.Since(sw.start).Milliseconds()))
	sw.ResponseWriter.WriteHeader(status)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if !sw.wroteHeader {
		sw.WriteHeader(http.StatusOK)
	}
	return sw.ResponseWriter.Write(b)
}

// responseTime wraps the writer so the timing header reflects handler time.
func (s *Server) responseTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, start: time.Now(), status: http.StatusOK}
		next.ServeHTTP(sw, r)
	})
}

// logRequests emits one line per request with method, path, status and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw, ok := w.(*statusWriter)
		if !ok {
			sw = &statusWriter{ResponseWriter: w, start: start, status: http.StatusOK}
			w = sw
		}

		next.ServeHTTP(w, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).String(),
		)
	})
}

// cors appends the permissive headers the original deployment relied on.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers",
			common.AccessTokenHeaderName+", Origin, X-Requested-With, Content-Type, Accept, Range")
		next.ServeHTTP(w, r)
	})
}
