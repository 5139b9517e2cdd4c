package rdfhttp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cayleygraph/rdfstore/clog"
)

var (
	mRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rdfstore_http_requests_total",
		Help: "Number of HTTP requests served, by status code.",
	}, []string{"code"})
	mLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "rdfstore_http_request_duration_seconds",
		Help: "Time spent serving HTTP requests.",
	})
)

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
	w.code = code
}

func getAddress(req *http.Request) string {
	addr := req.Header.Get("X-Real-IP")
	if addr == "" {
		addr = req.Header.Get("X-Forwarded-For")
		if addr == "" {
			addr = req.RemoteAddr
		}
	}
	return addr
}

// LogRequest logs every request and its outcome, and counts it.
func LogRequest(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		if clog.V(1) {
			clog.Infof("started %s %s for %s", req.Method, req.URL.Path, getAddress(req))
		}
		handler.ServeHTTP(sw, req)
		dt := time.Since(start)
		mRequests.WithLabelValues(strconv.Itoa(sw.code)).Inc()
		mLatency.Observe(dt.Seconds())
		clog.Infof("completed %v %s %s in %v", sw.code, http.StatusText(sw.code), req.URL.Path, dt)
	})
}
