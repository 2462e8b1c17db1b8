package router

import (
	"net/http"

	"screenwell/wellness-agent/internal/handler"

	"go.uber.org/zap"
)

// New builds the HTTP mux for the local dashboard API
func New(reportHandler *handler.ReportHandler, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Report endpoints
	mux.HandleFunc("/api/v1/report", reportHandler.GetReport)
	mux.HandleFunc("/api/v1/status", reportHandler.GetStatus)

	// Logging middleware
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
		)
		mux.ServeHTTP(w, r)
	})
}
