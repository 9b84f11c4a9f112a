package main

import (
	"net/http"

	"github.com/angeloszaimis/libtranslate/internal/handler"
	"github.com/angeloszaimis/libtranslate/internal/metrics"
)

func setupRouter(translateHandler *handler.TranslateHandler, metricsCollector *metrics.Collector) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/detect", translateHandler.Detect)
	mux.HandleFunc("GET /v1/translate", translateHandler.Translate)
	mux.HandleFunc("GET /v1/backends", translateHandler.Backends)
	mux.HandleFunc("GET /health", translateHandler.Health)
	mux.HandleFunc("GET /stats", metricsCollector.Handler())
	mux.Handle("GET /metrics", metricsCollector.PrometheusHandler())

	return handler.RequestID(mux)
}
