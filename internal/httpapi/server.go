package httpapi

import (
	"context"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ocrd/internal/catalog"
	"ocrd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Languages() []types.ModelRecord
	ExtractText(ctx context.Context, q catalog.Query, mr *multipart.Reader) (string, error)
}

// NewMux builds the router with all routes and middleware registered.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         corsMaxAgeSeconds,
		}))
	}
	r.Use(MetricsMiddleware)
	if rlEnabled {
		r.Use(RateLimitMiddleware)
	}
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/system/health", handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/languages", handleLanguages(svc))
		r.Post("/images", handleImages(svc))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// handleHealth godoc
//
//	@Summary	Report service liveness.
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	types.HealthResponse
//	@Router		/system/health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{Status: "ok"})
}

// handleLanguages godoc
//
//	@Summary	Fetch all of the available OCR languages and models.
//	@Tags		languages
//	@Produce	json
//	@Success	200	{object}	types.LanguagesResponse
//	@Router		/api/v1/languages [get]
func handleLanguages(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		langs := svc.Languages()
		if langs == nil {
			langs = []types.ModelRecord{}
		}
		writeJSON(w, http.StatusOK, types.LanguagesResponse{Languages: langs})
	}
}

// handleImages godoc
//
//	@Summary	Perform OCR on an uploaded image.
//	@Tags		images
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		language	query		string	false	"Language to use for the OCR"
//	@Param		model		query		string	false	"Model variant, requires language"
//	@Param		file		formData	file	true	"The image to process"
//	@Success	200			{object}	types.ImagesResponse
//	@Failure	400			{object}	types.ErrorResponse
//	@Failure	500			{object}	types.ErrorResponse
//	@Router		/api/v1/images [post]
func handleImages(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := queryFromRequest(r)
		lvl := requestLogLevel(r)
		start := time.Now()
		if lvl >= LevelInfo {
			logEvent(r).Msg("ocr start")
		}

		// Cap the body before any buffering happens.
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		mr, err := r.MultipartReader()
		if err != nil {
			writeError(w, r, errBadMultipart(err))
			observeOCR("invalid_request", time.Since(start))
			return
		}

		// Join server base context with request context so shutdown cancels
		// in-flight work too.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()

		text, err := svc.ExtractText(ctx, q, mr)
		if err != nil {
			status := writeError(w, r, err)
			observeOCR(outcomeLabel(status), time.Since(start))
			if lvl >= LevelInfo {
				logEvent(r).Int("status", status).Dur("dur", time.Since(start)).Err(err).Msg("ocr end")
			}
			return
		}
		writeJSON(w, http.StatusOK, types.ImagesResponse{Text: text})
		observeOCR("ok", time.Since(start))
		if lvl >= LevelInfo {
			logEvent(r).Int("status", http.StatusOK).Dur("dur", time.Since(start)).Msg("ocr end")
		}
	}
}

// queryFromRequest lifts the optional language/model query parameters,
// preserving the absent/present distinction.
func queryFromRequest(r *http.Request) catalog.Query {
	var q catalog.Query
	vals := r.URL.Query()
	if vals.Has("language") {
		v := vals.Get("language")
		q.Language = &v
	}
	if vals.Has("model") {
		v := vals.Get("model")
		q.Model = &v
	}
	return q
}

func outcomeLabel(status int) string {
	if status >= http.StatusInternalServerError {
		return "internal_error"
	}
	return "invalid_request"
}
