package relay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/hasbyte1/go-laravel-relay/collections"
)

// Server receives webhooks on POST /hooks/{route}, shapes them with the
// route's rules and forwards the result.
type Server struct {
	Router    *chi.Mux
	cfg       *Config
	logger    *slog.Logger
	forwarder *Forwarder
	routes    map[string]RouteConfig
}

// hookResponse is the body of a 202 answer.
type hookResponse struct {
	DeliveryID string `json:"delivery_id"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts,omitempty"`
}

// NewServer builds a Server with its routes and middleware mounted.
func NewServer(cfg *Config, logger *slog.Logger, forwarder *Forwarder) *Server {
	s := &Server{
		Router:    chi.NewRouter(),
		cfg:       cfg,
		logger:    logger,
		forwarder: forwarder,
		routes:    make(map[string]RouteConfig, len(cfg.Routes)),
	}
	for _, r := range cfg.Routes {
		s.routes[r.Name] = r
	}

	s.Router.Use(RequestIDMiddleware)
	s.Router.Use(LoggingMiddleware(logger))
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "relay")
	})

	s.Router.Get("/healthz", s.handleHealth)
	s.Router.Post("/hooks/{route}", s.handleHook)
	return s
}

// HTTPServer returns an *http.Server for the configured port and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s.Router,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "routes": len(s.routes)})
}

func (s *Server) handleHook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "route")
	AddLogField(ctx, "route", name)

	route, ok := s.routes[name]
	if !ok {
		writeJSONError(w, http.StatusNotFound, "unknown route")
		return
	}

	if route.TokenHash != "" {
		ok, err := CheckToken(tokenFromRequest(r), route.TokenHash)
		if err != nil || !ok {
			writeJSONError(w, http.StatusUnauthorized, "invalid token")
			return
		}
	}

	limit := s.cfg.Server.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		writeJSONError(w, http.StatusBadRequest, "unreadable body")
		return
	}
	var payload collections.Collection[any]
	if err := payload.UnmarshalJSON(raw); err != nil {
		writeJSONError(w, http.StatusBadRequest, "payload must be a JSON object or array")
		return
	}

	body, matched := Shape(&payload, route)
	if !matched {
		id := uuid.New().String()
		AddLogField(ctx, "delivery_id", id)
		writeJSON(w, http.StatusAccepted, hookResponse{DeliveryID: id, Status: "skipped"})
		return
	}

	body, err = ApplyMacros(body, route.Macros)
	if err != nil {
		s.logger.Error("applying macros", slog.String("route", name), slog.String("error", err.Error()))
		writeJSONError(w, http.StatusInternalServerError, "could not shape payload")
		return
	}
	encoded, contentType, err := Encode(body, route.Format)
	if err == nil && route.SealKey != "" {
		encoded, err = Seal(encoded, route.SealKey)
		contentType = SealedContentType
	}
	if err != nil {
		s.logger.Error("encoding body", slog.String("route", name), slog.String("error", err.Error()))
		writeJSONError(w, http.StatusInternalServerError, "could not encode payload")
		return
	}

	delivery, err := s.forwarder.Forward(ctx, route, encoded, contentType)
	AddLogField(ctx, "delivery_id", delivery.ID)
	if err != nil {
		AddLogField(ctx, "error", err.Error())
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":       "delivery failed",
			"delivery_id": delivery.ID,
			"attempts":    delivery.Attempts,
		})
		return
	}
	writeJSON(w, http.StatusAccepted, hookResponse{
		DeliveryID: delivery.ID,
		Status:     "delivered",
		Attempts:   delivery.Attempts,
	})
}
