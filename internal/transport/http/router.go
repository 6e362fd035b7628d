// Package httptransport is the thin HTTP layer over the engine. Handlers
// decode, delegate and encode; business rules stay in the services.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pawmates/internal/app"
	platformmetrics "pawmates/internal/platform/metrics"
	"pawmates/internal/platform/middleware"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
	"pawmates/pkg/platform/httputil"
	"pawmates/pkg/platform/middleware/actor"
	"pawmates/pkg/platform/middleware/requestid"
	"pawmates/pkg/platform/middleware/requesttime"
	"pawmates/pkg/requestcontext"
)

// NewRouter wires every endpoint behind the shared middleware chain.
func NewRouter(engine *app.Engine, logger *slog.Logger, httpMetrics *platformmetrics.HTTP) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger, httpMetrics))
	r.Use(actor.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	newIdentityHandler(engine, logger).Register(r)
	newMatchingHandler(engine, logger).Register(r)
	newMessagingHandler(engine, logger).Register(r)
	newCommunityHandler(engine, logger).Register(r)
	newSessionHandler(engine, logger).Register(r)
	return r
}

// requireActor extracts the acting user or rejects the request.
func requireActor(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	actorID := requestcontext.ActorID(r.Context())
	if actorID.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "acting user required; set the "+actor.Header+" header"))
		return domain.UserID{}, false
	}
	return actorID, true
}
