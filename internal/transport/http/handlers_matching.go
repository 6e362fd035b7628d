package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawmates/internal/app"
	"pawmates/pkg/domain"
	"pawmates/pkg/platform/httputil"
	"pawmates/pkg/requestcontext"
)

type matchingHandler struct {
	engine *app.Engine
	logger *slog.Logger
}

func newMatchingHandler(engine *app.Engine, logger *slog.Logger) *matchingHandler {
	return &matchingHandler{engine: engine, logger: logger}
}

func (h *matchingHandler) Register(r chi.Router) {
	r.Get("/discovery/pets", h.handleDiscoverPets)
	r.Get("/discovery/providers", h.handleDiscoverProviders)
	r.Post("/swipes", h.handleSwipe)
	r.Get("/swipes/liked", h.handleLikedPets)
	r.Get("/swipes/passed", h.handlePassedPets)
	r.Post("/connects", h.handleConnect)
	r.Get("/matches", h.handleListMatches)
	r.Get("/matches/{matchID}", h.handleGetMatch)
}

func (h *matchingHandler) handleDiscoverPets(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireActor(w, r)
	if !ok {
		return
	}
	pets, err := h.engine.DiscoverPets(r.Context(), viewer)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pets)
}

func (h *matchingHandler) handleDiscoverProviders(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireActor(w, r)
	if !ok {
		return
	}
	profiles, err := h.engine.DiscoverProviders(r.Context(), viewer)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profiles)
}

type swipeRequest struct {
	PetID  string `json:"pet_id"`
	Action string `json:"action"`
}

type swipeResponse struct {
	Matched bool `json:"matched"`
	Match   any  `json:"match,omitempty"`
}

func (h *matchingHandler) handleSwipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	viewer, ok := requireActor(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[swipeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	petID, err := domain.ParsePetID(req.PetID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	action, err := domain.ParseSwipeAction(req.Action)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	match, err := h.engine.Swipe(ctx, viewer, petID, action)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp := swipeResponse{Matched: match != nil}
	if match != nil {
		resp.Match = match
		h.logger.InfoContext(ctx, "playdate match created",
			"request_id", requestcontext.RequestID(ctx),
			"match_id", match.ID,
			"viewer_id", viewer,
		)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *matchingHandler) handleLikedPets(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireActor(w, r)
	if !ok {
		return
	}
	ids, err := h.engine.LikedPets(r.Context(), viewer)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ids)
}

func (h *matchingHandler) handlePassedPets(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireActor(w, r)
	if !ok {
		return
	}
	ids, err := h.engine.PassedPets(r.Context(), viewer)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ids)
}

type connectRequest struct {
	ProviderID string `json:"provider_id"`
}

func (h *matchingHandler) handleConnect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	parent, ok := requireActor(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[connectRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	providerID, err := domain.ParseUserID(req.ProviderID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	match, err := h.engine.Connect(ctx, parent, providerID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, match)
}

func (h *matchingHandler) handleListMatches(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireActor(w, r)
	if !ok {
		return
	}
	matches, err := h.engine.ListMatches(r.Context(), viewer)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, matches)
}

func (h *matchingHandler) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := domain.ParseMatchID(chi.URLParam(r, "matchID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	match, err := h.engine.GetMatch(r.Context(), matchID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, match)
}
