package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawmates/internal/app"
	"pawmates/internal/matching"
	"pawmates/pkg/domain"
	"pawmates/pkg/platform/httputil"
	"pawmates/pkg/requestcontext"
)

type sessionHandler struct {
	engine *app.Engine
	logger *slog.Logger
}

func newSessionHandler(engine *app.Engine, logger *slog.Logger) *sessionHandler {
	return &sessionHandler{engine: engine, logger: logger}
}

func (h *sessionHandler) Register(r chi.Router) {
	r.Get("/session/snapshot", h.handleSnapshot)
	r.Post("/session/signin", h.handleSignIn)
	r.Post("/session/signout", h.handleSignOut)
	r.Post("/session/screen", h.handleNavigate)
	r.Put("/session/filters", h.handleSetFilters)
	r.Post("/session/pet", h.handleSelectPet)
}

func (h *sessionHandler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.engine.Snapshot(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, snap)
}

type signInRequest struct {
	UserID string `json:"user_id"`
}

func (h *sessionHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[signInRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	userID, err := domain.ParseUserID(req.UserID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	user, err := h.engine.SignIn(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *sessionHandler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.SignOut(r.Context()); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type navigateRequest struct {
	Screen string `json:"screen"`
}

func (h *sessionHandler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[navigateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	screen, err := domain.ParseScreen(req.Screen)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.engine.Navigate(ctx, screen); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"screen": screen.String()})
}

func (h *sessionHandler) handleSetFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f, ok := httputil.DecodeAndPrepare[matching.Filters](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.engine.SetFilters(ctx, f); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, f)
}

type selectPetRequest struct {
	PetID string `json:"pet_id"`
}

func (h *sessionHandler) handleSelectPet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[selectPetRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	petID, err := domain.ParsePetID(req.PetID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.engine.SelectPet(ctx, petID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
