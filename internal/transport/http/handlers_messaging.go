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

type messagingHandler struct {
	engine *app.Engine
	logger *slog.Logger
}

func newMessagingHandler(engine *app.Engine, logger *slog.Logger) *messagingHandler {
	return &messagingHandler{engine: engine, logger: logger}
}

func (h *messagingHandler) Register(r chi.Router) {
	r.Post("/matches/{matchID}/messages", h.handleSend)
	r.Get("/matches/{matchID}/messages", h.handleList)
	r.Post("/matches/{matchID}/read", h.handleMarkRead)
}

type sendMessageRequest struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

func (h *messagingHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sender, ok := requireActor(w, r)
	if !ok {
		return
	}
	matchID, err := domain.ParseMatchID(chi.URLParam(r, "matchID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[sendMessageRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	msgType, err := domain.ParseMessageType(req.Type)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	msg, err := h.engine.SendMessage(ctx, matchID, sender, req.Content, msgType)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, msg)
}

func (h *messagingHandler) handleList(w http.ResponseWriter, r *http.Request) {
	reader, ok := requireActor(w, r)
	if !ok {
		return
	}
	matchID, err := domain.ParseMatchID(chi.URLParam(r, "matchID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	msgs, err := h.engine.ListMessages(r.Context(), matchID, reader)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, msgs)
}

func (h *messagingHandler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	reader, ok := requireActor(w, r)
	if !ok {
		return
	}
	matchID, err := domain.ParseMatchID(chi.URLParam(r, "matchID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.engine.MarkRead(r.Context(), matchID, reader); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
