package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pawmates/internal/app"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
	"pawmates/pkg/platform/httputil"
	"pawmates/pkg/requestcontext"
)

type communityHandler struct {
	engine *app.Engine
	logger *slog.Logger
}

func newCommunityHandler(engine *app.Engine, logger *slog.Logger) *communityHandler {
	return &communityHandler{engine: engine, logger: logger}
}

func (h *communityHandler) Register(r chi.Router) {
	r.Post("/communities", h.handleCreate)
	r.Get("/communities", h.handleList)
	r.Get("/communities/{communityID}", h.handleGet)
	r.Post("/communities/{communityID}/join", h.handleJoin)
	r.Post("/communities/{communityID}/leave", h.handleLeave)
	r.Post("/communities/{communityID}/posts", h.handleAddPost)
	r.Post("/communities/{communityID}/events", h.handleCreateEvent)
	r.Get("/posts/{postID}", h.handleGetPost)
	r.Post("/posts/{postID}/comments", h.handleAddComment)
	r.Get("/events", h.handleListEvents)
	r.Post("/events/{eventID}/join", h.handleJoinEvent)
	r.Post("/events/{eventID}/leave", h.handleLeaveEvent)
}

type createCommunityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

func (h *communityHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	creator, ok := requireActor(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[createCommunityRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	communityType, err := domain.ParseCommunityType(req.Type)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.engine.CreateCommunity(ctx, creator, req.Name, req.Description, communityType)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "community created",
		"request_id", requestcontext.RequestID(ctx),
		"community_id", c.ID,
		"creator_id", creator,
	)
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *communityHandler) handleList(w http.ResponseWriter, r *http.Request) {
	cs, err := h.engine.ListCommunities(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cs)
}

func (h *communityHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	communityID, err := domain.ParseCommunityID(chi.URLParam(r, "communityID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.engine.GetCommunity(r.Context(), communityID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *communityHandler) handleJoin(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	communityID, err := domain.ParseCommunityID(chi.URLParam(r, "communityID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.engine.JoinCommunity(r.Context(), communityID, actor)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *communityHandler) handleLeave(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	communityID, err := domain.ParseCommunityID(chi.URLParam(r, "communityID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.engine.LeaveCommunity(r.Context(), communityID, actor)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

type addPostRequest struct {
	Content  string `json:"content"`
	MediaURL string `json:"media_url"`
}

func (h *communityHandler) handleAddPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	author, ok := requireActor(w, r)
	if !ok {
		return
	}
	communityID, err := domain.ParseCommunityID(chi.URLParam(r, "communityID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[addPostRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	post, err := h.engine.AddPost(ctx, communityID, author, req.Content, req.MediaURL)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, post)
}

func (h *communityHandler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := domain.ParsePostID(chi.URLParam(r, "postID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	post, err := h.engine.GetPost(r.Context(), postID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, post)
}

type addCommentRequest struct {
	Content string `json:"content"`
}

func (h *communityHandler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	author, ok := requireActor(w, r)
	if !ok {
		return
	}
	postID, err := domain.ParsePostID(chi.URLParam(r, "postID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[addCommentRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	comment, err := h.engine.AddComment(ctx, postID, author, req.Content)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, comment)
}

type createEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	DateTime    string `json:"date_time"`
}

func (h *communityHandler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	creator, ok := requireActor(w, r)
	if !ok {
		return
	}
	communityID, err := domain.ParseCommunityID(chi.URLParam(r, "communityID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[createEventRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "date_time must be RFC 3339"))
		return
	}
	event, err := h.engine.CreateEvent(ctx, communityID, creator, req.Name, req.Description, req.Location, dateTime)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, event)
}

func (h *communityHandler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.engine.ListEvents(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

func (h *communityHandler) handleJoinEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	eventID, err := domain.ParseEventID(chi.URLParam(r, "eventID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	event, err := h.engine.JoinEvent(r.Context(), eventID, actor)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, event)
}

func (h *communityHandler) handleLeaveEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	eventID, err := domain.ParseEventID(chi.URLParam(r, "eventID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	event, err := h.engine.LeaveEvent(r.Context(), eventID, actor)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, event)
}
