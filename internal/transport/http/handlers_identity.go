package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawmates/internal/app"
	"pawmates/internal/identity"
	"pawmates/pkg/domain"
	"pawmates/pkg/platform/httputil"
	"pawmates/pkg/requestcontext"
)

type identityHandler struct {
	engine *app.Engine
	logger *slog.Logger
}

func newIdentityHandler(engine *app.Engine, logger *slog.Logger) *identityHandler {
	return &identityHandler{engine: engine, logger: logger}
}

func (h *identityHandler) Register(r chi.Router) {
	r.Post("/users", h.handleRegister)
	r.Get("/users/{userID}", h.handleGetUser)
	r.Get("/users/{userID}/profile", h.handleGetProfile)
	r.Post("/users/{userID}/verification", h.handleDecideVerification)
	r.Post("/users/{userID}/documents", h.handleSubmitDocuments)
	r.Put("/users/{userID}/privacy", h.handleUpdatePrivacy)
	r.Patch("/users/{userID}/profile", h.handleUpdateProfile)
	r.Get("/users/{userID}/contributions", h.handleContributions)
	r.Get("/users/{userID}/pets", h.handleListPets)
	r.Post("/pets", h.handleAddPet)
	r.Get("/pets/{petID}", h.handleGetPet)
}

type registerRequest struct {
	Role             string               `json:"role"`
	Email            string               `json:"email"`
	DisplayName      string               `json:"display_name"`
	Location         string               `json:"location"`
	Bio              string               `json:"bio"`
	PhotoURL         string               `json:"photo_url"`
	Contact          identity.ContactInfo `json:"contact"`
	Specialties      []string             `json:"specialties"`
	Services         []string             `json:"services"`
	OrganizationType string               `json:"organization_type"`
	BusinessHours    string               `json:"business_hours"`
	DocumentHandles  []string             `json:"document_handles"`
}

func (h *identityHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[registerRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	user, err := h.engine.Register(ctx, identity.NewUserParams{
		Role:             role,
		Email:            req.Email,
		DisplayName:      req.DisplayName,
		Location:         req.Location,
		Bio:              req.Bio,
		PhotoURL:         req.PhotoURL,
		Contact:          req.Contact,
		Specialties:      req.Specialties,
		Services:         req.Services,
		OrganizationType: req.OrganizationType,
		BusinessHours:    req.BusinessHours,
		DocumentHandles:  req.DocumentHandles,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "user registered",
		"request_id", requestcontext.RequestID(ctx),
		"user_id", user.ID,
		"role", user.Role,
	)
	httputil.WriteJSON(w, http.StatusCreated, user)
}

func (h *identityHandler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	user, err := h.engine.GetUser(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *identityHandler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireActor(w, r)
	if !ok {
		return
	}
	userID, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	profile, err := h.engine.GetProfile(r.Context(), userID, viewer)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

type verificationRequest struct {
	Outcome string `json:"outcome"`
}

func (h *identityHandler) handleDecideVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[verificationRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	outcome, err := domain.ParseVerificationStatus(req.Outcome)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	user, err := h.engine.DecideVerification(ctx, userID, outcome)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "verification decided",
		"request_id", requestcontext.RequestID(ctx),
		"user_id", userID,
		"outcome", outcome,
	)
	httputil.WriteJSON(w, http.StatusOK, user)
}

type documentsRequest struct {
	Handles []string `json:"handles"`
}

func (h *identityHandler) handleSubmitDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[documentsRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	user, err := h.engine.SubmitDocuments(ctx, userID, req.Handles)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

type privacyRequest struct {
	ShowCommunityActivity bool `json:"show_community_activity"`
}

func (h *identityHandler) handleUpdatePrivacy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[privacyRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	user, err := h.engine.UpdatePrivacy(ctx, userID, req.ShowCommunityActivity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

type profileUpdateRequest struct {
	DisplayName *string               `json:"display_name"`
	Location    *string               `json:"location"`
	Bio         *string               `json:"bio"`
	PhotoURL    *string               `json:"photo_url"`
	Contact     *identity.ContactInfo `json:"contact"`

	Specialties      []string `json:"specialties"`
	Services         []string `json:"services"`
	OrganizationType *string  `json:"organization_type"`
	BusinessHours    *string  `json:"business_hours"`
}

func (h *identityHandler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[profileUpdateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	user, err := h.engine.UpdateProfile(ctx, userID, identity.ProfileUpdate{
		DisplayName:      req.DisplayName,
		Location:         req.Location,
		Bio:              req.Bio,
		PhotoURL:         req.PhotoURL,
		Contact:          req.Contact,
		Specialties:      req.Specialties,
		Services:         req.Services,
		OrganizationType: req.OrganizationType,
		BusinessHours:    req.BusinessHours,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *identityHandler) handleContributions(w http.ResponseWriter, r *http.Request) {
	userID, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	totals, err := h.engine.ContributionTotals(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, totals)
}

func (h *identityHandler) handleListPets(w http.ResponseWriter, r *http.Request) {
	userID, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	pets, err := h.engine.ListPets(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pets)
}

type addPetRequest struct {
	Name           string   `json:"name"`
	AgeYears       int      `json:"age_years"`
	Type           string   `json:"pet_type"`
	Breed          string   `json:"breed"`
	Size           string   `json:"size"`
	Energy         string   `json:"energy"`
	Bio            string   `json:"bio"`
	Interests      []string `json:"interests"`
	Personality    []string `json:"personality"`
	GoodWith       []string `json:"good_with"`
	Vaccinated     bool     `json:"vaccinated"`
	SpayedNeutered bool     `json:"spayed_neutered"`
	Photos         []string `json:"photos"`
	Location       string   `json:"location"`
	DistanceKm     int      `json:"distance_km"`
}

func (h *identityHandler) handleAddPet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner, ok := requireActor(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[addPetRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	petType, err := domain.ParsePetType(req.Type)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	size, err := domain.ParsePetSize(req.Size)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	energy, err := domain.ParseEnergyLevel(req.Energy)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	pet, err := h.engine.AddPet(ctx, identity.NewPetParams{
		OwnerID:        owner,
		Name:           req.Name,
		AgeYears:       req.AgeYears,
		Type:           petType,
		Breed:          req.Breed,
		Size:           size,
		Energy:         energy,
		Bio:            req.Bio,
		Interests:      req.Interests,
		Personality:    req.Personality,
		GoodWith:       req.GoodWith,
		Vaccinated:     req.Vaccinated,
		SpayedNeutered: req.SpayedNeutered,
		Photos:         req.Photos,
		Location:       req.Location,
		DistanceKm:     req.DistanceKm,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, pet)
}

func (h *identityHandler) handleGetPet(w http.ResponseWriter, r *http.Request) {
	petID, err := domain.ParsePetID(chi.URLParam(r, "petID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	pet, err := h.engine.GetPet(r.Context(), petID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pet)
}
