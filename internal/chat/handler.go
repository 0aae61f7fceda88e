package chat

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/kisanconnect/kisanconnect/internal/api"
	"github.com/kisanconnect/kisanconnect/internal/external"
	"github.com/kisanconnect/kisanconnect/internal/lang"
)

// maxImageUpload caps leaf-image uploads at 10 MB.
const maxImageUpload = 10 << 20

// MessageRequest is the body of POST /api/v1/chat/message.
type MessageRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=2000"`
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Language  string `json:"language,omitempty" validate:"omitempty,oneof=en hi mr"`
}

// DiseaseRequest is the body of POST /api/v1/chat/disease. It carries the
// raw model output of an already-performed detection.
type DiseaseRequest struct {
	SessionID  string  `json:"session_id,omitempty"`
	Label      string  `json:"label" validate:"required,min=1,max=200"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
	Language   string  `json:"language,omitempty" validate:"omitempty,oneof=en hi mr"`
}

// LanguageRequest is the body of PUT /api/v1/chat/session/{sessionID}/language.
type LanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en hi mr"`
}

// SessionResponse is the session view returned by GET.
type SessionResponse struct {
	SessionID      string `json:"session_id"`
	Language       string `json:"language"`
	ContextSummary string `json:"context_summary"`
	AwaitingInput  string `json:"awaiting_input,omitempty"`
	MessageCount   int    `json:"message_count"`
	Busy           bool   `json:"busy"`
}

// DiseaseImageResponse is returned by POST /api/v1/chat/disease/image. It
// pairs the raw detection with a localized summary and the conversation turn
// it produced.
type DiseaseImageResponse struct {
	Detection external.DiseaseDetectionResult `json:"detection"`
	Summary   string                          `json:"summary"`
	Turn      DiseaseTurnResult               `json:"turn"`
}

// Handler handles chat HTTP endpoints.
type Handler struct {
	manager  *Manager
	ext      *external.Client
	validate *validator.Validate
}

// NewHandler creates a new chat handler.
func NewHandler(manager *Manager, ext *external.Client) *Handler {
	return &Handler{
		manager:  manager,
		ext:      ext,
		validate: validator.New(),
	}
}

// Message processes one user message and returns the assistant response.
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	svc, err := h.manager.Resolve(r.Context(), req.SessionID, lang.Language(req.Language), req.UserID)
	if err != nil {
		slog.Error("resolving session", "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	if svc.Busy() {
		api.HandleError(w, api.ErrTurnInProgress)
		return
	}

	result, err := svc.ProcessMessage(r.Context(), req.Message)
	if err != nil {
		slog.Error("processing message", "session_id", svc.Session().ID, "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	api.JSON(w, http.StatusOK, result)
}

// Disease continues a conversation from a disease model result.
func (h *Handler) Disease(w http.ResponseWriter, r *http.Request) {
	var req DiseaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	svc, err := h.manager.Resolve(r.Context(), req.SessionID, lang.Language(req.Language), "")
	if err != nil {
		slog.Error("resolving session", "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	result, err := svc.ProcessModelResult(r.Context(), req.Label, req.Confidence)
	if err != nil {
		slog.Error("processing disease result", "session_id", svc.Session().ID, "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	api.JSON(w, http.StatusOK, result)
}

// DiseaseImage accepts a leaf photo as multipart form data, runs detection
// through the disease model, and folds the result into the conversation.
func (h *Handler) DiseaseImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		api.HandleError(w, api.NewBadRequestError("invalid image upload"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		api.HandleError(w, api.NewBadRequestError("image file is required"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageUpload))
	if err != nil {
		api.HandleError(w, api.NewBadRequestError("could not read image"))
		return
	}

	svc, err := h.manager.Resolve(r.Context(), r.FormValue("session_id"), lang.Language(r.FormValue("language")), r.FormValue("user_id"))
	if err != nil {
		slog.Error("resolving session", "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	detection, err := h.ext.DetectDisease(r.Context(), image, header.Filename)
	if err != nil {
		slog.Error("detecting disease", "session_id", svc.Session().ID, "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	turn, err := svc.ProcessDiseaseDetection(r.Context(), detection)
	if err != nil {
		slog.Error("processing disease detection", "session_id", svc.Session().ID, "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	api.JSON(w, http.StatusOK, DiseaseImageResponse{
		Detection: detection,
		Summary:   external.FormatDiseaseResult(detection, svc.Session().Language),
		Turn:      turn,
	})
}

// GetSession returns a summary view of a session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	svc, ok, err := h.manager.Load(r.Context(), sessionID)
	if err != nil {
		slog.Error("loading session", "session_id", sessionID, "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}
	if !ok {
		api.HandleError(w, api.NewNotFoundError("session not found"))
		return
	}

	sess := svc.Session()
	api.JSON(w, http.StatusOK, SessionResponse{
		SessionID:      sess.ID,
		Language:       string(sess.Language),
		ContextSummary: sess.ContextSummary(),
		AwaitingInput:  string(sess.AwaitingInput),
		MessageCount:   len(sess.Messages),
		Busy:           svc.Busy(),
	})
}

// DeleteSession discards a session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.manager.Remove(r.Context(), sessionID); err != nil {
		slog.Error("deleting session", "session_id", sessionID, "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	api.JSONMessage(w, http.StatusOK, "session deleted successfully")
}

// SetLanguage overrides the language of an existing session.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req LanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	svc, ok, err := h.manager.Load(r.Context(), sessionID)
	if err != nil {
		slog.Error("loading session", "session_id", sessionID, "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}
	if !ok {
		api.HandleError(w, api.NewNotFoundError("session not found"))
		return
	}

	if err := svc.SetLanguage(r.Context(), lang.Language(req.Language)); err != nil {
		slog.Error("setting session language", "session_id", sessionID, "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	api.JSONMessage(w, http.StatusOK, "language updated")
}
