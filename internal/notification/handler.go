package notification

import (
	"encoding/json"
	"net/http"

	"melodia/internal/contextutil"
	myErr "melodia/internal/types/errors"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	service NotificationService
	logger  *zap.SugaredLogger
}

func NewHandler(service NotificationService, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List - GET /notifications?unread=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := contextutil.ActorFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.logger)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"

	list, err := h.service.List(r.Context(), actor, unreadOnly)
	if err != nil {
		h.logger.Errorf("Failed to list notifications: %v", err)
		myErr.SendErrorTo(w, err, myErr.StatusFor(err), h.logger)
		return
	}

	if list == nil {
		list = []Notification{} // Пустой массив вместо null
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		h.logger.Errorf("Failed to encode response: %v", err)
	}
}

// MarkRead - POST /notifications/{id}/read
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := contextutil.ActorFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.logger)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.service.MarkRead(r.Context(), actor, id); err != nil {
		myErr.SendErrorTo(w, err, myErr.StatusFor(err), h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
