package share

import (
	"net/http"

	"melodia/internal/handlers"
	"melodia/internal/resource"
	"melodia/internal/share"
	myErr "melodia/internal/types/errors"

	"go.uber.org/zap"
)

type ShareHandler struct {
	Logger  *zap.SugaredLogger
	Manager share.ShareManager
}

func NewShareHandler(l *zap.SugaredLogger, m share.ShareManager) *ShareHandler {
	return &ShareHandler{
		Logger:  l,
		Manager: m,
	}
}

// Create - POST /api/shares, владелец выдает доступ по email
func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	var req share.CreateShare
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	sh, err := h.Manager.Create(r.Context(), actor, req)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, sh, h.Logger)
	h.Logger.Infof("%s %s shared with %s", sh.ResourceType, sh.ResourceID, sh.SharedWithEmail)
}

// Accept - POST /api/shares/{id}/accept, только получатель
func (h *ShareHandler) Accept(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	sh, err := h.Manager.Accept(r.Context(), actor, id)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, sh, h.Logger)
}

// Delete - отзыв владельцем или отказ получателя
func (h *ShareHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	if err := h.Manager.Delete(r.Context(), actor, id); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByResource - GET /api/{kind}/{id}/shares
func (h *ShareHandler) ListByResource(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	ref, err := handlers.RefFromVars(r)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	shares, err := h.Manager.ListByResource(r.Context(), actor, ref)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if shares == nil {
		shares = []share.Share{}
	}

	handlers.WriteJSON(w, http.StatusOK, shares, h.Logger)
}

// Received - GET /api/shares/received?status=&type=
func (h *ShareHandler) Received(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	q := r.URL.Query()

	status := share.Status(q.Get("status"))
	switch status {
	case "", share.StatusPending, share.StatusAccepted:
	default:
		handlers.SendError(w, myErr.ErrValidation, h.Logger)
		return
	}

	var typ resource.Type
	if raw := q.Get("type"); raw != "" {
		var err error
		if typ, err = resource.ParseType(raw); err != nil {
			handlers.SendError(w, err, h.Logger)
			return
		}
	}

	received, err := h.Manager.ListForRecipient(r.Context(), actor, status, typ)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if received == nil {
		received = []share.Received{}
	}

	handlers.WriteJSON(w, http.StatusOK, received, h.Logger)
}
