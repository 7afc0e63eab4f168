package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"melodia/internal/contextutil"
	"melodia/internal/resource"
	myErr "melodia/internal/types/errors"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// WriteJSON пишет тело ответа, ошибку кодирования только логирует:
// заголовок к этому моменту уже отправлен
func WriteJSON(w http.ResponseWriter, status int, v interface{}, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

// SendError отвечает статусом, соответствующим доменной ошибке
func SendError(w http.ResponseWriter, err error, logger *zap.SugaredLogger) {
	myErr.SendErrorTo(w, err, myErr.StatusFor(err), logger)
}

// RequireActor достает вызывающего из сессии, иначе отвечает 401
func RequireActor(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger) (resource.Actor, bool) {
	actor, ok := contextutil.ActorFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, logger)
		return resource.Actor{}, false
	}
	return actor, true
}

// PathID - uuid из переменной маршрута
func PathID(r *http.Request, name string) (string, error) {
	id := mux.Vars(r)[name]
	if _, err := uuid.Parse(id); err != nil {
		return "", myErr.ErrBadID
	}
	return id, nil
}

// RefFromVars собирает ссылку на ресурс из маршрута вида /api/{kind}/{id}/...,
// где kind - notes или recordings
func RefFromVars(r *http.Request) (resource.Ref, error) {
	typ, err := resource.ParseType(strings.TrimSuffix(mux.Vars(r)["kind"], "s"))
	if err != nil {
		return resource.Ref{}, err
	}

	id, err := PathID(r, "id")
	if err != nil {
		return resource.Ref{}, err
	}

	return resource.Ref{ID: id, Type: typ}, nil
}

// DecodeJSON читает тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return myErr.ErrInvalidJSONPayload
	}
	return nil
}
