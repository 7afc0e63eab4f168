package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrDBInternal       = errors.New("database internal error")
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionIsExpired = errors.New("session is expired")
	ErrNoAuth           = errors.New("authorization required")
	ErrForbidden        = errors.New("access denied")

	ErrBadPassword = errors.New("bad password")
	ErrBadID       = errors.New("bad id")
	ErrBadEmail    = errors.New("invalid email format")

	ErrValidation         = errors.New("required field is empty")
	ErrInvalidJSONPayload = errors.New("invalid JSON payload")
	ErrBadResourceType    = errors.New("resource type must be note or recording")

	ErrNotFoundFeedback  = errors.New("can't find a feedback with this ID")
	ErrMissingFeedbackID = errors.New("feedback id is missing")
	ErrCommentIsTooLong  = errors.New("comment must be less than 2000 characters")
	ErrInvalidParent     = errors.New("reply parent must be a top-level feedback on the same resource")
	ErrToggleInFlight    = errors.New("a toggle for this feedback is already in progress")

	ErrNotFoundShare     = errors.New("share not found")
	ErrAlreadyShared     = errors.New("already shared with this email")
	ErrShareWithSelf     = errors.New("cannot share a resource with yourself")
	ErrInvalidTransition = errors.New("share is not pending")
	ErrBadPermission     = errors.New("permission level must be view or edit")

	ErrIndexing = errors.New("indexing error")
	ErrSearch   = errors.New("search error")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
accepts a nil error as well: nil means the client
just gets a "success" message
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}

// StatusFor maps a domain sentinel to the HTTP status the handlers answer with.
// Unknown errors are treated as remote failures.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidJSONPayload),
		errors.Is(err, ErrBadResourceType),
		errors.Is(err, ErrBadID),
		errors.Is(err, ErrBadEmail),
		errors.Is(err, ErrBadPermission),
		errors.Is(err, ErrCommentIsTooLong),
		errors.Is(err, ErrShareWithSelf),
		errors.Is(err, ErrMissingFeedbackID):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidParent):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrAlreadyShared),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrToggleInFlight):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrNotFoundFeedback),
		errors.Is(err, ErrNotFoundShare):
		return http.StatusNotFound
	case errors.Is(err, ErrNoAuth),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrSessionIsExpired),
		errors.Is(err, ErrBadPassword):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
