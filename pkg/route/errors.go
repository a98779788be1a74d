package route

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrNilNode           = errors.New("route: nil node")
	ErrInvalidName       = errors.New("route: invalid node name")
	ErrDuplicateRoute    = errors.New("route: duplicate child name")
	ErrDuplicateWildcard = errors.New("route: more than one wildcard child")
	ErrHookFailed        = errors.New("route: lifecycle hook failed")
)

// Responder is implemented by errors that render their own response.
type Responder interface {
	Respond(w http.ResponseWriter)
}

// HTTPError is a handler error with a status code and a stable key that
// clients can switch on.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// Respond writes {"error": Key} with Code.
func (e HTTPError) Respond(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": e.Key})
}

var (
	ErrForbidden        = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict         = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrPayloadTooLarge  = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "payload_too_large"}
	errMethodNotAllowed = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
)

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// MethodNotAllowed returns a 405 error that lists allowed in the Allow
// header.
func MethodNotAllowed(allowed ...string) error {
	return methodNotAllowed{allow: strings.Join(allowed, ", ")}
}

type methodNotAllowed struct {
	allow string
}

func (e methodNotAllowed) Error() string { return errMethodNotAllowed.Key }

func (e methodNotAllowed) Respond(w http.ResponseWriter) {
	if e.allow != "" {
		w.Header().Set("Allow", e.allow)
	}
	errMethodNotAllowed.Respond(w)
}

// JSON writes v as a JSON response.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
