package account

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/wordchain/pkg/logger"
	"github.com/dmitrymomot/wordchain/pkg/route"
	"github.com/dmitrymomot/wordchain/pkg/session"
)

// accountNode is /account. It owns the schema lifecycle.
type accountNode struct {
	m        *Module
	children []route.Node
}

func (n *accountNode) Name() string                   { return "account" }
func (n *accountNode) Children() []route.Node         { return n.children }
func (n *accountNode) Up(ctx context.Context) error   { return n.m.migrate(ctx) }
func (n *accountNode) Down(ctx context.Context) error { return n.m.reset(ctx) }

func (n *accountNode) Handle(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return route.MethodNotAllowed(http.MethodPost)
	}

	// ParseForm surfaces *http.MaxBytesError, which the dispatcher maps to 413.
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return errInvalidForm
	}

	acc, err := NewAccount(r.PostForm.Get("id"), r.PostForm.Get("password"), n.m.cfg.MaxIDLength)
	if err != nil {
		if errors.Is(err, ErrInvalidID) || errors.Is(err, ErrEmptyPassword) {
			return errInvalidForm
		}
		return err
	}

	if err := n.m.store.Create(r.Context(), acc); err != nil {
		if errors.Is(err, ErrDuplicateID) {
			return errAccountExists
		}
		return err
	}

	n.m.log.InfoContext(r.Context(), "account created", logger.Subject(acc.ID))

	w.Header().Set("Location", "/account/"+acc.ID)
	w.WriteHeader(http.StatusCreated)
	return nil
}

// infoNode is /account/*.
type infoNode struct {
	route.Leaf
	route.Stateless
	m *Module
}

func (n *infoNode) Name() string { return route.Wildcard }

func (n *infoNode) Handle(w http.ResponseWriter, r *http.Request) error {
	id := route.Param(r.Context())

	switch r.Method {
	case http.MethodGet:
		acc, err := n.m.store.Lookup(r.Context(), id)
		if err != nil {
			if errors.Is(err, session.ErrAccountNotFound) {
				return route.ErrNotFound
			}
			return err
		}
		return route.JSON(w, http.StatusOK, map[string]string{"id": acc.ID})

	case http.MethodDelete:
		if err := n.authorize(w, r, id); err != nil {
			return err
		}
		if err := n.m.store.Delete(r.Context(), id); err != nil {
			return err
		}
		n.m.log.InfoContext(r.Context(), "account deleted", logger.Subject(id))
		w.WriteHeader(http.StatusNoContent)
		return nil

	default:
		return route.MethodNotAllowed(http.MethodGet, http.MethodDelete)
	}
}

// authorize accepts the legacy bearer header when present and the cookie
// session otherwise.
func (n *infoNode) authorize(w http.ResponseWriter, r *http.Request, id string) error {
	if len(r.Header.Values("Authorization")) > 0 {
		return n.m.auth.Authorize(id, r)
	}

	ident, err := n.m.auth.Validate(r.Context(), w, r)
	if err != nil {
		return err
	}
	if ident.Subject != id {
		return route.ErrForbidden
	}
	return nil
}

// loginNode is /login.
type loginNode struct {
	route.Leaf
	route.Stateless
	m *Module
}

func (n *loginNode) Name() string { return "login" }

func (n *loginNode) Handle(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return route.MethodNotAllowed(http.MethodPost)
	}
	if err := n.m.throttle(r); err != nil {
		return err
	}

	id, password, err := parseBasic(r)
	if err != nil {
		return err
	}

	acc, err := n.m.store.Lookup(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrAccountNotFound) {
			return route.ErrNotFound
		}
		return err
	}
	if !VerifyPassword(acc, password) {
		return errBasicPasswordMismatch
	}

	pair, err := n.m.auth.Issue(w, acc.ID)
	if err != nil {
		return err
	}

	n.m.log.InfoContext(r.Context(), "session issued", logger.Subject(acc.ID))
	return route.JSON(w, http.StatusOK, map[string]string{"token": pair.Access})
}

// parseBasic reads "Authorization: Basic base64(id:password)". The password
// may not contain ':'.
func parseBasic(r *http.Request) (string, string, error) {
	values := r.Header.Values("Authorization")
	if len(values) == 0 || !visibleASCII(values[0]) {
		return "", "", errMissingCredentials
	}

	terms := strings.Split(values[0], " ")
	if len(terms) != 2 || terms[0] != "Basic" {
		return "", "", errBasicMalformed
	}

	raw, err := base64.StdEncoding.DecodeString(terms[1])
	if err != nil || !utf8.Valid(raw) {
		return "", "", errBasicMalformed
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 2 {
		return "", "", errBasicMalformed
	}
	return parts[0], parts[1], nil
}

func visibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// logoutNode is /logout.
type logoutNode struct {
	route.Leaf
	route.Stateless
	m *Module
}

func (n *logoutNode) Name() string { return "logout" }

func (n *logoutNode) Handle(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return route.MethodNotAllowed(http.MethodPost)
	}
	n.m.auth.Clear(w)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// sessionNode is /session. Cookie validation runs in
// session.RequireSession.
type sessionNode struct {
	route.Leaf
	route.Stateless
	m       *Module
	handler http.Handler
}

func newSessionNode(m *Module) *sessionNode {
	n := &sessionNode{m: m}
	n.handler = m.auth.RequireSession(http.HandlerFunc(n.serve))
	return n
}

func (n *sessionNode) Name() string { return "session" }

func (n *sessionNode) Handle(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		return route.MethodNotAllowed(http.MethodGet)
	}
	n.handler.ServeHTTP(w, r)
	return nil
}

func (n *sessionNode) serve(w http.ResponseWriter, r *http.Request) {
	ident, _ := session.IdentityFromContext(r.Context())
	err := route.JSON(w, http.StatusOK, map[string]any{
		"subject": ident.Subject,
		"rotated": ident.Rotated,
	})
	if err != nil {
		n.m.log.WarnContext(r.Context(), "session response failed", logger.Error(err))
	}
}
