package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/hafizianr/go-catalog-admin/app/services"
	"github.com/hafizianr/go-catalog-admin/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

// Outcome is the result record returned to programmatic callers.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AuthHandler struct {
	render       *render.Render
	authSvc      *services.AuthService
	sessionStore sessions.SessionStore
	validator    *validator.Validate
}

func NewAuthHandler(r *render.Render, authSvc *services.AuthService, sessionStore sessions.SessionStore, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:       r,
		authSvc:      authSvc,
		sessionStore: sessionStore,
		validator:    validator,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type demoRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginPostHandler is the form-style login path. It shares the exact same
// service call as the JSON path and redirects on the result.
func (h *AuthHandler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPostHandler: error parsing form: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/login?status=error&message=%s", url.QueryEscape("Could not process the request.")), http.StatusSeeOther)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Redirect(w, r, fmt.Sprintf("/login?status=error&message=%s", url.QueryEscape("Username and password required.")), http.StatusSeeOther)
		return
	}

	result, err := h.authSvc.Attempt(r.Context(), username, password)
	if err != nil {
		http.Redirect(w, r, fmt.Sprintf("/login?status=error&message=%s", url.QueryEscape(loginErrorMessage(err))), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SignIn(w, r, result.User.ID, result.User.Username); err != nil {
		log.Printf("LoginPostHandler: error setting session for user %d: %v", result.User.ID, err)
		http.Redirect(w, r, fmt.Sprintf("/login?status=error&message=%s", url.QueryEscape("Failed to create login session.")), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/admin/products?status=success&message=%s", url.QueryEscape(result.Message)), http.StatusSeeOther)
}

// LoginAPIHandler is the JSON login path used by fetch-style clients.
func (h *AuthHandler) LoginAPIHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("LoginAPIHandler: error reading body: %v", err)
		_ = h.render.JSON(w, http.StatusBadRequest, Outcome{Success: false, Message: "Could not process the request."})
		return
	}

	var req loginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		// Some clients post form fields against the JSON endpoint. The body
		// is already consumed, so parse the raw bytes as a form instead of
		// going through ParseForm.
		if values, parseErr := url.ParseQuery(string(body)); parseErr == nil {
			req.Username = values.Get("username")
			req.Password = values.Get("password")
		}
	}
	req.Username = strings.TrimSpace(req.Username)

	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, Outcome{Success: false, Message: "Username and password required."})
		return
	}

	result, err := h.authSvc.Attempt(r.Context(), req.Username, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, services.ErrInvalidCredentials) {
			status = http.StatusInternalServerError
		}
		_ = h.render.JSON(w, status, Outcome{Success: false, Message: loginErrorMessage(err)})
		return
	}

	if err := h.sessionStore.SignIn(w, r, result.User.ID, result.User.Username); err != nil {
		log.Printf("LoginAPIHandler: error setting session for user %d: %v", result.User.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, Outcome{Success: false, Message: "Failed to create login session."})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, Outcome{Success: true, Message: result.Message})
}

// CreateDemoHandler creates a demo account. The auth service rejects the
// call unless the serving host looks local.
func (h *AuthHandler) CreateDemoHandler(w http.ResponseWriter, r *http.Request) {
	req := demoRequest{Username: "demo", Password: "Demo@1234"}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("CreateDemoHandler: error decoding body: %v", err)
	}
	if req.Username == "" {
		req.Username = "demo"
	}

	user, err := h.authSvc.CreateDemoUser(r.Context(), r.Host, req.Username, req.Password)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, Outcome{Success: false, Message: demoErrorMessage(err)})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, Outcome{Success: true, Message: fmt.Sprintf("Demo user created: %s", user.Username)})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("LogoutHandler: error clearing session: %v", err)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func loginErrorMessage(err error) string {
	if errors.Is(err, services.ErrInvalidCredentials) {
		return "Invalid username or password."
	}
	log.Printf("login failed unexpectedly: %v", err)
	return "Server error during login."
}

func demoErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrDemoNotLocal):
		return "Demo creation allowed only on local/dev."
	case errors.Is(err, services.ErrWeakPassword):
		return "Invalid demo username/password."
	case errors.Is(err, services.ErrUserExists):
		return "User already exists."
	default:
		log.Printf("demo user creation failed unexpectedly: %v", err)
		return "Could not create demo user."
	}
}
