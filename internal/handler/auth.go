package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"wecomment/internal/httputil"
	"wecomment/internal/model"
	"wecomment/internal/service"
	"wecomment/internal/transport/http/middleware"
)

const stateCookieName = "oauth_state"

type AuthHandler struct {
	authService *service.AuthService
	identity    service.GoogleIdentity
}

func NewAuthHandler(authService *service.AuthService, identity service.GoogleIdentity) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		identity:    identity,
	}
}

// GoogleStart redirects to the Google consent screen with a fresh state
// bound to a short-lived cookie.
func (h *AuthHandler) GoogleStart(w http.ResponseWriter, r *http.Request) {
	if !h.identity.Configured() {
		httputil.WriteError(w, http.StatusInternalServerError, httputil.CodeOAuthNotConfigured)
		return
	}

	state := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.identity.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback completes the flow and hands the token to the opener
// window. The popup closes itself after posting the message.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookieName)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		httputil.WriteBadRequest(w, httputil.CodeInvalidState)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		httputil.WriteBadRequest(w, httputil.CodeMissingCode)
		return
	}

	token, _, err := h.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		if errors.Is(err, model.ErrInvalidProfile) {
			httputil.WriteBadRequest(w, httputil.CodeInvalidProfile)
			return
		}
		log.Printf("[ERROR] Google callback: err=%v", err)
		httputil.WriteBadRequest(w, httputil.CodeTokenExchange)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, "<script>window.opener && window.opener.postMessage({type:'wecomment_auth', token:'%s'}, '*');window.close();</script>", token)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w)
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteUnauthorized(w)
			return
		}
		log.Printf("[ERROR] Get me: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}
