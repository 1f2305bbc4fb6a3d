package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/frahmantamala/company-management/internal/transport"
	"github.com/frahmantamala/company-management/pkg/logger"
)

const authCookieName = "auth"

type ServiceAPI interface {
	SignIn(dto LoginDTO) (string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type Handler struct {
	*transport.BaseHandler
	Service   ServiceAPI
	CookieTTL time.Duration
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, cookieTTL time.Duration) *Handler {
	if cookieTTL == 0 {
		cookieTTL = time.Hour
	}
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		CookieTTL:   cookieTTL,
	}
}

// Login answers with the token in the body and also sets it as an
// httpOnly cookie; the cookie expiry is decided here, not by the token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.Service.SignIn(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.CookieTTL),
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
	})

	h.WriteSuccess(w, "Login successful", TokenResponse{AccessToken: token})
}

// AuthMiddleware only requires a valid token; there is no role or
// permission policy behind it.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			if cookie, err := r.Cookie(authCookieName); err == nil {
				token = cookie.Value
			}
		}
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := logger.With(r.Context(), "userID", claims.Subject, "username", claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
