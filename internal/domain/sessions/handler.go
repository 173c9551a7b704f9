package sessions

import (
	"context"
	"net/http"
	"time"

	"pet-care-tracker/internal/domain/users"
	"pet-care-tracker/internal/middleware"
	"pet-care-tracker/internal/platform/httpx"
	"pet-care-tracker/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// HomePath es el destino que el cliente navega tras autenticarse.
const HomePath = "/home"

// Registrar crea usuarios (signup).
type Registrar interface {
	CreateUser(ctx context.Context, email, password string) (users.User, error)
}

type CookieOptions struct {
	Secure bool
}

type handler struct {
	mgr    *Manager
	reg    Registrar
	cookie CookieOptions
	log    logger.Logger
}

func RegisterRoutes(r chi.Router, mgr *Manager, reg Registrar, cookie CookieOptions, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	h := &handler{mgr: mgr, reg: reg, cookie: cookie, log: log}

	r.Post("/api/signup", h.signup)
	r.Post("/api/login", h.login)
	r.Get("/api/user_data", h.userData)
	r.Get("/logout", h.logout)
}

// credentialsRequest es el body de signup y login.
type credentialsRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"pw"`
}

// userDataResponse es la identidad visible para el cliente (sin hash).
type userDataResponse struct {
	Email string `json:"email,omitempty"`
	ID    int64  `json:"id,omitempty"`
}

// signup godoc
// @Summary Registrar usuario
// @Description Crea el usuario y abre la sesión en el mismo request (login encadenado). Devuelve la ruta a la que el cliente debe navegar.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credenciales"
// @Success 200 {string} string "/home"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /api/signup [post]
func (h *handler) signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	u, err := h.reg.CreateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	issued, err := h.mgr.Start(r.Context(), u)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	h.setCookie(w, issued.Token, issued.ExpiresAt)
	httpx.WriteJSON(w, http.StatusOK, HomePath)
}

// login godoc
// @Summary Iniciar sesión
// @Description Verifica credenciales y setea la cookie de sesión. Email desconocido y password incorrecto devuelven el mismo error.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credenciales"
// @Success 200 {string} string "/home"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /api/login [post]
func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	issued, err := h.mgr.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	h.setCookie(w, issued.Token, issued.ExpiresAt)
	httpx.WriteJSON(w, http.StatusOK, HomePath)
}

// userData godoc
// @Summary Datos del usuario actual
// @Description Devuelve {} si no hay sesión, o {email, id}. Nunca devuelve el hash.
// @Tags auth
// @Produce json
// @Success 200 {object} userDataResponse
// @Router /api/user_data [get]
func (h *handler) userData(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusOK, userDataResponse{})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userDataResponse{
		Email: claims.Email,
		ID:    claims.UserID,
	})
}

// logout godoc
// @Summary Cerrar sesión
// @Description Cierra la sesión (idempotente) y redirige a /.
// @Tags auth
// @Success 302
// @Failure 503 {object} httpx.ErrorResponse
// @Router /logout [get]
func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	err := h.mgr.Logout(r.Context(), middleware.SessionToken(r))

	// La cookie se limpia igual: el cliente queda anónimo de su lado.
	h.clearCookie(w)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *handler) setCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
