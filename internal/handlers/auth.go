package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/authsrv/internal/config"
	"github.com/example/authsrv/internal/middleware"
	"github.com/example/authsrv/internal/models"
	"github.com/example/authsrv/internal/services"
	"github.com/example/authsrv/internal/store"
	"github.com/example/authsrv/internal/utils"
)

// AuthHandler bundles dependencies for registration, login and session endpoints.
type AuthHandler struct {
	store  store.UserStore
	mailer services.MailSender
	cfg    *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(store store.UserStore, mailer services.MailSender, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: store, mailer: mailer, cfg: cfg}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account, sets the session cookie and sends the
// welcome email.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, "Invalid request body.")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fail(c, "Missing details.")
	}

	if _, err := h.store.FindByEmail(c.UserContext(), req.Email); err == nil {
		return fail(c, "User already exists.")
	} else if !errors.Is(err, store.ErrNotFound) {
		return fail(c, err.Error())
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fail(c, err.Error())
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: passwordHash,
	}

	if err := h.store.Create(c.UserContext(), &user); err != nil {
		return fail(c, err.Error())
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID.Hex(), h.cfg.TokenExpires)
	if err != nil {
		return fail(c, err.Error())
	}
	h.setSessionCookie(c, token)

	// Best effort in the sense that there is no retry; a send failure still
	// surfaces as this request's error.
	if err := h.mailer.Send(user.Email, "Welcome to the Authentication App", services.WelcomeEmail(user.Email)); err != nil {
		return fail(c, err.Error())
	}

	return ok(c)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an existing user and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, "Invalid request body.")
	}

	if req.Email == "" || req.Password == "" {
		return fail(c, "Email and password are required.")
	}

	user, err := h.store.FindByEmail(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Deliberately distinct from the wrong-password message.
			return fail(c, "User not found.")
		}
		return fail(c, err.Error())
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return fail(c, "Invalid email or password.")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID.Hex(), h.cfg.TokenExpires)
	if err != nil {
		return fail(c, err.Error())
	}
	h.setSessionCookie(c, token)

	return ok(c)
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)
	return okMsg(c, "Logged out.")
}

// IsAuthenticated answers success for any request the auth middleware let through.
func (h *AuthHandler) IsAuthenticated(c *fiber.Ctx) error {
	return ok(c)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: h.sameSiteMode(),
		Expires:  time.Now().Add(h.cfg.TokenExpires),
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: h.sameSiteMode(),
		Expires:  time.Now().Add(-time.Hour),
	})
}

// Cross-site frontends need SameSite=None, which browsers only accept on
// secure cookies, so the mode follows the environment.
func (h *AuthHandler) sameSiteMode() string {
	if h.cfg.IsProduction() {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteStrictMode
}
