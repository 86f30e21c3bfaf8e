package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osuarez/clinic-manager/internal/handler"
	"github.com/osuarez/clinic-manager/internal/model"
	"github.com/osuarez/clinic-manager/internal/service/auth"
	"github.com/osuarez/clinic-manager/internal/session"
)

type Handler struct {
	svc      *auth.Service
	sessions *session.Manager
}

func NewHandler(svc *auth.Service, sessions *session.Manager) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

// RegisterRoutes mounts registration and session routes. The login
// submission sits behind the rate limiter.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, loginLimiter gin.HandlerFunc) {
	r.GET("/add_user", h.RegisterPage)
	r.POST("/add_user", h.Register)
	r.GET("/login", h.LoginPage)
	r.POST("/login", loginLimiter, h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/logout", h.Logout)
}

func (h *Handler) RegisterPage(c *gin.Context) {
	handler.Render(c, http.StatusOK, "add_user.html", nil)
}

// Register handles the registration submission. On any validation
// failure nothing is written and the empty form re-renders with the
// reason; a reused email is reported the same way.
func (h *Handler) Register(c *gin.Context) {
	var form model.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		handler.Render(c, http.StatusOK, "add_user.html", gin.H{
			"Flash": handler.FormErrorMessage(err),
		})
		return
	}

	if _, err := h.svc.Register(c.Request.Context(), &form); err != nil {
		message := "registration failed"
		if errors.Is(err, auth.ErrEmailTaken) {
			message = "email already registered"
		}
		handler.Render(c, http.StatusOK, "add_user.html", gin.H{"Flash": message})
		return
	}

	handler.Render(c, http.StatusOK, "add_user.html", gin.H{
		"Flash": "user registered successfully",
	})
}

func (h *Handler) LoginPage(c *gin.Context) {
	handler.Render(c, http.StatusOK, "login.html", nil)
}

// Login verifies credentials. Success sets the session cookie and lands
// on the dashboard; the two failure modes re-render the form with their
// respective messages.
func (h *Handler) Login(c *gin.Context) {
	var form model.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		handler.Render(c, http.StatusOK, "login.html", gin.H{
			"Flash": handler.FormErrorMessage(err),
		})
		return
	}

	token, err := h.svc.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			message = "user does not exist"
		case errors.Is(err, auth.ErrInvalidCredentials):
			message = "invalid credentials"
		default:
			message = "login failed"
		}
		handler.Render(c, http.StatusOK, "login.html", gin.H{"Flash": message})
		return
	}

	c.SetCookie(h.sessions.CookieName(), token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout destroys the session unconditionally, whether or not one existed.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.sessions.CookieName()); err == nil && token != "" {
		_ = h.svc.Logout(c.Request.Context(), token)
	}

	c.SetCookie(h.sessions.CookieName(), "", -1, "/", "", false, true)
	handler.Flash(c, "session ended")
	c.Redirect(http.StatusFound, "/login")
}
