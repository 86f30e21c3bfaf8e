package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/osuarez/clinic-manager/internal/handler"
	"github.com/osuarez/clinic-manager/internal/model"
	"github.com/osuarez/clinic-manager/internal/service/user"
	apperrors "github.com/osuarez/clinic-manager/pkg/errors"
)

type Handler struct {
	svc *user.Service
}

func NewHandler(svc *user.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/display_users", h.ListUsers)
	r.GET("/update_users/:id", h.UpdateUserPage)
	r.POST("/update_users/:id", h.UpdateUser)
	r.GET("/delete_users/:id", h.DeleteUser)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.ServerErrorPage(c)
		return
	}

	handler.Render(c, http.StatusOK, "display_users.html", gin.H{"Users": users})
}

func (h *Handler) UpdateUserPage(c *gin.Context) {
	u, ok := h.fetchUser(c)
	if !ok {
		return
	}

	handler.Render(c, http.StatusOK, "update_users.html", gin.H{"User": u})
}

// UpdateUser overwrites every profile field from the submitted form. A
// persistence failure reports a generic message and re-renders the same
// record.
func (h *Handler) UpdateUser(c *gin.Context) {
	u, ok := h.fetchUser(c)
	if !ok {
		return
	}

	var form model.UpdateUserForm
	if err := c.ShouldBind(&form); err != nil {
		handler.Render(c, http.StatusOK, "update_users.html", gin.H{
			"User":  u,
			"Flash": handler.FormErrorMessage(err),
		})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), u.ID, &form)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			handler.NotFoundPage(c)
		case apperrors.IsConflict(err):
			handler.Render(c, http.StatusOK, "update_users.html", gin.H{
				"User":  u,
				"Flash": "email or national id already in use",
			})
		default:
			handler.Render(c, http.StatusOK, "update_users.html", gin.H{
				"User":  u,
				"Flash": "error updating user",
			})
		}
		return
	}

	handler.Render(c, http.StatusOK, "update_users.html", gin.H{
		"User":  updated,
		"Flash": "user updated",
	})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.NotFoundPage(c)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			handler.NotFoundPage(c)
			return
		}
		h.renderList(c, "error deleting user")
		return
	}

	h.renderList(c, "user deleted")
}

func (h *Handler) renderList(c *gin.Context, flash string) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.ServerErrorPage(c)
		return
	}

	handler.Render(c, http.StatusOK, "display_users.html", gin.H{
		"Users": users,
		"Flash": flash,
	})
}

// fetchUser resolves the :id path segment, rendering the 404 page for a
// malformed or unknown id.
func (h *Handler) fetchUser(c *gin.Context) (*model.User, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.NotFoundPage(c)
		return nil, false
	}

	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			handler.NotFoundPage(c)
		} else {
			handler.ServerErrorPage(c)
		}
		return nil, false
	}

	return u, true
}
