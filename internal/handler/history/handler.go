package history

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/osuarez/clinic-manager/internal/handler"
	"github.com/osuarez/clinic-manager/internal/model"
	"github.com/osuarez/clinic-manager/internal/service/history"
	apperrors "github.com/osuarez/clinic-manager/pkg/errors"
)

type Handler struct {
	svc *history.Service
}

func NewHandler(svc *history.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the history routes. Editing and deleting require
// an active session; creating and listing do not.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/add_medic_history", h.CreateHistoryPage)
	public.POST("/add_medic_history", h.CreateHistory)
	public.GET("/display_histories", h.ListHistories)

	protected.GET("/update_history/:id", h.UpdateHistoryPage)
	protected.POST("/update_history/:id", h.UpdateHistory)
	protected.GET("/delete_medic_histories/:id", h.DeleteHistory)
}

func (h *Handler) CreateHistoryPage(c *gin.Context) {
	handler.Render(c, http.StatusOK, "add_medic_history.html", nil)
}

// CreateHistory handles the submission. Validation is all-or-nothing: a
// missing field or a non-numeric age writes nothing and re-renders the
// empty form with the reason.
func (h *Handler) CreateHistory(c *gin.Context) {
	var form model.HistoryForm
	if err := c.ShouldBind(&form); err != nil {
		handler.Render(c, http.StatusOK, "add_medic_history.html", gin.H{
			"Flash": handler.FormErrorMessage(err),
		})
		return
	}

	if _, err := h.svc.Create(c.Request.Context(), &form); err != nil {
		handler.Render(c, http.StatusOK, "add_medic_history.html", gin.H{
			"Flash": "error saving medical history",
		})
		return
	}

	handler.Render(c, http.StatusOK, "add_medic_history.html", gin.H{
		"Flash": "medical history registered",
	})
}

func (h *Handler) ListHistories(c *gin.Context) {
	histories, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.ServerErrorPage(c)
		return
	}

	handler.Render(c, http.StatusOK, "display_histories.html", gin.H{"Histories": histories})
}

func (h *Handler) UpdateHistoryPage(c *gin.Context) {
	record, ok := h.fetchHistory(c)
	if !ok {
		return
	}

	handler.Render(c, http.StatusOK, "update_history.html", gin.H{"History": record})
}

// UpdateHistory overwrites every field of the record from the submitted
// values. A persistence failure reports a generic message over the same
// record.
func (h *Handler) UpdateHistory(c *gin.Context) {
	record, ok := h.fetchHistory(c)
	if !ok {
		return
	}

	var form model.HistoryForm
	if err := c.ShouldBind(&form); err != nil {
		handler.Render(c, http.StatusOK, "update_history.html", gin.H{
			"History": record,
			"Flash":   handler.FormErrorMessage(err),
		})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), record.ID, &form)
	if err != nil {
		if apperrors.IsNotFound(err) {
			handler.NotFoundPage(c)
			return
		}
		handler.Render(c, http.StatusOK, "update_history.html", gin.H{
			"History": record,
			"Flash":   "error updating medical history",
		})
		return
	}

	handler.Render(c, http.StatusOK, "update_history.html", gin.H{
		"History": updated,
		"Flash":   "medical history updated",
	})
}

func (h *Handler) DeleteHistory(c *gin.Context) {
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
		h.renderList(c, "error deleting medical history")
		return
	}

	h.renderList(c, "medical history deleted")
}

func (h *Handler) renderList(c *gin.Context, flash string) {
	histories, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.ServerErrorPage(c)
		return
	}

	handler.Render(c, http.StatusOK, "display_histories.html", gin.H{
		"Histories": histories,
		"Flash":     flash,
	})
}

func (h *Handler) fetchHistory(c *gin.Context) (*model.MedicalHistory, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.NotFoundPage(c)
		return nil, false
	}

	record, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			handler.NotFoundPage(c)
		} else {
			handler.ServerErrorPage(c)
		}
		return nil, false
	}

	return record, true
}
