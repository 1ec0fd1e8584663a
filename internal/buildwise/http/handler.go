package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildwise/smart-estimator/internal/buildwise/domain"
	"github.com/buildwise/smart-estimator/internal/buildwise/form"
	"github.com/buildwise/smart-estimator/internal/buildwise/insights"
	"github.com/buildwise/smart-estimator/internal/buildwise/render"
	"github.com/buildwise/smart-estimator/internal/buildwise/session"
	"github.com/buildwise/smart-estimator/internal/logging"
)

// Backend is what the handlers need from the estimation service client.
type Backend interface {
	session.Estimator
	session.Planner
}

type Handler struct {
	backend  Backend
	sessions *session.Store
}

func New(backend Backend, sessions *session.Store) *Handler {
	return &Handler{backend: backend, sessions: sessions}
}

// page renders the estimator page. A pending notification is shown once.
func (h *Handler) page(c *gin.Context) {
	ws := workspace(c)
	c.HTML(http.StatusOK, render.PageTemplate, render.NewPage(ws.TakeSnapshot()))
}

// submitEstimateForm handles the HTML form post and redirects back to the page.
func (h *Handler) submitEstimateForm(c *gin.Context) {
	ws := workspace(c)
	if err := ws.UpdateForm(postedFields(c, estimateFields)); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	// Failures are reported through the workspace notification.
	_, _ = ws.SubmitEstimate(detach(c), h.backend)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) submitPlanForm(c *gin.Context) {
	ws := workspace(c)
	if err := ws.UpdateForm(postedFields(c, []string{form.FieldDescription})); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	_, _ = ws.GeneratePlan(detach(c), h.backend)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, newStateResponse(workspace(c).TakeSnapshot()))
}

func (h *Handler) updateForm(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ws := workspace(c)
	if err := ws.UpdateForm(body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newStateResponse(ws.Snapshot()))
}

func (h *Handler) estimate(c *gin.Context) {
	ws := workspace(c)
	if !h.applyOptionalBody(c, ws) {
		return
	}

	res, err := ws.SubmitEstimate(detach(c), h.backend)
	if err != nil {
		h.backendError(c, session.NoticeEstimateFailed, err)
		return
	}
	c.JSON(http.StatusOK, estimateResponse{
		EstimateResult: res,
		Sections:       insights.Split(res.AIInsights),
	})
}

func (h *Handler) generatePlan(c *gin.Context) {
	ws := workspace(c)
	if !h.applyOptionalBody(c, ws) {
		return
	}

	res, err := ws.GeneratePlan(detach(c), h.backend)
	if err != nil {
		h.backendError(c, session.NoticePlanFailed, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) splitInsights(c *gin.Context) {
	var body splitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, insights.Split(body.Text))
}

// applyOptionalBody lets API callers send form fields along with a submit.
func (h *Handler) applyOptionalBody(c *gin.Context, ws *session.Workspace) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := ws.UpdateForm(body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) backendError(c *gin.Context, notice string, err error) {
	logging.NewLogger(c.Request.Context()).LogError(c.FullPath(), err)
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrBackendUnavailable) {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": notice})
}

// detach keeps the request's values (request id) but not its cancellation: a
// submitted request runs to completion even if the browser goes away.
func detach(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

var estimateFields = []string{
	form.FieldAreaSqft,
	form.FieldMaterialQuality,
	form.FieldLocationTier,
	form.FieldFloors,
	form.FieldDeadlineMonths,
}

// postedFields collects the named fields that are present in the post.
func postedFields(c *gin.Context, names []string) map[string]string {
	out := make(map[string]string, len(names))
	for _, name := range names {
		if v, ok := c.GetPostForm(name); ok {
			out[name] = v
		}
	}
	return out
}
