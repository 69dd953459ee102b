package assessments

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/export"
	"assessment-backend/internal/scoring"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/server/respond"
	"assessment-backend/internal/shared/telemetry"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler wires HTTP handlers to the assessments service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.createAssessment)
	rg.GET("/assessments/:id", h.getAssessment)
	rg.DELETE("/assessments/:id", h.deleteAssessment)
	rg.GET("/assessments/:id/exports/json", h.exportJSON)
	rg.GET("/assessments/:id/exports/xlsx", h.exportXLSX)
}

type createRequest struct {
	Answers map[string]int `json:"answers"`
}

func (h *Handler) createAssessment(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "request body must be JSON with an answers object", nil)
		return
	}
	if len(req.Answers) == 0 {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "answers are required", nil)
		return
	}

	assessment, err := h.Svc.Run(c.Request.Context(), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrIncompleteAnswers):
			respond.Error(c, http.StatusBadRequest, scoring.ErrorCodeIncomplete, err.Error(), nil)
		case errors.Is(err, scoring.ErrInvalidAnswer):
			respond.Error(c, http.StatusBadRequest, scoring.ErrorCodeInvalid, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to run assessment", nil)
		}
		return
	}

	c.Set("assessmentId", assessment.ID)
	respond.Created(c, gin.H{
		"assessmentId": assessment.ID,
		"createdAt":    assessment.CreatedAt,
		"report":       assessment.Report,
	})
}

func (h *Handler) getAssessment(c *gin.Context) {
	assessment, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Set("assessmentId", assessment.ID)
	respond.OK(c, gin.H{
		"assessmentId": assessment.ID,
		"createdAt":    assessment.CreatedAt,
		"report":       assessment.Report,
	})
}

func (h *Handler) deleteAssessment(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "assessment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to delete assessment", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportJSON(c *gin.Context) {
	assessment, ok := h.lookup(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, assessment.Report); err != nil {
		telemetry.Error("export.json_failed", map[string]any{
			"assessment_id": assessment.ID,
			"error":         err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, ErrorCodeExport, "failed to generate JSON export", nil)
		return
	}

	metrics.ExportsGenerated.WithLabelValues("json").Inc()
	c.Set("assessmentId", assessment.ID)
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName("json", assessment.CreatedAt)+`"`)
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}

func (h *Handler) exportXLSX(c *gin.Context) {
	assessment, ok := h.lookup(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, assessment.Report); err != nil {
		telemetry.Error("export.xlsx_failed", map[string]any{
			"assessment_id": assessment.ID,
			"error":         err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, ErrorCodeExport, "failed to generate Excel export", nil)
		return
	}

	metrics.ExportsGenerated.WithLabelValues("xlsx").Inc()
	c.Set("assessmentId", assessment.ID)
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName("xlsx", assessment.CreatedAt)+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) lookup(c *gin.Context) (Assessment, bool) {
	id := c.Param("id")
	assessment, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "assessment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to fetch assessment", nil)
		}
		return Assessment{}, false
	}
	return assessment, true
}
