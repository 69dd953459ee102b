package catalog

import (
	"github.com/gin-gonic/gin"

	"assessment-backend/internal/shared/server/respond"
)

// Handler serves the read-only instrument to the UI shell.
type Handler struct {
	Catalog Catalog
}

// NewHandler constructs a Handler.
func NewHandler(c Catalog) *Handler {
	return &Handler{Catalog: c}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", h.getCatalog)
}

type questionPayload struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Weight  float64  `json:"weight"`
	Min     int      `json:"min"`
	Max     int      `json:"max"`
	Options []string `json:"options"`
}

type categoryPayload struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Prompt    string            `json:"prompt"`
	Questions []questionPayload `json:"questions"`
}

func (h *Handler) getCatalog(c *gin.Context) {
	categories := make([]categoryPayload, 0, len(h.Catalog.Categories))
	for _, cat := range h.Catalog.Categories {
		payload := categoryPayload{
			ID:        cat.ID,
			Name:      cat.Name,
			Prompt:    cat.Prompt,
			Questions: make([]questionPayload, 0, len(cat.Questions)),
		}
		for _, q := range cat.Questions {
			payload.Questions = append(payload.Questions, questionPayload{
				ID:      q.ID,
				Text:    q.Text,
				Weight:  q.Weight,
				Min:     q.Scale.Min,
				Max:     q.Scale.Max,
				Options: q.Scale.Labels,
			})
		}
		categories = append(categories, payload)
	}

	respond.OK(c, gin.H{
		"version":    h.Catalog.Version,
		"categories": categories,
	})
}
