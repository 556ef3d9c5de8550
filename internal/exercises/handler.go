package exercises

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"therapy-backend/internal/shared/server/respond"
)

// Handler wires catalog HTTP endpoints to the provider.
type Handler struct {
	Provider *Provider
}

// NewHandler constructs a Handler.
func NewHandler(provider *Provider) *Handler {
	return &Handler{Provider: provider}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/exercises", h.list)
}

func (h *Handler) list(c *gin.Context) {
	snap, err := h.Provider.Snapshot(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusServiceUnavailable, "catalog_unavailable", "exercise catalog is unavailable", nil)
		return
	}

	pt := FilterPTRelevant(snap.Exercises)
	if c.Query("stretching") == "true" {
		stretches := make([]Exercise, 0, len(pt))
		for _, ex := range pt {
			if IsStretchingCategory(ex.Category) {
				stretches = append(stretches, ex)
			}
		}
		pt = stretches
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"exercises": pt,
		"total":     len(pt),
		"source":    snap.Source,
	})
}
