package assessments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"therapy-backend/internal/recommend"
	"therapy-backend/internal/shared/server/middleware"
	"therapy-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the assessments service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation and history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.recommend)
	rg.POST("/recommendations/stretching", h.recommendStretching)
	rg.GET("/assessments", h.listAssessments)
	rg.GET("/assessments/:id", h.getAssessment)
}

type recommendRequest struct {
	Name          string   `json:"name"`
	PainLevel     *int     `json:"painLevel"`
	MobilityLevel *int     `json:"mobilityLevel"`
	Condition     string   `json:"condition"`
	Goals         []string `json:"goals"`
	Limit         int      `json:"limit"`
}

func (h *Handler) recommend(c *gin.Context) {
	h.handleRecommend(c, false)
}

func (h *Handler) recommendStretching(c *gin.Context) {
	h.handleRecommend(c, true)
}

func (h *Handler) handleRecommend(c *gin.Context, stretchingOnly bool) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.PainLevel == nil || req.MobilityLevel == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "painLevel and mobilityLevel are required", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	input := Input{
		Name:          req.Name,
		PainLevel:     *req.PainLevel,
		MobilityLevel: *req.MobilityLevel,
		Condition:     req.Condition,
		Goals:         req.Goals,
		Limit:         req.Limit,
	}

	var (
		rec Recommendation
		err error
	)
	if stretchingOnly {
		rec, err = h.Svc.RecommendStretching(c.Request.Context(), userID, input)
	} else {
		rec, err = h.Svc.Recommend(c.Request.Context(), userID, input)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusServiceUnavailable, "catalog_unavailable", "exercise catalog is unavailable", nil)
		}
		return
	}

	c.Set("assessmentId", rec.Assessment.ID)

	respond.JSON(c, http.StatusOK, gin.H{
		"assessmentId":    rec.Assessment.ID,
		"recommendations": renderResults(rec.Results),
		"totalExercises":  rec.TotalExercises,
		"ptExercises":     rec.PTExercises,
		"catalogSource":   rec.CatalogSource,
	})
}

func (h *Handler) listAssessments(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	records, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list assessments", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"assessments": records,
		"count":       len(records),
	})
}

func (h *Handler) getAssessment(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}

	assessmentID := c.Param("id")
	if assessmentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "assessment id is required", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	rec, err := h.Svc.Repo.GetByID(c.Request.Context(), userID, assessmentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch assessment", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, rec)
}

func renderResults(results []recommend.Result) []gin.H {
	out := make([]gin.H, 0, len(results))
	for _, res := range results {
		ex := res.Exercise
		out = append(out, gin.H{
			"exercise": gin.H{
				"id":                  ex.Exercise.ID,
				"name":                ex.Exercise.Name,
				"category":            ex.Category,
				"intensity":           ex.Intensity.String(),
				"equipment":           ex.Exercise.Equipment,
				"primaryMuscles":      ex.Exercise.PrimaryMuscles,
				"instructions":        ex.Exercise.Instructions,
				"progressionLevel":    ex.ProgressionLevel,
				"therapeuticBenefits": ex.TherapeuticBenefits,
			},
			"score":       res.Score,
			"suitability": res.Suitability,
			"reasons":     res.Reasons,
			"warnings":    res.Warnings,
		})
	}
	return out
}
