package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"EquiLearn/internal/middleware"
	"EquiLearn/internal/service"

	"github.com/gin-gonic/gin"
)

type FeaturedHandler struct {
	svc *service.FeaturedService
}

func NewFeaturedHandler() *FeaturedHandler {
	return &FeaturedHandler{
		svc: service.NewFeaturedService(),
	}
}

func (h *FeaturedHandler) List(c *gin.Context) {
	city := c.Query("city")

	schools, err := h.svc.ListByCity(c.Request.Context(), city)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(schools))
	for _, s := range schools {
		// Needs is stored as a JSON array; surface it unquoted.
		needs := json.RawMessage(s.Needs)
		if len(needs) == 0 {
			needs = json.RawMessage("[]")
		}
		out = append(out, gin.H{
			"id":              s.ID,
			"city":            s.City,
			"name":            s.Name,
			"location":        s.Location,
			"description":     s.Description,
			"needs":           needs,
			"funding_goal":    s.FundingGoal,
			"current_funding": s.CurrentFunding,
		})
	}

	c.JSON(http.StatusOK, gin.H{"schools": out})
}

func (h *FeaturedHandler) Donate(c *gin.Context) {
	schoolID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid school id"})
		return
	}

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	userID := middleware.UserIDFromContext(c)
	result, err := h.svc.Donate(c.Request.Context(), schoolID, userID, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}

	resp := gin.H{
		"school_id":       result.School.ID,
		"current_funding": result.School.CurrentFunding,
		"funding_goal":    result.School.FundingGoal,
	}
	if userID != nil {
		resp["your_total_given"] = result.UserTotalGiven
	}
	c.JSON(http.StatusOK, resp)
}
