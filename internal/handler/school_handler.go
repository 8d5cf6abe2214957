package handler

import (
	"net/http"

	"EquiLearn/internal/model"
	"EquiLearn/internal/service"

	"github.com/gin-gonic/gin"
)

type SchoolHandler struct {
	svc *service.SchoolService
}

type CreateSchoolReq struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	City        string `json:"city"`
	State       string `json:"state"`
	Description string `json:"description"`
}

func NewSchoolHandler() *SchoolHandler {
	return &SchoolHandler{
		svc: service.NewSchoolService(),
	}
}

// List is the public catalog: verified schools that have at least one
// approved need, each with its approved needs inlined.
func (h *SchoolHandler) List(c *gin.Context) {
	schools, err := h.svc.ListVerified(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(schools))
	for _, vs := range schools {
		out = append(out, gin.H{
			"id":          vs.School.ID,
			"name":        vs.School.Name,
			"location":    vs.School.Location,
			"city":        vs.School.City,
			"state":       vs.School.State,
			"description": vs.School.Description,
			"needs":       needViews(vs.Needs),
		})
	}

	c.JSON(http.StatusOK, gin.H{"schools": out})
}

func (h *SchoolHandler) Create(c *gin.Context) {
	var req CreateSchoolReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	school, err := h.svc.CreateSchool(c.Request.Context(), req.Name, req.Location, req.City, req.State, req.Description)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": school.ID, "msg": "school submitted for verification"})
}

func needViews(needs []model.Need) []gin.H {
	out := make([]gin.H, 0, len(needs))
	for _, n := range needs {
		out = append(out, gin.H{
			"id":                n.ID,
			"title":             n.Title,
			"description":       n.Description,
			"category":          n.Category,
			"urgency":           n.Urgency,
			"total_needed":      n.TotalNeeded,
			"current_donations": n.CurrentDonations,
			"cost_per_item":     n.CostPerItem,
			"total_cost":        n.TotalCost(),
		})
	}
	return out
}
