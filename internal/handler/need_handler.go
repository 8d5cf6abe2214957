package handler

import (
	"net/http"

	"EquiLearn/internal/model"
	"EquiLearn/internal/service"

	"github.com/gin-gonic/gin"
)

type NeedHandler struct {
	svc *service.NeedService
}

type CreateNeedReq struct {
	SchoolID    uint64  `json:"school_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Urgency     string  `json:"urgency"`
	TotalNeeded int64   `json:"total_needed"`
	CostPerItem float64 `json:"cost_per_item"`
}

func NewNeedHandler() *NeedHandler {
	return &NeedHandler{
		svc: service.NewNeedService(),
	}
}

// Create submits a need into the pending approval queue.
func (h *NeedHandler) Create(c *gin.Context) {
	var req CreateNeedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	need, err := h.svc.CreateNeed(c.Request.Context(), &model.Need{
		SchoolID:    req.SchoolID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Urgency:     req.Urgency,
		TotalNeeded: req.TotalNeeded,
		CostPerItem: req.CostPerItem,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": need.ID, "status": string(need.Status)})
}
