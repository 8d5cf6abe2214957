package handler

import (
	"net/http"
	"strconv"

	"EquiLearn/internal/middleware"
	"EquiLearn/internal/service"

	"github.com/gin-gonic/gin"
)

type PoolHandler struct {
	svc *service.PoolService
}

func NewPoolHandler() *PoolHandler {
	return &PoolHandler{
		svc: service.NewPoolService(),
	}
}

func (h *PoolHandler) List(c *gin.Context) {
	pools, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(pools))
	for _, p := range pools {
		out = append(out, gin.H{
			"id":             p.ID,
			"name":           p.Name,
			"description":    p.Description,
			"target_amount":  p.TargetAmount,
			"current_amount": p.CurrentAmount,
			"participants":   p.Participants,
			"end_date":       p.EndDate.Format("2006-01-02"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"pools": out})
}

func (h *PoolHandler) Join(c *gin.Context) {
	poolID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid pool id"})
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
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return
	}

	pool, err := h.svc.Join(c.Request.Context(), poolID, *userID, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pool_id":        pool.ID,
		"current_amount": pool.CurrentAmount,
		"participants":   pool.Participants,
		"msg":            "joined pool",
	})
}
