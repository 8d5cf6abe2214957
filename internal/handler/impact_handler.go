package handler

import (
	"net/http"

	"EquiLearn/internal/service"

	"github.com/gin-gonic/gin"
)

type ImpactHandler struct {
	svc *service.ImpactService
}

func NewImpactHandler() *ImpactHandler {
	return &ImpactHandler{
		svc: service.NewImpactService(),
	}
}

func (h *ImpactHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
