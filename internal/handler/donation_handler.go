package handler

import (
	"net/http"

	"EquiLearn/internal/middleware"
	"EquiLearn/internal/pkg"
	"EquiLearn/internal/service"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	svc *service.DonationService
}

type DonateReq struct {
	NeedID       *uint64 `json:"need_id"`
	Amount       float64 `json:"amount"`
	DonationType string  `json:"donation_type"`
	Message      string  `json:"message"`
	DonorName    string  `json:"donor_name"`
}

func NewDonationHandler(users *service.UserService, smtp pkg.SMTPConfig) *DonationHandler {
	return &DonationHandler{
		svc: service.NewDonationService(users, smtp),
	}
}

// Donate accepts both authenticated and anonymous callers; the optional-auth
// middleware decides which one this request is.
func (h *DonationHandler) Donate(c *gin.Context) {
	var req DonateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	userID := middleware.UserIDFromContext(c)
	result, err := h.svc.Donate(c.Request.Context(), userID, service.DonateRequest{
		NeedID:       req.NeedID,
		Amount:       req.Amount,
		DonationType: req.DonationType,
		Message:      req.Message,
		DonorName:    req.DonorName,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           result.Donation.ID,
		"amount":       result.Donation.Amount,
		"items_funded": result.ItemsFunded,
		"msg":          "thank you for your donation",
	})
}

func (h *DonationHandler) History(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return
	}

	donations, err := h.svc.History(c.Request.Context(), *userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": donations})
}
