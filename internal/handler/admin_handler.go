package handler

import (
	"net/http"
	"strconv"

	"EquiLearn/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups the moderation endpoints: the need approval queue and
// school verification. Routes carrying it sit behind the admin guard.
type AdminHandler struct {
	needs   *service.NeedService
	schools *service.SchoolService
}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		needs:   service.NewNeedService(),
		schools: service.NewSchoolService(),
	}
}

func (h *AdminHandler) PendingNeeds(c *gin.Context) {
	needs, err := h.needs.ListPending(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"needs": needs})
}

func (h *AdminHandler) ApproveNeed(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid need id"})
		return
	}

	if err := h.needs.Approve(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "need approved"})
}

func (h *AdminHandler) RejectNeed(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid need id"})
		return
	}

	if err := h.needs.Reject(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "need rejected"})
}

func (h *AdminHandler) ListSchools(c *gin.Context) {
	schools, err := h.schools.AdminListSchools(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(schools))
	for _, s := range schools {
		out = append(out, gin.H{
			"id":          s.School.ID,
			"name":        s.School.Name,
			"city":        s.School.City,
			"state":       s.School.State,
			"verified":    s.School.Verified,
			"needs_count": s.NeedsCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{"schools": out})
}

func (h *AdminHandler) VerifySchool(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid school id"})
		return
	}

	if err := h.schools.VerifySchool(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "school verified"})
}
