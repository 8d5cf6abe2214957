package handler

import (
	"EquiLearn/internal/pkg"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto HTTP statuses through the sentinel taxonomy.
func fail(c *gin.Context, err error) {
	c.JSON(pkg.HTTPStatus(err), gin.H{"msg": err.Error()})
}
