package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         healthcheck
// @Produce      plain
// @Success      200  {string}  string  "."
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, ".")
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %v (%v)", name, raw)
	}

	return uint(id), nil
}
