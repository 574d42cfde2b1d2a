package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"youngeru/pkg/middleware"
	"youngeru/pkg/utils"
)

// currentUserID reads the user id set by the JWT middleware and writes a
// 401 when it is missing.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context, defaultSize int) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 0, 0, utils.ErrInvalidPage
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultSize)))
	if err != nil {
		return 0, 0, utils.ErrInvalidPageSize
	}
	return page, pageSize, nil
}
