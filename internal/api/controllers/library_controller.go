package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youngeru/internal/models/request_models"
	"youngeru/internal/services"
	"youngeru/pkg/utils"
)

type LibraryController struct {
	libraryService services.LibraryServiceInterface
}

func NewLibraryController(libraryService services.LibraryServiceInterface) *LibraryController {
	return &LibraryController{libraryService: libraryService}
}

// ListItems godoc
// @Summary Browse the supplement library
// @Tags Library
// @Produce json
// @Param search query string false "Matches title, summary or tags"
// @Param filters query string false "Comma separated, e.g. Energy,Evidence A"
// @Success 200 {object} utils.APIResponse
// @Router /library [get]
func (l *LibraryController) ListItems(c *gin.Context) {
	var query request_models.LibraryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query")
		return
	}

	items, err := l.libraryService.ListItems(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "")
}

func (l *LibraryController) GetItem(c *gin.Context) {
	item, err := l.libraryService.GetItem(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "")
}

func (l *LibraryController) SimilarItems(c *gin.Context) {
	items, err := l.libraryService.SimilarItems(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "")
}
