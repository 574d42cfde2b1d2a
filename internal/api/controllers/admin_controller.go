package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"youngeru/internal/services"
	"youngeru/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminController struct {
	exportService services.ExportServiceInterface
}

func NewAdminController(exportService services.ExportServiceInterface) *AdminController {
	return &AdminController{exportService: exportService}
}

// ExportLeads godoc
// @Summary Download captured leads
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Router /admin/leads/export [get]
func (a *AdminController) ExportLeads(c *gin.Context) {
	var buf bytes.Buffer
	if err := a.exportService.ExportLeads(c.Request.Context(), &buf); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	name := fmt.Sprintf("leads_%s.xlsx", time.Now().UTC().Format("2006-01-02_15-04-05"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
