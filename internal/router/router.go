package router

import (
	"github.com/OblivionLi/salaries-management-system/internal/config"
	"github.com/OblivionLi/salaries-management-system/internal/handler"
	"github.com/OblivionLi/salaries-management-system/internal/middleware"
	"github.com/OblivionLi/salaries-management-system/internal/repository"
	"github.com/OblivionLi/salaries-management-system/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin engine and mounts the salary API.
func SetupRouter(cfg *config.Config, svc *service.SalaryService, repo repository.Repository) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	api := r.Group("/api")
	v1 := api.Group("/v1")

	salaryHandler := handler.NewSalaryHandler(svc)
	salaries := v1.Group("/salaries")
	salaries.GET("/", salaryHandler.GetSalaries)
	salaries.POST("/add", salaryHandler.AddSalary)
	salaries.PATCH("/edit/:id", salaryHandler.EditSalary)
	salaries.DELETE("/delete/:id", salaryHandler.DeleteSalary)

	exportHandler := handler.NewExportHandler(repo)
	salaries.GET("/export/csv", exportHandler.ExportCSV)
	salaries.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
