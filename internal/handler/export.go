package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/OblivionLi/salaries-management-system/internal/models"
	"github.com/OblivionLi/salaries-management-system/internal/repository"
	"github.com/OblivionLi/salaries-management-system/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler renders salary records as downloadable reports. Exports read
// the store directly; they are not part of the cached list path.
type ExportHandler struct {
	Repo repository.Repository
}

func NewExportHandler(repo repository.Repository) *ExportHandler {
	return &ExportHandler{Repo: repo}
}

func formatSalaryDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format("2006-01-02")
}

// ExportCSV exports all salary records as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	salaries, err := h.Repo.FindAll(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error retrieving salaries")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"salaries_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Employee", "Salary", "Date"})
	for _, s := range salaries {
		writer.Write([]string{
			strconv.FormatInt(s.ID, 10),
			s.Employee,
			strconv.FormatFloat(s.Salary, 'f', 2, 64),
			formatSalaryDate(s.SalaryDate),
		})
	}
}

// ExportXLSX exports all salary records as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	salaries, err := h.Repo.FindAll(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error retrieving salaries")
		return
	}

	f := excelize.NewFile()
	sheetName := "Salaries"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error creating worksheet")
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Employee", "Salary", "Date"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	writeRow := func(row int, s *models.Salary) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), s.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), s.Employee)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), s.Salary)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), formatSalaryDate(s.SalaryDate))
	}
	for i := range salaries {
		writeRow(i+2, &salaries[i])
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 25)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"salaries_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error writing workbook")
	}
}
