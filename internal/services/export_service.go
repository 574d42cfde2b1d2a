package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"youngeru/internal/models/db_models"
	"youngeru/internal/repositories"
	"youngeru/pkg/utils"
)

const leadsSheet = "Leads"

var leadHeaders = []string{"ID", "Email", "Source", "Age range", "Gender", "Activity level", "Diet pattern", "Goals", "Recommendations", "Captured at"}

type ExportServiceInterface interface {
	// ExportLeads writes every lead as an xlsx workbook.
	ExportLeads(ctx context.Context, w io.Writer) error
}

type ExportService struct {
	leads repositories.LeadRepositoryInterface
}

func NewExportService(leads repositories.LeadRepositoryInterface) ExportServiceInterface {
	return &ExportService{leads: leads}
}

func (e *ExportService) ExportLeads(ctx context.Context, w io.Writer) error {
	leads, err := e.leads.ListAll(ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}

	f, err := BuildLeadsWorkbook(leads)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// BuildLeadsWorkbook lays out one row per lead under a bold header row.
func BuildLeadsWorkbook(leads []db_models.Lead) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(leadsSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetSheetRow(leadsSheet, "A1", &leadHeaders); err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(leadHeaders), 1)
	if err := f.SetCellStyle(leadsSheet, "A1", last, header); err != nil {
		return nil, err
	}

	for i, lead := range leads {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(leadsSheet, cell, leadRow(lead)); err != nil {
			return nil, fmt.Errorf("write lead row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(leadsSheet, "A", "A", 38)
	_ = f.SetColWidth(leadsSheet, "B", "B", 30)
	_ = f.SetColWidth(leadsSheet, "D", "H", 24)
	_ = f.SetColWidth(leadsSheet, "I", "I", 60)
	_ = f.SetColWidth(leadsSheet, "J", "J", 20)
	return f, nil
}

func leadRow(lead db_models.Lead) *[]interface{} {
	row := []interface{}{lead.ID.String(), lead.Email, lead.Source, "", "", "", "", "", "", ""}
	if a := lead.Answers; a != nil {
		row[3], row[4], row[5], row[6] = a.AgeRange, a.Gender, a.ActivityLevel, a.DietPattern
		row[7] = strings.Join(a.Goals.Sorted(), "; ")
	}
	categories := make([]string, 0, len(lead.Recommendations))
	for _, r := range lead.Recommendations {
		categories = append(categories, r.Category)
	}
	row[8] = strings.Join(categories, "; ")
	row[9] = time.Unix(lead.CreatedAt, 0).UTC().Format("2006-01-02 15:04")
	return &row
}
