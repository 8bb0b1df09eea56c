// Package export writes the current listings to an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"employee-tracker/internal/app/service"

	"github.com/xuri/excelize/v2"
)

const (
	EmployeesSheet   = "Employees"
	RolesSheet       = "Roles"
	DepartmentsSheet = "Departments"
	BudgetsSheet     = "Budgets"
)

var (
	EmployeesHeader   = []string{"Employee ID", "First Name", "Last Name", "Role", "Department", "Salary"}
	RolesHeader       = []string{"Role ID", "Title", "Department"}
	DepartmentsHeader = []string{"ID", "Department"}
	BudgetsHeader     = []string{"ID", "Department", "Budget"}
)

type sheet struct {
	name   string
	header []string
	widths []float64
	rows   [][]any
}

func sheets(snap service.Snapshot) []sheet {
	employees := make([][]any, 0, len(snap.Employees))
	for _, e := range snap.Employees {
		employees = append(employees, []any{e.ID, e.FirstName, e.LastName, e.Title, e.Department, e.Salary})
	}
	roles := make([][]any, 0, len(snap.Roles))
	for _, r := range snap.Roles {
		roles = append(roles, []any{r.ID, r.Title, r.Department})
	}
	departments := make([][]any, 0, len(snap.Departments))
	for _, d := range snap.Departments {
		departments = append(departments, []any{d.ID, d.Name})
	}
	budgets := make([][]any, 0, len(snap.Budgets))
	for _, b := range snap.Budgets {
		budgets = append(budgets, []any{b.ID, b.Department, b.Budget})
	}

	return []sheet{
		{EmployeesSheet, EmployeesHeader, []float64{12, 18, 18, 22, 18, 14}, employees},
		{RolesSheet, RolesHeader, []float64{10, 22, 18}, roles},
		{DepartmentsSheet, DepartmentsHeader, []float64{8, 22}, departments},
		{BudgetsSheet, BudgetsHeader, []float64{8, 22, 14}, budgets},
	}
}

// Write renders snap as a workbook with one sheet per listing.
func Write(w io.Writer, snap service.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, s := range sheets(snap) {
		// The default sheet becomes the first listing and stays active.
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return fmt.Errorf("failed to rename default sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return fmt.Errorf("sheet %s: %w", s.name, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	for col, header := range s.header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(s.name, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(s.name, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, width := range s.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(s.name, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("failed to set row %d: %w", i+2, err)
		}
	}

	return f.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
