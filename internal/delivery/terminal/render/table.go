// Package render formats query results and status lines for the terminal.
package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"employee-tracker/internal/domain"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
)

// Table renders rows under headers with a plain box border.
func Table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

func Departments(departments []domain.Department) string {
	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{formatID(d.ID), d.Name})
	}
	return Table([]string{"id", "name"}, rows)
}

func Roles(roles []domain.RoleView) string {
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{formatID(r.ID), r.Title, r.Department, FormatSalary(r.Salary)})
	}
	return Table([]string{"id", "title", "department", "salary"}, rows)
}

func Employees(employees []domain.EmployeeView) string {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			formatID(e.ID), e.FirstName, e.LastName, e.Title, e.Department, FormatSalary(e.Salary), e.Manager,
		})
	}
	return Table([]string{"id", "first_name", "last_name", "title", "department", "salary", "manager"}, rows)
}

// FormatSalary prints the shortest exact form: 90000, 55000.5.
func FormatSalary(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func Success(msg string) string {
	return successStyle.Render(msg)
}

func Notice(msg string) string {
	return noticeStyle.Render(msg)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
