package terminal

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/terminal/flows"
	"employee-tracker/internal/delivery/terminal/prompt/prompttest"
	"employee-tracker/internal/domain"
	"employee-tracker/internal/repository/sqldb"
	"employee-tracker/internal/repository/sqldb/sqldbtest"
)

func newHandler(t *testing.T, db *sql.DB, answers ...string) (*Handler, *prompttest.Script, *bytes.Buffer) {
	t.Helper()
	script := prompttest.New(t, answers...)
	out := &bytes.Buffer{}
	h := &Handler{
		Prompt:      script,
		Out:         out,
		Departments: service.NewDepartmentService(sqldb.NewDepartmentRepo(db)),
		Roles:       service.NewRoleService(sqldb.NewRoleRepo(db)),
		Employees:   service.NewEmployeeService(sqldb.NewEmployeeRepo(db)),
	}
	h.Register()
	return h, script, out
}

func TestMenuListsSevenActionsAndExit(t *testing.T) {
	h, script, _ := newHandler(t, sqldbtest.Open(t), ActionExit)

	require.NoError(t, h.Run(context.Background()))

	var labels []string
	for _, c := range script.Choices[menuQuestion] {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{
		ActionViewDepartments,
		ActionViewRoles,
		ActionViewEmployees,
		flows.ActionAddDepartment,
		flows.ActionAddRole,
		flows.ActionAddEmployee,
		flows.ActionUpdateEmployeeRole,
		ActionExit,
	}, labels)
}

func TestRunScenario(t *testing.T) {
	db := sqldbtest.Open(t)
	h, script, out := newHandler(t, db,
		flows.ActionAddDepartment, "Engineering",
		flows.ActionAddRole, "Engineer", "90000", "Engineering",
		flows.ActionAddEmployee, "Ada", "Lovelace", "Engineer", "None",
		ActionViewEmployees,
		ActionExit,
	)

	require.NoError(t, h.Run(context.Background()))
	assert.Empty(t, script.Remaining())

	views, err := h.Employees.GetEmployeeViews(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Positive(t, views[0].ID)
	assert.Equal(t, domain.EmployeeView{
		ID:         views[0].ID,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Title:      "Engineer",
		Department: "Engineering",
		Salary:     90000,
	}, views[0])

	text := out.String()
	for _, msg := range []string{"Department added!", "Role added!", "Employee added!"} {
		assert.Contains(t, text, msg)
	}
	var adaRow string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "Lovelace") {
			adaRow = line
		}
	}
	for _, cell := range []string{"Ada", "Engineer", "Engineering", "90000"} {
		assert.Contains(t, adaRow, cell)
	}
}

func TestViewsOnEmptyDatabase(t *testing.T) {
	h, _, out := newHandler(t, sqldbtest.Open(t),
		ActionViewDepartments, ActionViewRoles, ActionViewEmployees, ActionExit,
	)

	require.NoError(t, h.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "No departments found.")
	assert.Contains(t, text, "No roles found.")
	assert.Contains(t, text, "No employees found.")
}

func TestViewDepartmentsAfterAdd(t *testing.T) {
	h, _, out := newHandler(t, sqldbtest.Open(t),
		flows.ActionAddDepartment, "Finance",
		ActionViewDepartments,
		ActionExit,
	)

	require.NoError(t, h.Run(context.Background()))

	departments, err := h.Departments.GetAllDepartments(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, 1, strings.Count(out.String(), "Finance"), "one table row")
}

func TestAbortedMenuExits(t *testing.T) {
	h, _, _ := newHandler(t, sqldbtest.Open(t), prompttest.Abort)

	assert.NoError(t, h.Run(context.Background()))
}

func TestQueryErrorStopsLoop(t *testing.T) {
	db := sqldbtest.Open(t)
	h, script, _ := newHandler(t, db, ActionViewRoles, ActionExit)
	require.NoError(t, db.Close())

	err := h.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{ActionExit}, script.Remaining(), "menu is not shown again")
}
