// Package terminal runs the interactive menu: it presents the actions,
// dispatches the chosen one and comes back until the user exits.
package terminal

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/terminal/flows"
	"employee-tracker/internal/delivery/terminal/prompt"
	"employee-tracker/internal/delivery/terminal/render"
	"employee-tracker/internal/delivery/terminal/router"
	"employee-tracker/internal/domain"
)

const (
	ActionViewDepartments = "View All Departments"
	ActionViewRoles       = "View All Roles"
	ActionViewEmployees   = "View All Employees"
	ActionExit            = "Exit"

	menuQuestion = "What would you like to do?"
)

type Handler struct {
	Prompt      prompt.Prompter
	Out         io.Writer
	Log         *zap.Logger
	Departments *service.DepartmentService
	Roles       *service.RoleService
	Employees   *service.EmployeeService

	ui     flows.UI
	router *router.Router
}

// Register wires the view handlers and the add/update flows, in menu order.
func (h *Handler) Register() {
	if h.Log == nil {
		h.Log = zap.NewNop()
	}
	h.ui = flows.UI{Prompt: h.Prompt, Out: h.Out, Log: h.Log}
	h.router = router.New(h.Log)

	h.router.Register(ActionViewDepartments, h.handleDepartments)
	h.router.Register(ActionViewRoles, h.handleRoles)
	h.router.Register(ActionViewEmployees, h.handleEmployees)
	flows.RegisterDepartments(h.router, h.ui, h.Departments)
	flows.RegisterRoles(h.router, h.ui, h.Roles, h.Departments)
	flows.RegisterEmployees(h.router, h.ui, h.Employees, h.Roles)
}

// Run loops on the menu until Exit. A failed query ends the loop with its
// error; nothing is retried.
func (h *Handler) Run(ctx context.Context) error {
	if h.router == nil {
		h.Register()
	}
	menu := h.menu()

	for {
		choice, err := h.Prompt.Select(menuQuestion, menu)
		if errors.Is(err, prompt.ErrAborted) {
			h.Log.Info("menu aborted, exiting")
			return nil
		}
		if err != nil {
			return err
		}
		if choice.Label == ActionExit {
			h.Log.Info("exit selected")
			return nil
		}
		if _, err := h.router.Dispatch(ctx, choice.Label); err != nil {
			return err
		}
	}
}

func (h *Handler) menu() []domain.Choice {
	actions := append(h.router.Actions(), ActionExit)
	choices := make([]domain.Choice, len(actions))
	for i, a := range actions {
		choices[i] = domain.Choice{Label: a, ID: int64(i + 1)}
	}
	return choices
}

func (h *Handler) handleDepartments(ctx context.Context) error {
	departments, err := h.Departments.GetAllDepartments(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		h.ui.Notice("No departments found.")
		return nil
	}
	h.ui.Print(render.Departments(departments))
	return nil
}

func (h *Handler) handleRoles(ctx context.Context) error {
	roles, err := h.Roles.GetRoleViews(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		h.ui.Notice("No roles found.")
		return nil
	}
	h.ui.Print(render.Roles(roles))
	return nil
}

func (h *Handler) handleEmployees(ctx context.Context) error {
	employees, err := h.Employees.GetEmployeeViews(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		h.ui.Notice("No employees found.")
		return nil
	}
	h.ui.Print(render.Employees(employees))
	return nil
}
