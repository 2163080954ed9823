package flows

import (
	"context"

	"go.uber.org/zap"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/terminal/router"
	"employee-tracker/internal/domain"
)

const (
	ActionAddRole = "Add a Role"

	msgNoDepartments = "No departments available. Add a department first."
)

func RegisterRoles(r *router.Router, ui UI, roles *service.RoleService, departments *service.DepartmentService) {
	r.Register(ActionAddRole, func(ctx context.Context) error {
		choices, err := departments.DepartmentChoices(ctx)
		if err != nil {
			return err
		}
		if len(choices) == 0 {
			ui.Notice(msgNoDepartments)
			return nil
		}

		title, err := ui.Prompt.Input("Enter the name of the role:")
		if err != nil {
			return ui.cancelled(err)
		}
		salary, err := ui.Prompt.Input("Enter the salary for the role:")
		if err != nil {
			return ui.cancelled(err)
		}
		department, err := ui.Prompt.Select("Select the department for the role:", choices)
		if err != nil {
			return ui.cancelled(err)
		}

		id, err := roles.AddRole(ctx, domain.NewRole{
			Title:        title,
			Salary:       salary,
			DepartmentID: department.ID,
		})
		if err != nil {
			return err
		}
		ui.Log.Info("role added",
			zap.Int64("id", id),
			zap.String("title", title),
			zap.Int64("department_id", department.ID),
		)
		ui.Success("Role added!")
		return nil
	})
}
