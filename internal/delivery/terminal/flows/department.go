package flows

import (
	"context"

	"go.uber.org/zap"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/terminal/router"
)

const ActionAddDepartment = "Add a Department"

func RegisterDepartments(r *router.Router, ui UI, departments *service.DepartmentService) {
	r.Register(ActionAddDepartment, func(ctx context.Context) error {
		name, err := ui.Prompt.Input("Enter the name of the department:")
		if err != nil {
			return ui.cancelled(err)
		}

		id, err := departments.AddDepartment(ctx, name)
		if err != nil {
			return err
		}
		ui.Log.Info("department added", zap.Int64("id", id), zap.String("name", name))
		ui.Success("Department added!")
		return nil
	})
}
