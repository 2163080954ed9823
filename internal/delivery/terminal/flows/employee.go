package flows

import (
	"context"

	"go.uber.org/zap"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/terminal/router"
	"employee-tracker/internal/domain"
)

const (
	ActionAddEmployee        = "Add an Employee"
	ActionUpdateEmployeeRole = "Update Employee Role"

	msgNoRoles     = "No roles available. Add a role first."
	msgNoEmployees = "No employees available."
)

func RegisterEmployees(r *router.Router, ui UI, employees *service.EmployeeService, roles *service.RoleService) {
	r.Register(ActionAddEmployee, func(ctx context.Context) error {
		return addEmployee(ctx, ui, employees, roles)
	})
	r.Register(ActionUpdateEmployeeRole, func(ctx context.Context) error {
		return updateEmployeeRole(ctx, ui, employees, roles)
	})
}

func addEmployee(ctx context.Context, ui UI, employees *service.EmployeeService, roles *service.RoleService) error {
	roleChoices, err := roles.RoleChoices(ctx)
	if err != nil {
		return err
	}
	managerChoices, err := employees.ManagerChoices(ctx)
	if err != nil {
		return err
	}
	if len(roleChoices) == 0 {
		ui.Notice(msgNoRoles)
		return nil
	}

	firstName, err := ui.Prompt.Input("Enter the employee's first name:")
	if err != nil {
		return ui.cancelled(err)
	}
	lastName, err := ui.Prompt.Input("Enter the employee's last name:")
	if err != nil {
		return ui.cancelled(err)
	}
	role, err := ui.Prompt.Select("Select the employee's role:", roleChoices)
	if err != nil {
		return ui.cancelled(err)
	}
	manager, err := ui.Prompt.Select("Select the employee's manager:", managerChoices)
	if err != nil {
		return ui.cancelled(err)
	}

	id, err := employees.AddEmployee(ctx, domain.NewEmployee{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    role.ID,
		ManagerID: manager.NullableID(),
	})
	if err != nil {
		return err
	}
	ui.Log.Info("employee added",
		zap.Int64("id", id),
		zap.Int64("role_id", role.ID),
		zap.Int64p("manager_id", manager.NullableID()),
	)
	ui.Success("Employee added!")
	return nil
}

func updateEmployeeRole(ctx context.Context, ui UI, employees *service.EmployeeService, roles *service.RoleService) error {
	employeeChoices, err := employees.EmployeeChoices(ctx)
	if err != nil {
		return err
	}
	roleChoices, err := roles.RoleChoices(ctx)
	if err != nil {
		return err
	}
	if len(employeeChoices) == 0 {
		ui.Notice(msgNoEmployees)
		return nil
	}
	if len(roleChoices) == 0 {
		ui.Notice(msgNoRoles)
		return nil
	}

	employee, err := ui.Prompt.Select("Select the employee to update:", employeeChoices)
	if err != nil {
		return ui.cancelled(err)
	}
	role, err := ui.Prompt.Select("Select the new role:", roleChoices)
	if err != nil {
		return ui.cancelled(err)
	}

	if err := employees.UpdateEmployeeRole(ctx, employee.ID, role.ID); err != nil {
		return err
	}
	ui.Log.Info("employee role updated", zap.Int64("id", employee.ID), zap.Int64("role_id", role.ID))
	ui.Success("Employee role updated!")
	return nil
}
