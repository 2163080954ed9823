package service

import "employee-tracker/internal/domain"

// NoManager is the synthetic entry that leaves manager_id NULL.
var NoManager = domain.Choice{Label: "None", Null: true}

func DepartmentChoices(departments []domain.Department) []domain.Choice {
	choices := make([]domain.Choice, 0, len(departments))
	for _, d := range departments {
		choices = append(choices, domain.Choice{Label: d.Name, ID: d.ID})
	}
	return choices
}

func RoleChoices(roles []domain.Role) []domain.Choice {
	choices := make([]domain.Choice, 0, len(roles))
	for _, r := range roles {
		choices = append(choices, domain.Choice{Label: r.Title, ID: r.ID})
	}
	return choices
}

func EmployeeChoices(employees []domain.Employee) []domain.Choice {
	choices := make([]domain.Choice, 0, len(employees))
	for _, e := range employees {
		choices = append(choices, domain.Choice{Label: e.FullName(), ID: e.ID})
	}
	return choices
}

func ManagerChoices(employees []domain.Employee) []domain.Choice {
	return append(EmployeeChoices(employees), NoManager)
}
