package flows

import (
	"context"
	"fmt"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/console/choices"
	"employee-tracker/internal/delivery/console/prompt"
	"employee-tracker/internal/delivery/console/render"
	"employee-tracker/internal/domain"
	"employee-tracker/pkg/validate"
)

// DepartmentFlow asks for a department name and stores it.
type DepartmentFlow struct {
	Prompt      prompt.Prompter
	Departments *service.DepartmentService
	Out         *render.Renderer
}

func (f *DepartmentFlow) Run(ctx context.Context) (domain.Department, error) {
	name, err := f.Prompt.Input("What is the name of your new Department?", validate.Name)
	if err != nil {
		return domain.Department{}, err
	}

	department, err := f.Departments.CreateDepartment(ctx, name)
	if err != nil {
		return domain.Department{}, fmt.Errorf("creating department: %w", err)
	}

	f.Out.Line("")
	f.Out.Success(department.Name + " Department successfully created!")
	f.Out.Line("")
	return department, nil
}

// RoleFlow creates a role. Choosing choices.CreateDepartment runs the
// department flow first and the role is stored under the new department.
// The two inserts are independent; a failed role insert keeps the department.
type RoleFlow struct {
	Prompt        prompt.Prompter
	Departments   *service.DepartmentService
	Roles         *service.RoleService
	NewDepartment *DepartmentFlow
	Out           *render.Renderer
}

func (f *RoleFlow) Run(ctx context.Context) (domain.Role, error) {
	departmentID, err := f.pickDepartment(ctx)
	if err != nil {
		return domain.Role{}, err
	}

	title, err := f.Prompt.Input("What is the name of your new role?", validate.Name)
	if err != nil {
		return domain.Role{}, err
	}
	salaryText, err := f.Prompt.Input("What is the salary of this new role?", validate.Salary)
	if err != nil {
		return domain.Role{}, err
	}
	salary, err := validate.ParseSalary(salaryText)
	if err != nil {
		return domain.Role{}, fmt.Errorf("reading salary: %w", err)
	}

	role, err := f.Roles.CreateRole(ctx, service.CreateRoleInput{
		Title:        title,
		Salary:       salary,
		DepartmentID: departmentID,
	})
	if err != nil {
		return domain.Role{}, fmt.Errorf("creating new role: %w", err)
	}

	f.Out.Success("Role successfully created!")
	return role, nil
}

func (f *RoleFlow) pickDepartment(ctx context.Context) (*int64, error) {
	departments, err := f.Departments.GetAllDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching department data: %w", err)
	}

	list := choices.Departments(departments)
	labels := append(list.Labels(), choices.CreateDepartment)
	idx, err := f.Prompt.Select("Which department is this new role in?", labels)
	if err != nil {
		return nil, err
	}
	// Resolved by position, so a department literally named like the sentinel still works.
	if c, ok := list.At(idx); ok {
		return &c.ID, nil
	}

	department, err := f.NewDepartment.Run(ctx)
	if err != nil {
		return nil, err
	}
	return &department.ID, nil
}
