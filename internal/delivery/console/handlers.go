package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/console/choices"
	"employee-tracker/internal/delivery/console/flows"
	"employee-tracker/internal/delivery/console/prompt"
	"employee-tracker/internal/delivery/console/render"
	"employee-tracker/internal/delivery/console/router"
	"employee-tracker/pkg/validate"

	"go.uber.org/zap"
)

type Handler struct {
	Prompt      prompt.Prompter
	Out         *render.Renderer
	Departments *service.DepartmentService
	Roles       *service.RoleService
	Employees   *service.EmployeeService
	Reports     *service.ReportService
	Logger      *zap.Logger
}

// Register binds every menu action except Exit, in menu order.
func (h *Handler) Register(r *router.MenuRouter) {
	r.Register(ActionViewEmployees, h.viewAllEmployees)
	r.Register(ActionViewRoles, h.viewAllRoles)
	r.Register(ActionViewDepartments, h.viewAllDepartments)
	r.Register(ActionViewByDepartment, h.viewEmployeesByDepartment)
	r.Register(ActionViewBudgets, h.viewDepartmentBudgets)
	r.Register(ActionUpdateRole, h.updateEmployeeRole)
	r.Register(ActionUpdateManager, h.updateEmployeeManager)
	r.Register(ActionAddEmployee, h.addEmployee)
	r.Register(ActionAddRole, h.addRole)
	r.Register(ActionAddDepartment, h.addDepartment)
	r.Register(ActionRemoveEmployee, h.removeEmployee)
	r.Register(ActionRemoveRole, h.removeRole)
	r.Register(ActionRemoveDepartment, h.removeDepartment)
}

func (h *Handler) departmentFlow() *flows.DepartmentFlow {
	return &flows.DepartmentFlow{Prompt: h.Prompt, Departments: h.Departments, Out: h.Out}
}

func (h *Handler) roleFlow() *flows.RoleFlow {
	return &flows.RoleFlow{
		Prompt:        h.Prompt,
		Departments:   h.Departments,
		Roles:         h.Roles,
		NewDepartment: h.departmentFlow(),
		Out:           h.Out,
	}
}

// ---- view ----

func (h *Handler) viewAllEmployees(ctx context.Context) error {
	details, err := h.Reports.EmployeeDetails(ctx)
	if err != nil {
		return fmt.Errorf("fetching employees: %w", err)
	}
	rows := make([][]string, 0, len(details))
	for _, d := range details {
		rows = append(rows, []string{
			strconv.FormatInt(d.ID, 10), d.FirstName, d.LastName, d.Title, d.Department, formatMoney(d.Salary),
		})
	}
	h.Out.Table("Current Employees:",
		[]string{"Employee ID", "First Name", "Last Name", "Role", "Department", "Salary"}, rows)
	return nil
}

func (h *Handler) viewAllRoles(ctx context.Context) error {
	details, err := h.Reports.RoleDetails(ctx)
	if err != nil {
		return fmt.Errorf("fetching roles: %w", err)
	}
	rows := make([][]string, 0, len(details))
	for _, d := range details {
		rows = append(rows, []string{strconv.FormatInt(d.ID, 10), d.Title, d.Department})
	}
	h.Out.Table("Current Employee Roles:", []string{"Role ID", "Title", "Department"}, rows)
	return nil
}

func (h *Handler) viewAllDepartments(ctx context.Context) error {
	departments, err := h.Departments.GetAllDepartments(ctx)
	if err != nil {
		return fmt.Errorf("fetching departments: %w", err)
	}
	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{strconv.FormatInt(d.ID, 10), d.Name})
	}
	h.Out.Table("All Departments:", []string{"ID", "Department"}, rows)
	return nil
}

func (h *Handler) viewEmployeesByDepartment(ctx context.Context) error {
	listing, err := h.Reports.EmployeesByDepartment(ctx)
	if err != nil {
		return fmt.Errorf("fetching employees by department: %w", err)
	}
	rows := make([][]string, 0, len(listing))
	for _, e := range listing {
		department := e.Department
		if department == "" {
			department = "null"
		}
		rows = append(rows, []string{e.FirstName, e.LastName, department})
	}
	h.Out.Table("Employees by Department:", []string{"First Name", "Last Name", "Department"}, rows)
	return nil
}

func (h *Handler) viewDepartmentBudgets(ctx context.Context) error {
	budgets, err := h.Reports.DepartmentBudgets(ctx)
	if err != nil {
		return fmt.Errorf("fetching department budgets: %w", err)
	}
	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, []string{strconv.FormatInt(b.ID, 10), b.Department, formatMoney(b.Budget)})
	}
	h.Out.Table("Budget By Department:", []string{"ID", "Department", "Budget"}, rows)
	return nil
}

// ---- update ----

func (h *Handler) updateEmployeeRole(ctx context.Context) error {
	employees, err := h.Employees.GetAllEmployees(ctx)
	if err != nil {
		return fmt.Errorf("fetching employee and role data: %w", err)
	}
	roles, err := h.Roles.GetAllRoles(ctx)
	if err != nil {
		return fmt.Errorf("fetching employee and role data: %w", err)
	}
	if len(employees) == 0 {
		h.Out.Error("No employees found.")
		return nil
	}
	if len(roles) == 0 {
		h.Out.Error("No roles found.")
		return nil
	}

	employee, err := choices.Select(h.Prompt, "Which employee has a new role?", choices.Employees(employees))
	if err != nil {
		return err
	}
	role, err := choices.Select(h.Prompt, "What is their new role?", choices.RoleIDs(roles))
	if err != nil {
		return err
	}

	if err := h.Employees.UpdateEmployeeRole(ctx, employee.ID, role.ID); err != nil {
		return fmt.Errorf("updating employee role: %w", err)
	}
	h.Out.Notice("Employee Role Updated")
	return nil
}

func (h *Handler) updateEmployeeManager(ctx context.Context) error {
	employees, err := h.Employees.GetAllEmployees(ctx)
	if err != nil {
		return fmt.Errorf("fetching employee data: %w", err)
	}
	if len(employees) == 0 {
		h.Out.Error("No employees found.")
		return nil
	}

	list := choices.Employees(employees)
	employee, err := choices.Select(h.Prompt, "Which employee has a new manager?", list)
	if err != nil {
		return err
	}
	manager, err := choices.Select(h.Prompt, "Who is their manager?", list)
	if err != nil {
		return err
	}

	err = h.Employees.UpdateEmployeeManager(ctx, employee.ID, manager.ID)
	if errors.Is(err, service.ErrSelfManager) {
		h.Out.Invalid("Invalid Manager Selection: " + err.Error())
		return nil
	}
	if err != nil {
		return fmt.Errorf("updating employee manager: %w", err)
	}
	h.Out.Notice("Employee Manager Updated")
	return nil
}

// ---- add ----

func (h *Handler) addEmployee(ctx context.Context) error {
	firstName, err := h.Prompt.Input("What is the employee's first name?", validate.Name)
	if err != nil {
		return err
	}
	lastName, err := h.Prompt.Input("What is the employee's last name?", validate.Name)
	if err != nil {
		return err
	}
	roleText, err := h.Prompt.Input("What is the employee's role ID?", validate.Number)
	if err != nil {
		return err
	}
	managerText, err := h.Prompt.Input("What is the employee's manager ID? (blank for none)", validate.OptionalNumber)
	if err != nil {
		return err
	}

	roleID, err := validate.ParseID(roleText)
	if err != nil {
		return fmt.Errorf("reading role id: %w", err)
	}
	managerID, err := validate.ParseOptionalID(managerText)
	if err != nil {
		return fmt.Errorf("reading manager id: %w", err)
	}

	_, err = h.Employees.CreateEmployee(ctx, service.CreateEmployeeInput{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    roleID,
		ManagerID: managerID,
	})
	if err != nil {
		return fmt.Errorf("adding employee: %w", err)
	}

	h.Out.Success("Employee added successfully!")
	h.Out.Line("")
	return h.viewAllEmployees(ctx)
}

func (h *Handler) addRole(ctx context.Context) error {
	if _, err := h.roleFlow().Run(ctx); err != nil {
		return err
	}
	return h.viewAllRoles(ctx)
}

func (h *Handler) addDepartment(ctx context.Context) error {
	if _, err := h.departmentFlow().Run(ctx); err != nil {
		return err
	}
	return h.viewAllDepartments(ctx)
}

// ---- remove ----

func (h *Handler) removeEmployee(ctx context.Context) error {
	employees, err := h.Employees.GetAllEmployees(ctx)
	if err != nil {
		return fmt.Errorf("fetching employee data: %w", err)
	}
	if len(employees) == 0 {
		h.Out.Error("No employees found.")
		return nil
	}

	employee, err := choices.Select(h.Prompt, "Which employee would you like to remove?", choices.Employees(employees))
	if err != nil {
		return err
	}
	if err := h.Employees.DeleteEmployee(ctx, employee.ID); err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	h.Out.Removed("Employee Successfully Removed")
	return h.viewAllEmployees(ctx)
}

func (h *Handler) removeRole(ctx context.Context) error {
	roles, err := h.Roles.GetAllRoles(ctx)
	if err != nil {
		return fmt.Errorf("fetching role data: %w", err)
	}
	if len(roles) == 0 {
		h.Out.Error("No roles found.")
		return nil
	}

	role, err := choices.Select(h.Prompt, "Which role would you like to remove?", choices.Roles(roles))
	if err != nil {
		return err
	}
	if err := h.Roles.DeleteRole(ctx, role.ID); err != nil {
		return fmt.Errorf("deleting role: %w", err)
	}

	h.Out.Removed("Role Successfully Removed")
	return h.viewAllRoles(ctx)
}

func (h *Handler) removeDepartment(ctx context.Context) error {
	departments, err := h.Departments.GetAllDepartments(ctx)
	if err != nil {
		return fmt.Errorf("fetching department data: %w", err)
	}
	if len(departments) == 0 {
		h.Out.Error("No departments found.")
		return nil
	}

	department, err := choices.Select(h.Prompt, "Which department would you like to remove?", choices.Departments(departments))
	if err != nil {
		return err
	}
	if err := h.Departments.DeleteDepartment(ctx, department.ID); err != nil {
		return fmt.Errorf("deleting department: %w", err)
	}

	h.Out.Removed("Department Successfully Removed")
	return h.viewAllDepartments(ctx)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
