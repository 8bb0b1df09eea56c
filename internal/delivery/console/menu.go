package console

import (
	"context"
	"errors"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/delivery/console/prompt"
	"employee-tracker/internal/delivery/console/router"

	"go.uber.org/zap"
)

const (
	ActionViewEmployees    = "View All Employees"
	ActionViewRoles        = "View All Roles"
	ActionViewDepartments  = "View All Departments"
	ActionViewByDepartment = "View All Employees By Department"
	ActionViewBudgets      = "View Department Budgets"
	ActionUpdateRole       = "Update Employee Role"
	ActionUpdateManager    = "Update Employee Manager"
	ActionAddEmployee      = "Add Employee"
	ActionAddRole          = "Add Role"
	ActionAddDepartment    = "Add Department"
	ActionRemoveEmployee   = "Remove Employee"
	ActionRemoveRole       = "Remove Role"
	ActionRemoveDepartment = "Remove Department"
	ActionExit             = "Exit"
)

const menuLabel = "Please select an option:"

// Run shows the menu until Exit is chosen or input ends. A failed action is
// reported and the menu comes back; only prompt failures end the loop early.
func (h *Handler) Run(ctx context.Context) error {
	r := router.New(h.Logger)
	h.Register(r)
	items := append(r.Labels(), ActionExit)

	for {
		idx, err := h.Prompt.Select(menuLabel, items)
		if errors.Is(err, prompt.ErrAborted) {
			h.Logger.Info("input closed, leaving menu")
			return nil
		}
		if err != nil {
			return err
		}

		choice := items[idx]
		if choice == ActionExit {
			h.Logger.Info("exit selected")
			return nil
		}

		if _, err := r.Dispatch(ctx, choice); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				h.Logger.Info("input closed during action", zap.String("choice", choice))
				return nil
			}
			if apperror.IsUserFacing(err) {
				h.Logger.Info("menu action rejected", zap.String("choice", choice), zap.Error(err))
				h.Out.Invalid("Error " + err.Error())
				continue
			}
			h.Logger.Error("menu action failed", zap.String("choice", choice), zap.Error(err))
			h.Out.Error("Error " + err.Error())
		}
	}
}
