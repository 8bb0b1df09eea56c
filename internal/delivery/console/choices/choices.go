// Package choices builds selection lists whose entries keep the identifier of
// the row they were built from.
package choices

import (
	"fmt"
	"strconv"

	"employee-tracker/internal/delivery/console/prompt"
	"employee-tracker/internal/domain"
)

// CreateDepartment is the extra entry of the department list in the add-role flow.
const CreateDepartment = "Create Department"

type Choice struct {
	Label string
	ID    int64
}

type List []Choice

func (l List) Labels() []string {
	labels := make([]string, len(l))
	for i, c := range l {
		labels[i] = c.Label
	}
	return labels
}

func (l List) At(i int) (Choice, bool) {
	if i < 0 || i >= len(l) {
		return Choice{}, false
	}
	return l[i], true
}

func Employees(employees []domain.Employee) List {
	list := make(List, 0, len(employees))
	for _, e := range employees {
		list = append(list, Choice{Label: e.FullName(), ID: e.ID})
	}
	return list
}

// Roles labels each role by title.
func Roles(roles []domain.Role) List {
	list := make(List, 0, len(roles))
	for _, r := range roles {
		list = append(list, Choice{Label: r.Title, ID: r.ID})
	}
	return list
}

// RoleIDs labels each role by its identifier.
func RoleIDs(roles []domain.Role) List {
	list := make(List, 0, len(roles))
	for _, r := range roles {
		list = append(list, Choice{Label: strconv.FormatInt(r.ID, 10), ID: r.ID})
	}
	return list
}

func Departments(departments []domain.Department) List {
	list := make(List, 0, len(departments))
	for _, d := range departments {
		list = append(list, Choice{Label: d.Name, ID: d.ID})
	}
	return list
}

// Select shows list and returns the chosen entry.
func Select(p prompt.Prompter, label string, list List) (Choice, error) {
	idx, err := p.Select(label, list.Labels())
	if err != nil {
		return Choice{}, err
	}
	c, ok := list.At(idx)
	if !ok {
		return Choice{}, fmt.Errorf("selection %d is out of range", idx)
	}
	return c, nil
}
