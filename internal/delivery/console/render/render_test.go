package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestTable(t *testing.T) {
	var out bytes.Buffer
	r := New(&out)

	r.Table("Current Employees:",
		[]string{"Employee ID", "First Name", "Last Name"},
		[][]string{{"1", "John", "Doe"}, {"2", "Mike", "Chan"}},
	)

	text := out.String()
	assert.Contains(t, text, "Current Employees:")
	// headers keep their case
	assert.Contains(t, text, "Employee ID")
	assert.Contains(t, text, "Mike")
	assert.Equal(t, 3, strings.Count(text, strings.Repeat("=", ruleWidth)))
}

func TestTable_Empty(t *testing.T) {
	var out bytes.Buffer
	New(&out).Table("All Departments:", []string{"ID", "Department"}, nil)

	assert.Contains(t, out.String(), "All Departments:")
	assert.Contains(t, out.String(), "Department")
}

func TestMessages(t *testing.T) {
	var out bytes.Buffer
	r := New(&out)

	r.Banner("Employee Tracker")
	r.Success("Role successfully created!")
	r.Notice("Employee Role Updated")
	r.Invalid("Invalid Manager Selection: Employee cannot be their own manager")
	r.Removed("Role Successfully Removed")
	r.Error("Error fetching roles: boom")
	r.Line("")

	text := out.String()
	assert.Contains(t, text, "EMPLOYEE TRACKER")
	assert.Contains(t, text, "Role successfully created!\n")
	assert.Contains(t, text, "Employee Role Updated\n")
	assert.Contains(t, text, "Invalid Manager Selection")
	assert.Contains(t, text, "Role Successfully Removed\n")
	assert.Contains(t, text, "Error fetching roles: boom\n")
}
