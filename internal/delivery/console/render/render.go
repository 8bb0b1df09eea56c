// Package render writes banners, tables and status lines to the console.
package render

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const ruleWidth = 84

var (
	rule      = strings.Repeat("=", ruleWidth)
	titlePad  = strings.Repeat(" ", 30)
	ruleColor = color.New(color.FgYellow, color.Bold)
	heading   = color.New(color.FgGreen, color.Bold)
	success   = color.New(color.FgHiGreen)
	failure   = color.New(color.FgHiRed)
	failRule  = color.New(color.FgHiRed, color.Bold)
	okRule    = color.New(color.FgHiGreen, color.Bold)
)

type Renderer struct {
	out io.Writer
}

func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Banner is shown once when the session starts.
func (r *Renderer) Banner(name string) {
	ruleColor.Fprintln(r.out, rule)
	io.WriteString(r.out, "\n")
	heading.Fprintln(r.out, titlePad+strings.ToUpper(name))
	io.WriteString(r.out, "\n")
	ruleColor.Fprintln(r.out, rule)
}

// Table prints a framed listing. An empty listing still prints its title.
func (r *Renderer) Table(title string, headers []string, rows [][]string) {
	ruleColor.Fprintln(r.out, rule)
	io.WriteString(r.out, titlePad)
	heading.Fprintln(r.out, title)
	ruleColor.Fprintln(r.out, rule)

	table := tablewriter.NewWriter(r.out)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	ruleColor.Fprintln(r.out, rule)
}

func (r *Renderer) Success(msg string) {
	success.Fprintln(r.out, msg)
}

// Notice frames a confirmation between rules.
func (r *Renderer) Notice(msg string) {
	okRule.Fprintln(r.out, rule)
	success.Fprintln(r.out, msg)
	okRule.Fprintln(r.out, rule)
}

// Removed reports a deletion.
func (r *Renderer) Removed(msg string) {
	failure.Fprintln(r.out, msg)
}

// Invalid frames a rejected selection between red rules.
func (r *Renderer) Invalid(msg string) {
	failRule.Fprintln(r.out, rule)
	failure.Fprintln(r.out, msg)
	failRule.Fprintln(r.out, rule)
}

func (r *Renderer) Error(msg string) {
	failure.Fprintln(r.out, msg)
}

func (r *Renderer) Line(msg string) {
	io.WriteString(r.out, msg+"\n")
}
