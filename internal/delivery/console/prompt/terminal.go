package prompt

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"
)

const defaultListSize = 14

// Terminal drives an interactive terminal with arrow-key selection lists.
type Terminal struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Select(label string, items []string) (int, error) {
	size := len(items)
	if size > defaultListSize {
		size = defaultListSize
	}
	sel := promptui.Select{
		Label:  label,
		Items:  items,
		Size:   size,
		Stdin:  t.Stdin,
		Stdout: t.Stdout,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return -1, mapError(err)
	}
	return idx, nil
}

func (t *Terminal) Input(label string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:    label,
		Validate: validate,
		Stdin:    t.Stdin,
		Stdout:   t.Stdout,
	}
	answer, err := p.Run()
	if err != nil {
		return "", mapError(err)
	}
	return answer, nil
}

func mapError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}
