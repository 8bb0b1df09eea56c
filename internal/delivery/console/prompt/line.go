package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line reads one answer per line. It serves piped input and terminals that
// cannot be put in raw mode.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// Select accepts the item number or its exact label. A label shared by several
// items resolves to the first of them.
func (l *Line) Select(label string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, errors.New("nothing to select")
	}
	fmt.Fprintf(l.out, "? %s\n", label)
	for i, item := range items {
		fmt.Fprintf(l.out, "  %d) %s\n", i+1, item)
	}
	for {
		fmt.Fprint(l.out, "> ")
		answer, err := l.readLine()
		if err != nil {
			return -1, err
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(items) {
			return n - 1, nil
		}
		for i, item := range items {
			if item == answer {
				return i, nil
			}
		}
		fmt.Fprintf(l.out, ">> Please choose a number between 1 and %d\n", len(items))
	}
}

func (l *Line) Input(label string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(l.out, "? %s ", label)
		answer, err := l.readLine()
		if err != nil {
			return "", err
		}
		if validate != nil {
			if err := validate(answer); err != nil {
				fmt.Fprintf(l.out, ">> %s\n", err)
				continue
			}
		}
		return answer, nil
	}
}

func (l *Line) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
