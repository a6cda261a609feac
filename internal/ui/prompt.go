package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"compat-matrix/internal/matrix"
)

// ErrQuit is returned by Choose when the user asks to leave
var ErrQuit = errors.New("quit")

// Menu input shortcuts
const (
	KeyReverse = "r"
	KeyQuit    = "q"
)

// Prompter shows numbered menus on out and reads answers from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Choose lists options and returns the selected one. An answer may be the
// option number or its exact text. When reversible is set, "r" redraws the
// menu in reverse order. "q" or end of input returns ErrQuit.
func (p *Prompter) Choose(title string, options []string, reversible bool) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%s: nothing to choose from", title)
	}

	current := options
	for {
		p.printMenu(title, current, reversible)

		line, err := p.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if err != nil && answer == "" {
			if errors.Is(err, io.EOF) {
				return "", ErrQuit
			}
			return "", err
		}

		switch {
		case strings.EqualFold(answer, KeyQuit):
			return "", ErrQuit
		case reversible && strings.EqualFold(answer, KeyReverse):
			current = matrix.Reverse(current)
			continue
		}

		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(current) {
			return current[n-1], nil
		}
		for _, opt := range current {
			if opt == answer {
				return opt, nil
			}
		}
		fmt.Fprintf(p.out, "Unknown choice %q\n", answer)

		if err != nil {
			return "", ErrQuit
		}
	}
}

// Println writes a line to the prompt output
func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

func (p *Prompter) printMenu(title string, options []string, reversible bool) {
	fmt.Fprintf(p.out, "\n%s\n", title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %2d) %s\n", i+1, opt)
	}
	hint := "number or name, q to quit"
	if reversible {
		hint = "number or name, r to reverse, q to quit"
	}
	fmt.Fprintf(p.out, "Select (%s): ", hint)
}
