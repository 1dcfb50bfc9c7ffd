package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fadedpez/highcard/internal/types"
	"golang.org/x/term"
)

// Prompter asks for missing player details on an interactive terminal
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPrompter creates a prompter reading answers from in. Prompts are only
// shown when interactive is true.
func NewPrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// isTerminal reports whether r is a terminal
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Name asks for a non-blank name
func (p *Prompter) Name(label, flag string) (string, error) {
	for {
		answer, err := p.ask(label, flag)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(p.out, "Please enter a name.")
	}
}

// Age asks for a non-negative whole number
func (p *Prompter) Age(label, flag string) (int, error) {
	for {
		answer, err := p.ask(label, flag)
		if err != nil {
			return 0, err
		}
		age, err := strconv.Atoi(answer)
		if err == nil && age >= 0 {
			return age, nil
		}
		fmt.Fprintln(p.out, "Please enter a whole number.")
	}
}

func (p *Prompter) ask(label, flag string) (string, error) {
	if !p.interactive {
		return "", types.MissingArgument(fmt.Sprintf("--%s is required when stdin is not a terminal", flag))
	}

	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", types.WrapError(types.ErrMissingArgument, fmt.Sprintf("no answer for %s", label), err)
	}
	return strings.TrimSpace(line), nil
}
