package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompt asks yes/no questions on a terminal.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Confirm prints question and reads one answer line. Only "y" or "yes"
// count as yes; end of input counts as no.
func (p *Prompt) Confirm(_ context.Context, question string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "%s [y/N] ", question); err != nil {
		return false, err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
