package orchestrator

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks for whatever part of a Request was not given on the
// command line. Empty or invalid answers keep the defaults.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) readLine() string {
	s, _ := p.in.ReadString('\n')
	return strings.TrimSpace(s)
}

func (p *Prompter) Duration() int {
	fmt.Fprint(p.out, "Enter recording duration (seconds): ")
	n, err := strconv.Atoi(p.readLine())
	if err != nil || n <= 0 {
		return DefaultDuration
	}
	return n
}

func (p *Prompter) Target() string {
	fmt.Fprintf(p.out, "Translate to (default: %s): ", DefaultTarget)
	if s := p.readLine(); s != "" {
		return s
	}
	return DefaultTarget
}
