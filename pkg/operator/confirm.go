package operator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalConfirmer prompts on out and reads the answer from in. Only an
// explicit yes confirms; anything else, including EOF, declines.
type TerminalConfirmer struct {
	in  io.Reader
	out io.Writer

	// interactive reports whether in is attached to a terminal.
	interactive func() bool
}

// NewTerminalConfirmer creates a confirmer over in and out. When in is an
// *os.File that is not a terminal the prompt is declined without reading.
func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	interactive := func() bool { return true }
	if f, ok := in.(*os.File); ok {
		interactive = func() bool { return term.IsTerminal(int(f.Fd())) }
	}
	return &TerminalConfirmer{in: in, out: out, interactive: interactive}
}

func (c *TerminalConfirmer) Confirm(ctx context.Context, n int) (bool, error) {
	if !c.interactive() {
		fmt.Fprintln(c.out, "stdin is not a terminal; pass --yes to send without confirmation")
		return false, nil
	}

	fmt.Fprintf(c.out, "%d emails will be sent. Continue? [y/N] ", n)

	answer := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(c.in).ReadString('\n')
		answer <- line
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return false, ctx.Err()
	case line := <-answer:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "j", "ja":
			return true, nil
		}
		return false, nil
	}
}

// AutoConfirmer accepts every batch. It backs the --yes flag.
type AutoConfirmer struct {
	out io.Writer
}

// NewAutoConfirmer creates a confirmer that notes the batch size on out,
// which may be nil.
func NewAutoConfirmer(out io.Writer) *AutoConfirmer {
	return &AutoConfirmer{out: out}
}

func (c *AutoConfirmer) Confirm(_ context.Context, n int) (bool, error) {
	if c.out != nil {
		fmt.Fprintf(c.out, "%d emails will be sent (confirmed by --yes)\n", n)
	}
	return true, nil
}
