package safety

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// destructiveOperations lists the catalog operations that require an
// explicit confirmation before they run.
var destructiveOperations = map[string]struct{}{
	"system.reboot":   {},
	"system.shutdown": {},
	"array.stop":      {},
	"user.delete":     {},
}

// IsDestructive reports whether the named operation requires confirmation.
func IsDestructive(name string) bool {
	_, ok := destructiveOperations[name]
	return ok
}

// Confirmer asks the user a yes/no question before a destructive operation
// proceeds. When assumeYes is set every prompt is answered affirmatively
// without touching the terminal.
type Confirmer struct {
	in        io.Reader
	out       io.Writer
	assumeYes bool
}

// NewConfirmer returns a Confirmer reading answers from in and writing
// prompts to out.
func NewConfirmer(in io.Reader, out io.Writer, assumeYes bool) *Confirmer {
	return &Confirmer{in: in, out: out, assumeYes: assumeYes}
}

// Confirm prompts with the given description and returns true only for an
// explicit "y" or "yes" answer. EOF or an empty answer declines.
func (c *Confirmer) Confirm(description string) (bool, error) {
	if c.assumeYes {
		return true, nil
	}

	fmt.Fprintf(c.out, "%s. Continue? [y/N]: ", description)

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
