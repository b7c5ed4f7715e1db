// Package cli provides the line-based console layer shared by the game
// runners: prompting helpers that recover locally from bad input, and
// lipgloss-styled rendering of boards and turn narration. Game packages keep
// their logic pure and push all I/O through this package.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console wraps the player-facing input and output streams.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a console over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Printf writes formatted output to the console.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line to the console.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Out exposes the underlying writer for styled rendering.
func (c *Console) Out() io.Writer {
	return c.out
}

// ReadLine reads one trimmed line. Returns io.EOF when input is exhausted.
func (c *Console) ReadLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// WaitEnter blocks until the player presses Enter.
func (c *Console) WaitEnter(prompt string) error {
	c.Printf("%s", prompt)
	_, err := c.ReadLine()
	return err
}

// PromptInt asks for an integer of at least minValue, reprompting on bad
// input. An empty line accepts the default.
func (c *Console) PromptInt(prompt string, def, minValue int) (int, error) {
	for {
		c.Printf("%s [default %d]: ", prompt, def)
		line, err := c.ReadLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		val, err := strconv.Atoi(line)
		if err != nil {
			c.Printf("  Please enter a valid integer.\n")
			continue
		}
		if val < minValue {
			c.Printf("  Please enter an integer >= %d.\n", minValue)
			continue
		}
		return val, nil
	}
}

// PromptString asks for a line of text; an empty line accepts the default.
func (c *Console) PromptString(prompt, def string) (string, error) {
	c.Printf("%s [%s]: ", prompt, def)
	line, err := c.ReadLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// PromptPlayers asks for a comma-separated list of at least two player
// names, reprompting until satisfied. An empty line accepts the default.
func (c *Console) PromptPlayers(defaultCSV string) ([]string, error) {
	for {
		c.Printf("Enter player names (comma-separated) [default %s]: ", defaultCSV)
		line, err := c.ReadLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			line = defaultCSV
		}
		names := SplitNames(line)
		if len(names) < 2 {
			c.Printf("  Please enter at least two players.\n")
			continue
		}
		return names, nil
	}
}

// SplitNames parses a comma-separated list, dropping blank entries.
func SplitNames(csv string) []string {
	parts := strings.Split(csv, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}
