// Package console implements the interactive terminal UI.  It is
// the sole caller of Load/SaveAll on the repositories: every menu
// action mutates in memory and saves once the logical change is
// complete.
package console

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

type console struct {
	in *bufio.Reader
}

func newConsole() *console {
	return &console{in: bufio.NewReader(os.Stdin)}
}

// readLine prompts until a non-empty trimmed line is entered.
func (c *console) readLine(prompt string) string {
	for {
		fmt.Print(prompt)
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return ""
		}
		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Println("Please enter a value.")
			continue
		}
		return line
	}
}

// readOptional prompts once and returns the trimmed line, which may
// be empty.
func (c *console) readOptional(prompt string) string {
	fmt.Print(prompt)
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// readInt prompts until a valid integer is entered.
func (c *console) readInt(prompt string) int {
	for {
		s := c.readLine(prompt)
		n, err := strconv.Atoi(s)
		if err == nil {
			return n
		}
		fmt.Println("Please enter a valid integer.")
	}
}

// readPassword reads a line with terminal echo disabled, falling
// back to a plain read when stdin is not a terminal (tests, pipes).
func (c *console) readPassword(prompt string) string {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err == nil {
			return strings.TrimSpace(string(b))
		}
	}
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// confirm asks a y/N question; anything but y counts as no.
func (c *console) confirm(prompt string) bool {
	ans := c.readOptional(prompt + " (y/N): ")
	return ans == "y" || ans == "Y"
}

func (c *console) pause() {
	fmt.Print("Press Enter to continue...")
	c.in.ReadString('\n')
}

func banner(title string) {
	fmt.Println("\n==============================")
	fmt.Println("  " + title)
	fmt.Println("==============================")
}

// formatMoney renders minor units as a decimal amount.
func formatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// parseMoney accepts "8500" or "8499.99" (optionally with a leading
// "$" and thousands separators) and returns minor units.
func parseMoney(s string) (int64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, false
	}
	var cents int64
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		n, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, false
		}
		cents = n
	}
	if units < 0 {
		return units*100 - cents, true
	}
	return units*100 + cents, true
}

// readMoney prompts until a parsable amount is entered.
func (c *console) readMoney(prompt string) int64 {
	for {
		if v, ok := parseMoney(c.readLine(prompt)); ok {
			return v
		}
		fmt.Println("Enter an amount such as 8500 or 8499.99.")
	}
}
