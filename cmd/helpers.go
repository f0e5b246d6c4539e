package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete this client? [y/N]: ")
func promptConfirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	response = strings.TrimSpace(response)

	return response == "y" || response == "Y" || strings.EqualFold(response, "yes")
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	// Make path absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// printEmptyResult prints a "no results" message with a hint
func printEmptyResult(w io.Writer, hint string) {
	_, _ = fmt.Fprintln(w, "No clients found.")

	if hint != "" {
		_, _ = fmt.Fprintln(w, hint)
	}
}

// centerString centers a string in a field of given width
func centerString(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}

	padding := (width - sw) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-sw-padding, "")
}

// truncateString truncates a string to the specified display width with ellipsis
func truncateString(s string, maxLen int) string {
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}

	return runewidth.Truncate(s, maxLen, "...")
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

// printBoxHeader prints the top border of an info box with a title
func printBoxHeader(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")
	_, _ = fmt.Fprintf(w, "║%s║\n", centerString(truncateString(title, boxWidth-2), boxWidth-2))
	_, _ = fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")
}

// printBoxLine prints a line inside an info box with label and value
func printBoxLine(w io.Writer, label, value string) {
	content := truncateString(fmt.Sprintf("  %s: %s", label, value), boxWidth-2)
	padding := boxWidth - 2 - runewidth.StringWidth(content)

	_, _ = fmt.Fprintf(w, "║%s%*s║\n", content, padding, "")
}

// printBoxFooter prints the bottom border of an info box
func printBoxFooter(w io.Writer) {
	_, _ = fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")
}

// printInfoBox prints a complete info box with title and key-value pairs.
// Keys in order that are missing or empty are skipped.
func printInfoBox(w io.Writer, title string, items map[string]string, order []string) {
	printBoxHeader(w, title)

	for _, key := range order {
		if val, ok := items[key]; ok && val != "" {
			printBoxLine(w, key, val)
		}
	}

	printBoxFooter(w)
}
