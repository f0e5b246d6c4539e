package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "lowercase y", input: "y\n", expected: true},
		{name: "uppercase Y", input: "Y\n", expected: true},
		{name: "yes", input: "yes\n", expected: true},
		{name: "no", input: "n\n", expected: false},
		{name: "empty line", input: "\n", expected: false},
		{name: "no newline", input: "y", expected: true},
		{name: "eof", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			result := promptConfirm(strings.NewReader(tt.input), &out, "Sure? [y/N]: ")
			if result != tt.expected {
				t.Errorf("promptConfirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}

			if out.String() != "Sure? [y/N]: " {
				t.Errorf("prompt written as %q", out.String())
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "empty path",
			input:   "",
			wantErr: true,
		},
		{
			name:    "absolute path",
			input:   "/tmp/test",
			wantErr: false,
		},
		{
			name:    "home path",
			input:   "~/test",
			wantErr: false,
		},
		{
			name:    "relative path",
			input:   "test/path",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("expandPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && result == "" {
				t.Errorf("expandPath(%q) returned empty string", tt.input)
			}
		})
	}
}

func TestCenterString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "string shorter than width",
			input:    "test",
			width:    10,
			expected: "   test   ",
		},
		{
			name:     "string equal to width",
			input:    "test",
			width:    4,
			expected: "test",
		},
		{
			name:     "string longer than width",
			input:    "testing",
			width:    4,
			expected: "testing",
		},
		{
			name:     "odd padding",
			input:    "ab",
			width:    5,
			expected: " ab  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := centerString(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("centerString(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "string shorter than max",
			input:    "test",
			maxLen:   10,
			expected: "test",
		},
		{
			name:     "string equal to max",
			input:    "test",
			maxLen:   4,
			expected: "test",
		},
		{
			name:     "string longer than max",
			input:    "testing",
			maxLen:   5,
			expected: "te...",
		},
		{
			name:     "max length 3",
			input:    "testing",
			maxLen:   3,
			expected: "tes",
		},
		{
			name:     "max length 2",
			input:    "testing",
			maxLen:   2,
			expected: "te",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncateString(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestBoxWidth(t *testing.T) {
	if boxWidth != 64 {
		t.Errorf("boxWidth = %d, want 64", boxWidth)
	}
}

func TestTruncateStringWide(t *testing.T) {
	result := truncateString("Jürgen Straße GmbH", 10)
	if runewidth.StringWidth(result) > 10 {
		t.Errorf("truncateString width = %d, want <= 10", runewidth.StringWidth(result))
	}

	if !strings.HasSuffix(result, "...") {
		t.Errorf("truncateString(%q) = %q, want ellipsis", "Jürgen Straße GmbH", result)
	}
}

func TestPrintInfoBox(t *testing.T) {
	t.Run("every line has the box width", func(t *testing.T) {
		var buf bytes.Buffer

		items := map[string]string{
			"Name":    "Jürgen Straße",
			"Company": "A very long company name that certainly exceeds the width of the box",
		}
		printInfoBox(&buf, "Details for Jürgen Straße", items, []string{"Name", "Company"})

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != 6 {
			t.Fatalf("got %d lines, want 6", len(lines))
		}

		for _, line := range lines {
			if w := runewidth.StringWidth(line); w != boxWidth {
				t.Errorf("line %q has width %d, want %d", line, w, boxWidth)
			}
		}
	})

	t.Run("missing and empty keys are skipped", func(t *testing.T) {
		var buf bytes.Buffer

		items := map[string]string{
			"Name":  "test",
			"Empty": "",
		}
		printInfoBox(&buf, "Test Box", items, []string{"Name", "Empty", "Missing"})

		if strings.Contains(buf.String(), "Empty") || strings.Contains(buf.String(), "Missing") {
			t.Errorf("unexpected keys in %q", buf.String())
		}

		if !strings.Contains(buf.String(), "Name: test") {
			t.Errorf("missing Name line in %q", buf.String())
		}
	})
}

func TestPrintEmptyResult(t *testing.T) {
	var buf bytes.Buffer

	printEmptyResult(&buf, "Add one with: clientdir add")

	want := "No clients found.\nAdd one with: clientdir add\n"
	if buf.String() != want {
		t.Errorf("printEmptyResult() = %q, want %q", buf.String(), want)
	}
}
