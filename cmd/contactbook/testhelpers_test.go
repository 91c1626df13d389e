package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Contact added.", "Contact added."},
		{"color", "\033[38;5;9mContact not found.\033[0m", "Contact not found."},
		{"cursor moves", "\033[2K\033[1AEnter a command: ", "Enter a command: "},
		{"osc title", "\033]0;contactbook\007Good bye!", "Good bye!"},
		{"bare esc at end", "hello\033", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripANSI(tt.input); got != tt.want {
				t.Errorf("stripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// stripANSI removes ANSI escape sequences from a string.
// Handles CSI (ESC[), OSC (ESC]), and two-char (ESC+letter) sequences.
func stripANSI(s string) string {
	var result strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\033' {
			result.WriteByte(s[i])
			i++
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch s[i] {
		case '[':
			i++
			for i < len(s) && !isLetter(s[i]) {
				i++
			}
			if i < len(s) {
				i++
			}
		case ']':
			i++
			for i < len(s) {
				if s[i] == '\007' {
					i++
					break
				}
				if s[i] == '\033' && i+1 < len(s) && s[i+1] == '\\' {
					i += 2
					break
				}
				i++
			}
		default:
			if isLetter(s[i]) {
				i++
			}
		}
	}
	return result.String()
}

// isLetter reports whether b is an ASCII letter, the CSI final byte in practice.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// findProjectRoot walks up from the working directory to the go.mod.
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}
