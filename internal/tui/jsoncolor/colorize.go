// Package jsoncolor renders indented JSON with theme colors for terminal
// output.
package jsoncolor

import (
	"bytes"
	"encoding/json"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/roster/internal/core/styles"
)

// Scheme maps JSON token classes to styles.
type Scheme struct {
	Key         lipgloss.Style
	String      lipgloss.Style
	Number      lipgloss.Style
	Bool        lipgloss.Style
	Null        lipgloss.Style
	Punctuation lipgloss.Style
}

// DefaultScheme builds a scheme from the active theme.
func DefaultScheme() Scheme {
	return Scheme{
		Key:         styles.TextPrimaryStyle,
		String:      styles.SuccessStyle,
		Number:      styles.WarningStyle,
		Bool:        styles.TextSecondaryStyle,
		Null:        styles.ErrorStyle,
		Punctuation: styles.TextMutedStyle,
	}
}

// Colorize indents data and colors it with the active theme. Invalid JSON
// is returned unchanged.
func Colorize(data []byte) string {
	return DefaultScheme().Colorize(data)
}

// Colorize indents data and colors it with s. Invalid JSON is returned
// unchanged.
func (s Scheme) Colorize(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	raw := buf.String()

	var out strings.Builder
	for i := 0; i < len(raw); {
		ch := raw[i]
		switch {
		case ch == '"':
			end := stringEnd(raw, i)
			tok := raw[i : end+1]
			if rest := strings.TrimLeft(raw[end+1:], " \t"); strings.HasPrefix(rest, ":") {
				out.WriteString(s.Key.Render(tok))
			} else {
				out.WriteString(s.String.Render(tok))
			}
			i = end + 1
		case ch == '-' || (ch >= '0' && ch <= '9'):
			end := numberEnd(raw, i)
			out.WriteString(s.Number.Render(raw[i:end]))
			i = end
		case strings.HasPrefix(raw[i:], "true"):
			out.WriteString(s.Bool.Render("true"))
			i += 4
		case strings.HasPrefix(raw[i:], "false"):
			out.WriteString(s.Bool.Render("false"))
			i += 5
		case strings.HasPrefix(raw[i:], "null"):
			out.WriteString(s.Null.Render("null"))
			i += 4
		case strings.IndexByte("{}[]:,", ch) >= 0:
			out.WriteString(s.Punctuation.Render(string(ch)))
			i++
		default:
			out.WriteByte(ch)
			i++
		}
	}
	return out.String()
}

// stringEnd returns the index of the quote closing the string opened at pos.
func stringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return len(s) - 1
}

func numberEnd(s string, pos int) int {
	end := pos + 1
	for end < len(s) && strings.IndexByte("0123456789.eE+-", s[end]) >= 0 {
		end++
	}
	return end
}
