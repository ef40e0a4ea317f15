// Package printer writes styled human-readable command output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/roster/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to a writer.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithContext stores p in ctx.
func WithContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Successf writes a line prefixed with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle.Render("✔") + " " + fmt.Sprintf(format, args...))
}

// Infof writes a line prefixed with an info marker.
func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextPrimaryStyle.Render("•") + " " + fmt.Sprintf(format, args...))
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.WarningStyle.Render("!") + " " + fmt.Sprintf(format, args...))
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle.Render("✘") + " " + fmt.Sprintf(format, args...))
}

// Section writes a heading followed by a divider.
func (p *Printer) Section(title string) {
	p.line(styles.CommandHeaderStyle.Render(title))
	p.line(styles.DividerStyle.Render("──────────────────────────────"))
}

// CheckItem writes a passing check.
func (p *Printer) CheckItem(label, detail string) {
	p.item(styles.SuccessStyle.Render("✔"), label, detail)
}

// WarnItem writes a check that passed with a warning.
func (p *Printer) WarnItem(label, detail string) {
	p.item(styles.WarningStyle.Render("●"), label, detail)
}

// FailItem writes a failed check.
func (p *Printer) FailItem(label, detail string) {
	p.item(styles.ErrorStyle.Render("✘"), label, detail)
}

func (p *Printer) item(icon, label, detail string) {
	s := "  " + icon + " " + styles.CommandStyle.Render(label)
	if detail != "" {
		s += styles.TextMutedStyle.Render(" " + detail)
	}
	p.line(s)
}
