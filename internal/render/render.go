// Package render formats evaluation results for terminals and machines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/fernandezvara/passcheck"
	"github.com/fernandezvara/passcheck/internal/feedback"
)

// Format is an output format name.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHuman, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Result is a report prepared for display. Entropy figures are rounded to
// two decimals here and nowhere earlier.
type Result struct {
	passcheck.Report  `yaml:",inline"`
	ShannonEntropy    float64 `json:"shannon_entropy" yaml:"shannon_entropy"`
	feedback.Feedback `yaml:",inline"`
}

// NewResult copies r and attaches feedback and the per-character Shannon
// entropy.
func NewResult(r *passcheck.Report, shannon float64) Result {
	res := Result{
		Report:         *r,
		ShannonEntropy: round2(shannon),
		Feedback:       feedback.For(r),
	}
	res.Entropy = round2(r.Entropy)
	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Options controls human output.
type Options struct {
	Color bool
}

// Write renders res to w in the given format.
func Write(w io.Writer, format Format, res Result, opts Options) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatHuman:
		_, err := io.WriteString(w, Human(res, opts))
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

var strengthColors = map[passcheck.Strength]lipgloss.Color{
	passcheck.StrengthWeak:   lipgloss.Color("#FF0000"),
	passcheck.StrengthMedium: lipgloss.Color("#FFA500"),
	passcheck.StrengthStrong: lipgloss.Color("#00FF00"),
}

type palette struct {
	heading  lipgloss.Style
	strength lipgloss.Style
	ok       lipgloss.Style
	bad      lipgloss.Style
}

func newPalette(strength passcheck.Strength, color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{heading: plain, strength: plain, ok: plain, bad: plain}
	}
	return palette{
		heading:  lipgloss.NewStyle().Bold(true).Underline(true),
		strength: lipgloss.NewStyle().Bold(true).Foreground(strengthColors[strength]),
		ok:       lipgloss.NewStyle().Foreground(lipgloss.Color("#00C800")),
		bad:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5050")),
	}
}

const barWidth = 20

// Human renders res as a multi-section text report.
func Human(res Result, opts Options) string {
	p := newPalette(res.Strength, opts.Color)
	var b strings.Builder

	filled := res.Score * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	b.WriteString(p.heading.Render("Password Analysis") + "\n")
	fmt.Fprintf(&b, "  Length:          %d characters\n", res.Length)
	fmt.Fprintf(&b, "  Score:           %s %d/100\n", p.strength.Render(bar), res.Score)
	fmt.Fprintf(&b, "  Strength:        %s\n", p.strength.Render(string(res.Strength)))
	fmt.Fprintf(&b, "  Entropy:         %.2f bits (%s)\n", res.Entropy, feedback.EntropyRating(res.Entropy))
	fmt.Fprintf(&b, "  Shannon entropy: %.2f bits/char\n", res.ShannonEntropy)

	b.WriteString("\n" + p.heading.Render("Composition") + "\n")
	for _, c := range []struct {
		label string
		ok    bool
	}{
		{"Uppercase letters", res.HasUpper},
		{"Lowercase letters", res.HasLower},
		{"Digits", res.HasDigit},
		{"Special characters", res.HasSymbol},
	} {
		mark := p.bad.Render("✗")
		if c.ok {
			mark = p.ok.Render("✓")
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, c.label)
	}

	b.WriteString("\n" + p.heading.Render("Security") + "\n")
	if res.IsCommon {
		fmt.Fprintf(&b, "  Common password: %s\n", p.bad.Render("Yes (WEAK!)"))
	} else {
		fmt.Fprintf(&b, "  Common password: %s\n", p.ok.Render("No"))
	}
	patterns := "none"
	if len(res.Patterns) > 0 {
		names := make([]string, len(res.Patterns))
		for i, pat := range res.Patterns {
			names[i] = string(pat)
		}
		patterns = p.bad.Render(strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "  Patterns:        %s\n", patterns)

	if len(res.Warnings) > 0 {
		b.WriteString("\n" + p.heading.Render("Warnings") + "\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "  %s %s\n", p.bad.Render("!"), w)
		}
	}
	if len(res.Recommendations) > 0 {
		b.WriteString("\n" + p.heading.Render("Recommendations") + "\n")
		for _, r := range res.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", r)
		}
	}

	return b.String()
}
