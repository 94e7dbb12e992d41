package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adamwrona/rezydent/internal/cli/formatter"
	"github.com/adamwrona/rezydent/internal/smk"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// rezydentHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func rezydentHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// entryForm builds an interactive form for one realization view. Fields,
// labels, defaults and pickers come from the schema-generation strategy, so
// old and new specializations see different forms without the commands
// knowing the difference. Values already set by flags are kept as defaults.
func entryForm(st smk.Strategy, view string, values map[string]*string) *huh.Form {
	required := make(map[string]bool)
	for _, f := range st.RequiredFields(view) {
		required[f] = true
	}

	var fields []huh.Field
	for _, name := range st.VisibleFields(view) {
		target, ok := values[name]
		if !ok {
			continue
		}
		if *target == "" {
			*target = st.Default(view, name)
		}

		if opts := st.Options(view, name); len(opts) > 0 {
			huhOpts := make([]huh.Option[string], 0, len(opts))
			for _, o := range opts {
				huhOpts = append(huhOpts, huh.NewOption(o.Label, o.Value))
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(st.Label(view, name)).
				Options(huhOpts...).
				Value(target))
			continue
		}

		input := huh.NewInput().
			Title(st.Label(view, name)).
			Placeholder(st.Default(view, name)).
			Value(target)
		switch {
		case strings.Contains(name, "date") && required[name]:
			input = input.Validate(validateDate)
		case strings.Contains(name, "date"):
			input = input.Validate(validateOptionalDate)
		case required[name]:
			input = input.Validate(validateRequired)
		}
		fields = append(fields, input)
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(rezydentHuhTheme()).
		WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("pole jest wymagane")
	}
	return nil
}

func validateDate(s string) error {
	if err := validateRequired(s); err != nil {
		return err
	}
	return validateOptionalDate(s)
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("oczekiwano daty w formacie RRRR-MM-DD")
	}
	return nil
}

// atoiOrZero parses form values that default to empty strings.
func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
