package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/adamwrona/rezydent/internal/cli/formatter"
	"github.com/adamwrona/rezydent/internal/contract"
	"github.com/adamwrona/rezydent/internal/domain"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateFlag is a pflag.Value parsing YYYY-MM-DD into an optional time.
type dateFlag struct {
	t *time.Time
}

var _ pflag.Value = (*dateFlag)(nil)

func (d *dateFlag) String() string {
	if d.t == nil {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d *dateFlag) Set(raw string) error {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	*d.t = parsed
	return nil
}

func (d *dateFlag) Type() string { return "date" }

// dateVar registers a YYYY-MM-DD flag writing into target.
func dateVar(fs *pflag.FlagSet, target *time.Time, name, usage string) {
	fs.Var(&dateFlag{t: target}, name, usage)
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return &t, nil
}

// printResult prints business failures and reports whether the operation
// succeeded. Infrastructure errors are handled separately by the caller.
func printResult(res contract.Result) bool {
	if res.OK() {
		return true
	}
	for _, f := range res.Failures {
		if f.Field != "" {
			fmt.Printf("%s %s: %s\n", formatter.StyleRed.Render("✗"), formatter.Bold(f.Field), f.Message)
		} else {
			fmt.Printf("%s %s\n", formatter.StyleRed.Render("✗"), f.Message)
		}
	}
	return false
}

// resolveSpecialization picks the specialization commands operate on. An
// explicit flag wins; otherwise a sole existing specialization is selected
// automatically.
func resolveSpecialization(ctx context.Context, app *App, flagValue string) (*domain.Specialization, error) {
	if flagValue != "" {
		spec, err := app.Specializations.GetByID(ctx, flagValue)
		if err != nil {
			return nil, fmt.Errorf("specialization %s: %w", flagValue, err)
		}
		return spec, nil
	}

	specs, err := app.Specializations.List(ctx)
	if err != nil {
		return nil, err
	}
	switch len(specs) {
	case 0:
		return nil, fmt.Errorf("no specializations found, create one with 'rezydent spec create'")
	case 1:
		return specs[0], nil
	default:
		return nil, fmt.Errorf("multiple specializations exist, pass --specialization")
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
