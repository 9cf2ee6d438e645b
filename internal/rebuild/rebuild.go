package rebuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pojntfx/dash-to-workspaces-l10n/internal/compiler"
	"github.com/pojntfx/dash-to-workspaces-l10n/internal/patcher"
	"github.com/pojntfx/dash-to-workspaces-l10n/internal/verify"
	"github.com/pojntfx/dash-to-workspaces-l10n/pkg/translations"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTemplatePath = "dash-to-workspaces.pot"
	DefaultPoPath       = "locale/zh_CN/LC_MESSAGES/dash-to-workspaces.po"
	DefaultMoPath       = "locale/zh_CN/LC_MESSAGES/dash-to-workspaces.mo"
)

type Options struct {
	Template string `mapstructure:"template"`
	Po       string `mapstructure:"po"`
	Mo       string `mapstructure:"mo"`
	Verify   bool   `mapstructure:"verify"`
}

func DefaultOptions() Options {
	return Options{
		Template: DefaultTemplatePath,
		Po:       DefaultPoPath,
		Mo:       DefaultMoPath,
		Verify:   true,
	}
}

// Run patches the template at opts.Template, writes the catalog to opts.Po
// and compiles it to opts.Mo. Errors returned by c are passed through
// unwrapped so callers can match on *compiler.ExitError.
func Run(ctx context.Context, opts Options, table *translations.Table, c compiler.Compiler) error {
	template, err := os.ReadFile(opts.Template)
	if err != nil {
		return fmt.Errorf("could not read template: %w", err)
	}

	log.Debug().
		Str("template", opts.Template).
		Int("entries", table.Len()).
		Msg("Patching template")

	content := patcher.Patch(string(template), table)

	if lang := verify.Header(content, "Language"); lang != table.Language {
		log.Warn().
			Str("template", opts.Template).
			Str("language", lang).
			Msg("Template has no empty Language header, catalog language was not set")
	}

	if err := os.MkdirAll(filepath.Dir(opts.Po), 0750); err != nil {
		return fmt.Errorf("could not create catalog directory: %w", err)
	}

	if err := os.WriteFile(opts.Po, []byte(content), 0644); err != nil {
		return fmt.Errorf("could not write catalog: %w", err)
	}

	log.Info().
		Str("path", opts.Po).
		Msg("Wrote")

	if err := os.MkdirAll(filepath.Dir(opts.Mo), 0750); err != nil {
		return fmt.Errorf("could not create compiled catalog directory: %w", err)
	}

	if err := c.Compile(ctx, opts.Po, opts.Mo); err != nil {
		return err
	}

	log.Info().
		Str("path", opts.Mo).
		Msg("Compiled")

	if !opts.Verify {
		return nil
	}

	if err := verify.Po([]byte(content), string(template), table); err != nil {
		return err
	}

	if err := verify.Mo(opts.Mo, string(template), table); err != nil {
		return err
	}

	log.Info().
		Str("path", opts.Mo).
		Msg("Verified")

	return nil
}
