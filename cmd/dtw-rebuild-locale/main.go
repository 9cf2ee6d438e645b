package main

import (
	"errors"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pojntfx/dash-to-workspaces-l10n/internal/compiler"
	"github.com/pojntfx/dash-to-workspaces-l10n/internal/rebuild"
	"github.com/pojntfx/dash-to-workspaces-l10n/pkg/translations"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	templateKey = "template"
	poKey       = "po"
	moKey       = "mo"
	msgfmtKey   = "msgfmt"
	verifyKey   = "verify"
	verboseKey  = "verbose"
)

func setVerbosity(verbose int) {
	switch verbose {
	case 0:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case 1:
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case 3:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case 4:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 5:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 6:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
}

func decodeOptions(settings map[string]any) (rebuild.Options, error) {
	opts := rebuild.DefaultOptions()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return rebuild.Options{}, err
	}

	if err := decoder.Decode(settings); err != nil {
		return rebuild.Options{}, err
	}

	return opts, nil
}

func main() {
	defaults := rebuild.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "dtw-rebuild-locale",
		Short: "Rebuild the Simplified Chinese catalog for Dash to Workspaces",
		Long: `Fills the dash-to-workspaces.pot template with the built-in Simplified Chinese strings, writes the zh_CN .po catalog and compiles it to a .mo file with msgfmt.

Running it without flags reads ./dash-to-workspaces.pot and writes to ./locale/zh_CN/LC_MESSAGES.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setVerbosity(viper.GetInt(verboseKey))

			opts, err := decodeOptions(viper.AllSettings())
			if err != nil {
				return err
			}

			table, err := translations.ZhCN()
			if err != nil {
				return err
			}

			command := strings.Fields(viper.GetString(msgfmtKey))
			if len(command) == 0 {
				command, err = compiler.DiscoverMsgfmt()
				if err != nil {
					return err
				}
			}

			log.Debug().
				Strs("msgfmt", command).
				Str("language", table.Language).
				Msg("Using compiler")

			return rebuild.Run(cmd.Context(), opts, table, compiler.NewMsgfmt(command...))
		},
	}

	cmd.PersistentFlags().StringP(templateKey, "t", defaults.Template, "Path to the gettext template to read")
	cmd.PersistentFlags().String(poKey, defaults.Po, "Path to write the catalog to")
	cmd.PersistentFlags().String(moKey, defaults.Mo, "Path to write the compiled catalog to")
	cmd.PersistentFlags().String(msgfmtKey, "", "Command to compile catalogs with (default: discover msgfmt)")
	cmd.PersistentFlags().Bool(verifyKey, defaults.Verify, "Whether to read the written catalogs back and check every translation")
	cmd.PersistentFlags().IntP(verboseKey, "v", 5, "Verbosity level (0 is disabled, default is info, 7 is trace)")

	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("dtw")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := cmd.Execute(); err != nil {
		var exitErr *compiler.ExitError
		if errors.As(err, &exitErr) {
			log.Error().
				Str("command", exitErr.Command).
				Int("code", exitErr.Code).
				Str("stderr", exitErr.Stderr).
				Msg("Could not compile catalog")

			os.Exit(1)
		}

		panic(err)
	}
}
