package main

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/presetsort/pkg/classify"
	"github.com/walteh/presetsort/pkg/config"
)

// rootOpts contains shared state used by all commands
type rootOpts struct {
	v          *viper.Viper
	config     *config.Config
	classifier *classify.Classifier
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "presetsort",
		Short: "Organize synth presets into category folders",
		Long: `presetsort files synthesizer presets (.fxp, .serumpreset) into category
folders inferred from their names. Identical content is never stored twice,
and nothing is ever overwritten.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd, opts.v.GetBool("debug"))
			return opts.load(cmd)
		},
	}

	addRootFlags(cmd, opts.v)

	cmd.AddCommand(
		newOrganizeCmd(opts),
		newClassifyCmd(opts),
		newCategoriesCmd(opts),
		newListCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command and binds them to
// PRESETSORT_* environment variables
func addRootFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().StringP("config", "c", "", "classification table (.yaml, .hcl or .json), built-in table when empty")
	cmd.PersistentFlags().BoolP("debug", "d", false, "enable debug logging")

	_ = v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))

	v.SetEnvPrefix("PRESETSORT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// setupLogging configures zerolog based on flags
func setupLogging(cmd *cobra.Command, debug bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx).Level(level)
	cmd.SetContext(logger.WithContext(ctx))
}

// load reads the classification table and compiles it
func (o *rootOpts) load(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg := config.Default()
	if path := o.v.GetString("config"); path != "" {
		loaded, err := config.Load(ctx, path)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	c, err := classify.New(cfg)
	if err != nil {
		return errors.Errorf("compiling classification table: %w", err)
	}

	o.config = cfg
	o.classifier = c

	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Msg("classification table ready")
	return nil
}
