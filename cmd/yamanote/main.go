package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"yamanote/internal/config"
)

const releaseVersion = "0.1.0"

type options struct {
	corpusPath  string
	configPath  string
	players     []string
	turnSeconds int
	maxRounds   int
	chainRule   bool
	passLimit   int
	wrongLimit  int
	logLevel    string
}

func main() {
	log.SetFlags(0)
	_ = godotenv.Load()
	opts := &options{}
	cobra.CheckErr(newCmd(opts).Execute())
}

func newCmd(opts *options) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("YAMANOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "yamanote",
		Short:         "Terminal host for the Yamanote Line word-chain game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if opts.configPath != "" {
				if err := cfg.ApplyFile(opts.configPath); err != nil {
					return err
				}
			}
			applyFlags(cmd.Flags(), opts, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg, opts)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&opts.corpusPath, "corpus", "c", "", "answer list CSV to load; built-in station list when empty (env: YAMANOTE_CORPUS)")
	fs.StringVar(&opts.configPath, "config", "", "YAML config file with sounds and rules (env: YAMANOTE_CONFIG)")
	fs.StringSliceVarP(&opts.players, "players", "P", nil, "player names in seat order (env: YAMANOTE_PLAYERS)")
	fs.IntVarP(&opts.turnSeconds, "turn-seconds", "t", 60, "thinking time per turn (env: YAMANOTE_TURN_SECONDS)")
	fs.IntVar(&opts.maxRounds, "max-rounds", 0, "stop after this many full rounds, 0 for unlimited (env: YAMANOTE_MAX_ROUNDS)")
	fs.BoolVar(&opts.chainRule, "chain", false, "require answers to chain on the previous answer's last kana (env: YAMANOTE_CHAIN)")
	fs.IntVar(&opts.passLimit, "pass-limit", 0, "passes per player (env: YAMANOTE_PASS_LIMIT)")
	fs.IntVar(&opts.wrongLimit, "wrong-limit", 5, "wrong answers before elimination (env: YAMANOTE_WRONG_LIMIT)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level (env: YAMANOTE_LOG_LEVEL)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("yamanote v{{.Version}}\n")

	return cmd
}

// applyFlags copies explicitly set flags over the env/file configuration.
// Env-set flags count as changed through the viper binding above.
func applyFlags(fs *pflag.FlagSet, opts *options, cfg *config.Config) {
	if fs.Changed("turn-seconds") {
		cfg.Game.TurnSeconds = opts.turnSeconds
	}
	if fs.Changed("max-rounds") {
		cfg.Game.MaxRounds = opts.maxRounds
	}
	if fs.Changed("chain") {
		cfg.Game.ChainRule = opts.chainRule
	}
	if fs.Changed("pass-limit") {
		cfg.Game.PassLimit = opts.passLimit
	}
	if fs.Changed("wrong-limit") {
		cfg.Game.WrongLimit = opts.wrongLimit
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
}
