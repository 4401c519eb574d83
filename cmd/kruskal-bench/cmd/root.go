// Package cmd implements the kruskal-bench command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kruskal/internal/bench"
	"github.com/katalvlaran/kruskal/internal/logger"
)

const envPrefix = "KRUSKAL_BENCH"

var (
	Version string
	Commit  string
)

// ErrUnknownProfile indicates a --profile value other than cpu, mem or empty.
var ErrUnknownProfile = errors.New("unknown profile mode")

// Config is the full CLI configuration as decoded by viper.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Profile struct {
		Mode string `mapstructure:"mode"`
		Path string `mapstructure:"path"`
	} `mapstructure:"profile"`
	Bench bench.Config `mapstructure:",squash"`
}

// Execute runs the root command with the process arguments.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree around its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "kruskal-bench [trials]",
		Short: "Time Kruskal's minimum spanning tree on random graphs",
		Long: "Builds random connected graphs, doubling the vertex count on every trial " +
			"and growing the edge density on every iteration, and reports how long " +
			"Kruskal's algorithm takes to compute each minimum spanning tree.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile, args)
			if err != nil {
				return err
			}
			if cfg.Profile.Mode != "" {
				stop, err := startProfile(cfg.Profile.Mode, cfg.Profile.Path)
				if err != nil {
					return err
				}
				defer stop()
			}

			return run(cmd, cfg)
		},
	}
	rootCmd.Version = strings.TrimSpace(fmt.Sprintf("%s %s", Version, buildCommit()))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file")
	flags.String("log-format", logger.LogFormatTextValue, "logging format [text|json]")
	flags.String("log-level", zerolog.LevelInfoValue,
		fmt.Sprintf("logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)
	flags.Int("trials", bench.DefaultTrials, "how many times the vertex count is doubled")
	flags.Int("edge-iterations", bench.DefaultEdgeIterations, "edge densities measured per trial")
	flags.Int("initial-size", bench.DefaultInitialSize, "vertex count before the first doubling")
	flags.Int64("seed", bench.DefaultSeed, "random graph generator seed")
	flags.String("format", bench.FormatTable, "report format [table|text]")
	flags.Bool("path-compression", false, "compress paths in the disjoint-set forest")
	flags.String("profile", "", "write a pprof profile [cpu|mem]")
	flags.String("profile-path", ".", "directory for profile output")

	bindings := map[string]string{
		"log.format":       "log-format",
		"log.level":        "log-level",
		"trials":           "trials",
		"edge-iterations":  "edge-iterations",
		"initial-size":     "initial-size",
		"seed":             "seed",
		"format":           "format",
		"path-compression": "path-compression",
		"profile.mode":     "profile",
		"profile.path":     "profile-path",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Fatal().Err(err).Str("flag", flag).Msg("cannot bind flag")
		}
	}

	return rootCmd
}

// loadConfig merges flags, the optional config file and the environment,
// then applies the positional trials argument.
func loadConfig(v *viper.Viper, cfgFile string, args []string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading from config file: %w", err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := &Config{Bench: *bench.NewConfig()}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := logger.SetLogLevel(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, err
	}

	if len(args) == 1 {
		trials, err := strconv.Atoi(args[0])
		if err != nil {
			log.Warn().
				Str("arg", args[0]).
				Int("trials", cfg.Bench.Trials).
				Msg("cannot parse trials argument, keeping configured value")
		} else {
			cfg.Bench.Trials = trials
		}
	}

	return cfg, nil
}

func run(cmd *cobra.Command, cfg *Config) error {
	log.Info().
		Int("trials", cfg.Bench.Trials).
		Int("edgeIterations", cfg.Bench.EdgeIterations).
		Int("initialSize", cfg.Bench.InitialSize).
		Int64("seed", cfg.Bench.Seed).
		Bool("pathCompression", cfg.Bench.PathCompression).
		Msg("starting benchmark")

	results, err := bench.Run(cmd.Context(), &cfg.Bench)
	if renderErr := bench.Render(cmd.OutOrStdout(), cfg.Bench.Format, results); renderErr != nil {
		return errors.Join(err, renderErr)
	}

	return err
}

func startProfile(mode, path string) (func(), error) {
	var kind func(*profile.Profile)
	switch mode {
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, mode)
	}

	return profile.Start(kind, profile.ProfilePath(path), profile.Quiet, profile.NoShutdownHook).Stop, nil
}

func buildCommit() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return ""
}
