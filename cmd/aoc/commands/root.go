package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"aochelper/internal/cache"
	"aochelper/internal/client"
	"aochelper/internal/config"
	"aochelper/internal/logging"
	"aochelper/internal/session"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	sessionID  string
	configPath string
	cacheDir   string
	baseURL    string

	log zerolog.Logger
	now func() time.Time
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := newRootCmd(logging.Default())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

func newRootCmd(log zerolog.Logger) *cobra.Command {
	g := &globals{log: log, now: time.Now}

	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Fetch and cache daily puzzle inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.sessionID, "session", "", "session token (default $"+session.DefaultEnvVar+" or session-id in the config file)")
	root.PersistentFlags().StringVar(&g.configPath, "config", config.DefaultPath, "path to config file")
	root.PersistentFlags().StringVar(&g.cacheDir, "cache-dir", "", "input cache directory (default \""+config.DefaultCacheDir+"\")")
	root.PersistentFlags().StringVar(&g.baseURL, "base-url", "", "puzzle site root")
	_ = root.PersistentFlags().MarkHidden("base-url")

	root.AddCommand(fetchCmd(g), statusCmd(g), mcpCmd(g))
	return root
}

// inputs wires config, session, client and file store into an input cache.
func (g *globals) inputs() (*cache.Inputs, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.cacheDir != "" {
		cfg.CacheDir = g.cacheDir
	}
	if g.baseURL != "" {
		cfg.BaseURL = g.baseURL
	}

	cred, credErr := session.Resolver{
		Override:   g.sessionID,
		EnvVar:     session.DefaultEnvVar,
		LookupEnv:  os.LookupEnv,
		ConfigPath: g.configPath,
	}.Resolve()

	c, err := client.New(client.Options{BaseURL: cfg.BaseURL, UserAgent: cfg.UserAgent})
	if err != nil {
		return nil, err
	}

	return cache.NewInputs(
		cache.NewFileStore(cfg.CacheDir),
		client.Authenticated{Client: c, Cred: cred, Err: credErr},
		cache.WithClock(g.now),
		cache.WithLogger(g.log),
	), nil
}

func addDayFlags(cmd *cobra.Command, key *cache.Key) {
	cmd.Flags().IntVarP(&key.Year, "year", "y", 0, "puzzle year")
	cmd.Flags().IntVarP(&key.Day, "day", "d", 0, "day of December")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("day")
}
