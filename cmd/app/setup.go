package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/akyairhashvil/contribcheck/internal/config"
	"github.com/akyairhashvil/contribcheck/internal/database"
	"github.com/akyairhashvil/contribcheck/internal/github"
	"github.com/akyairhashvil/contribcheck/internal/logging"
	"github.com/akyairhashvil/contribcheck/internal/tui"
	"github.com/akyairhashvil/contribcheck/internal/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Replaced in tests.
var (
	isInteractive = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	readSecret    = promptForKey
)

// loadConfig layers defaults, the config file, the dotenv file, the
// environment and flags.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	path := opts.configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, err
	}
	envPath := opts.envFile
	if envPath == "" {
		envPath = config.DotEnvFile
	}
	lookup, err := config.EnvLookup(envPath, opts.envFile != "", os.LookupEnv)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(lookup)

	flags := cmd.Flags()
	if flags.Changed("user") {
		cfg.Username = strings.TrimSpace(opts.user)
	}
	if flags.Changed("endpoint") {
		cfg.Endpoint = strings.TrimSpace(opts.endpoint)
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("db") {
		cfg.DBPath = opts.dbPath
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	return cfg, nil
}

// ensureToken prompts for a missing token when stdin is a terminal.
func ensureToken(cfg *config.Config) error {
	if strings.TrimSpace(cfg.Token) != "" || !isInteractive() {
		return nil
	}
	token, err := readSecret("GitHub token: ")
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	cfg.Token = token
	return nil
}

// checkConfig validates cfg. With allowMissingUser a missing username alone
// is accepted; the UI asks for it.
func checkConfig(cfg config.Config, allowMissingUser bool) error {
	err := cfg.Validate()
	if err == nil {
		return nil
	}
	if allowMissingUser && !errors.Is(err, config.ErrMissingToken) {
		return nil
	}
	return err
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}

// services are the collaborators every command needs.
type services struct {
	cfg    config.Config
	logger *zap.Logger
	db     *database.Database
	client *github.Client
}

func openServices(ctx context.Context, cfg config.Config) (*services, error) {
	logger, err := logging.New(cfg.LogPath, cfg.Verbose)
	if err != nil {
		return nil, err
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	logger.Debug("services ready",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("db", db.Path()),
		zap.String("token", util.MaskToken(cfg.Token)))
	client := github.NewClient(cfg.Endpoint, cfg.Token,
		github.WithLogger(logger),
		github.WithUserAgent(tui.UserAgent()))
	return &services{cfg: cfg, logger: logger, db: db, client: client}, nil
}

func (s *services) Close() {
	util.LogError(s.logger, "close database", s.db.Close())
	_ = s.logger.Sync()
}

func (s *services) deps() tui.Deps {
	return tui.Deps{
		Fetcher:          s.client,
		Store:            s.db,
		Logger:           s.logger,
		TokenFingerprint: util.TokenFingerprint(s.cfg.Token),
		ReportsDir:       util.ReportsDir(config.AppName),
		Theme:            s.cfg.Theme,
	}
}
