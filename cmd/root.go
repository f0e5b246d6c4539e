package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/inovacc/clientdir/internal/application"
	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/database"
	"github.com/inovacc/clientdir/internal/encoding"
	"github.com/inovacc/clientdir/internal/model"
	"github.com/inovacc/clientdir/internal/remote"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// logFileName is written in the application directory while the dashboard
// owns the terminal.
const logFileName = "clientdir.log"

// session is the state shared by every command once the root pre-run has
// resolved the configuration.
type session struct {
	cfg     model.Config
	db      database.Store
	logger  *slog.Logger
	logFile io.Closer
}

var current *session

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A client directory dashboard",
	Long: `Clientdir manages the client records of a remote collection.

Run without a subcommand to open the interactive dashboard, or use the
subcommands to list, show, add, edit and delete clients from scripts.

Configuration is read, in increasing priority, from the built-in defaults,
the stored configuration ("clientdir configure"), CLIENTDIR_* environment
variables (a .env file in the working directory is loaded first) and the
command-line flags.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}

	stop()
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Assigned here; the hooks refer back to rootCmd.
	rootCmd.PersistentPreRunE = setupSession
	rootCmd.PersistentPostRunE = closeSession
	rootCmd.RunE = runDashboard

	pf := rootCmd.PersistentFlags()
	pf.String("api-url", "", "Collection endpoint (default "+model.DefaultAPIURL+")")
	pf.Int("timeout", 0, "Per-request timeout in seconds")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: text or json")
	pf.String("log-file", "", "Write logs to this file instead of stderr")
	pf.String("db", "", "Path of the configuration database")
}

func setupSession(cmd *cobra.Command, _ []string) error {
	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	s := &session{}

	db, err := openStore(cmd.Flags())
	if err != nil {
		// The stored configuration is optional; run on defaults.
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		s.db = db
	}

	stored, err := storedConfig(s.db)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to read stored configuration: %v\n", err)
	}

	// Only configure writes; release the file lock for everything else.
	if s.db != nil && cmd != configureCmd {
		_ = s.db.Close()
		s.db = nil
	}

	cfg, err := core.ResolveConfig(stored, os.Getenv)
	if err != nil {
		return err
	}

	if err := applyFlags(cmd.Flags(), &cfg); err != nil {
		return err
	}

	// configure must still run to repair a broken stored configuration
	if cmd != configureCmd {
		if err := core.ValidateConfig(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	s.cfg = cfg

	w, closer, err := logWriter(cmd)
	if err != nil {
		return err
	}

	s.logFile = closer
	s.logger = core.NewLogger(w, cfg)
	slog.SetDefault(s.logger)

	s.logger.Debug("configuration resolved",
		slog.String("api_url", cfg.APIURL),
		slog.Int("timeout_seconds", cfg.TimeoutSeconds),
		slog.Bool("remote_persists_creates", cfg.RemotePersistsCreates),
	)

	current = s

	return nil
}

func closeSession(_ *cobra.Command, _ []string) error {
	if current == nil {
		return nil
	}

	var errs []error

	if current.db != nil {
		errs = append(errs, current.db.Close())
	}

	if current.logFile != nil {
		errs = append(errs, current.logFile.Close())
	}

	current = nil

	return errors.Join(errs...)
}

// newDirectory builds the remote client and the directory for the session.
func (s *session) newDirectory() (*core.Directory, error) {
	client, err := remote.NewClient(s.cfg.APIURL, remote.ClientOptions{
		Logger:    s.logger,
		Timeout:   core.Timeout(s.cfg),
		UserAgent: application.UserAgent(),
	})
	if err != nil {
		return nil, err
	}

	return core.NewDirectory(client, core.DirectoryOptions{
		Logger:                s.logger,
		RemotePersistsCreates: s.cfg.RemotePersistsCreates,
	}), nil
}

// loadDirectory builds the directory and fetches the collection into it.
func (s *session) loadDirectory(ctx context.Context) (*core.Directory, error) {
	dir, err := s.newDirectory()
	if err != nil {
		return nil, err
	}

	if err := dir.Load(ctx); err != nil {
		return nil, err
	}

	return dir, nil
}

// loadDotEnv loads path into the environment when it exists. Variables that
// are already set win.
func loadDotEnv(path string) error {
	if !encoding.FileExists(path) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

func openStore(flags *pflag.FlagSet) (database.Store, error) {
	path, _ := flags.GetString("db")
	if path == "" {
		p, err := database.DefaultPath()
		if err != nil {
			return nil, err
		}

		path = p
	}

	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	return database.Open(path)
}

func storedConfig(db database.Store) (*model.Config, error) {
	if db == nil {
		return nil, nil
	}

	has, err := db.HasConfig()
	if err != nil || !has {
		return nil, err
	}

	return db.GetConfig()
}

// applyFlags overlays the flags the user set explicitly onto cfg.
func applyFlags(flags *pflag.FlagSet, cfg *model.Config) error {
	if flags.Changed("api-url") {
		v, err := flags.GetString("api-url")
		if err != nil {
			return err
		}

		cfg.APIURL = v
	}

	if flags.Changed("timeout") {
		v, err := flags.GetInt("timeout")
		if err != nil {
			return err
		}

		cfg.TimeoutSeconds = v
	}

	if flags.Changed("log-level") {
		v, err := flags.GetString("log-level")
		if err != nil {
			return err
		}

		cfg.LogLevel = v
	}

	if flags.Changed("log-format") {
		v, err := flags.GetString("log-format")
		if err != nil {
			return err
		}

		cfg.LogFormat = v
	}

	if f := flags.Lookup("remote-persists-creates"); f != nil && f.Changed {
		v, err := flags.GetBool("remote-persists-creates")
		if err != nil {
			return err
		}

		cfg.RemotePersistsCreates = v
	}

	return nil
}

// logWriter picks where logs go: --log-file when set, the application log
// file while the dashboard owns the terminal, stderr otherwise.
func logWriter(cmd *cobra.Command) (io.Writer, io.Closer, error) {
	path, _ := cmd.Flags().GetString("log-file")

	if path == "" && ownsTerminal(cmd) {
		dir, err := application.GetApplicationDirectory()
		if err != nil {
			return io.Discard, nil, nil
		}

		path = filepath.Join(dir, logFileName)
	}

	if path == "" {
		return os.Stderr, nil, nil
	}

	path, err := expandPath(path)
	if err != nil {
		return nil, nil, err
	}

	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return f, f, nil
}

// ownsTerminal reports whether cmd runs a full-screen program.
func ownsTerminal(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == dashboardCmd
}
