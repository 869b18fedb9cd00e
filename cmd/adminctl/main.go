package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grably/adminctl/internal/config"
	"github.com/grably/adminctl/internal/session"
	"github.com/grably/adminctl/internal/tui"
	"github.com/grably/adminctl/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// grablyDir returns ~/.grably, creating it if needed.
func grablyDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	dir := filepath.Join(home, ".grably")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// newLogger writes structured logs to a file; the terminal belongs to the UI.
func newLogger(path string, debug bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func run() error {
	godotenv.Load() //nolint:errcheck // a missing .env is the normal case

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir, err := grablyDir()
	if err != nil {
		return err
	}
	authFile := cfg.AuthFile
	if authFile == "" {
		authFile = filepath.Join(dir, "auth.json")
	}
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = filepath.Join(dir, "adminctl.log")
	}

	logger, err := newLogger(logFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	sess := session.NewStore(authFile)
	if err := sess.Load(); err != nil {
		// A broken auth file should not lock the admin out; start signed out.
		logger.Warn("load session", zap.Error(err))
	}

	// The program handle is filled in below; by the time any request can
	// fire, the TUI is running and Send delivers.
	var program *tea.Program
	c := client.New(cfg.APIBaseURL, sess,
		client.WithTimeout(cfg.HTTPTimeout),
		client.WithLogger(logger),
		client.WithResponseHook(client.UnauthorizedHook(sess, func() {
			if program != nil {
				program.Send(tui.SessionExpiredMsg{})
			}
		})),
	)

	start := "dashboard"
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("adminctl " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "logout":
			return runLogout(c, sess)
		case "whoami":
			return runWhoami(c, sess)
		case "--open":
			if len(os.Args) < 3 {
				return fmt.Errorf("--open needs a page name (dashboard, users, shopkeepers, admins, shops, orders, notifications)")
			}
			start = os.Args[2]
		default:
			return fmt.Errorf("unknown command %q (try 'adminctl help')", os.Args[1])
		}
	}

	app := tui.NewApp(c, sess, tui.RouteByName(start))
	p := tea.NewProgram(app, tea.WithAltScreen())
	program = p
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// runLogout ends the session: backend invalidation is best-effort, the
// local clear is not.
func runLogout(c *client.Client, sess *session.Store) error {
	if !sess.Authenticated() {
		fmt.Println("not signed in")
		return nil
	}
	if err := c.Logout(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: backend logout failed: %v\n", err)
	}
	if err := sess.ClearAuth(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	fmt.Println("signed out")
	return nil
}

// runWhoami prints the signed-in administrator, verified against the backend.
func runWhoami(c *client.Client, sess *session.Store) error {
	if !sess.Authenticated() {
		fmt.Println("not signed in")
		return nil
	}
	admin, err := c.Me(context.Background())
	if err != nil {
		if client.IsUnauthorized(err) {
			fmt.Println("session expired — run adminctl and sign in again")
			return nil
		}
		return err
	}
	if err := sess.UpdateUser(admin); err != nil {
		fmt.Fprintf(os.Stderr, "warning: refresh stored profile: %v\n", err)
	}
	fmt.Printf("%s <%s> (%s)\n", admin.Name, admin.Email, admin.Role)
	return nil
}

func printHelp() {
	fmt.Print(`adminctl — Grably admin panel for the terminal

Usage:
  adminctl                 open the admin panel
  adminctl --open <page>   open a specific page (users, shops, orders, ...)
  adminctl whoami          show the signed-in administrator
  adminctl logout          end the current session
  adminctl version         print the version

Environment:
  GRABLY_API_URL       backend base URL (default http://localhost:5004)
  GRABLY_AUTH_FILE     session file (default ~/.grably/auth.json)
  GRABLY_LOG_FILE      log file (default ~/.grably/adminctl.log)
  GRABLY_HTTP_TIMEOUT  request timeout (default 30s)
  GRABLY_DEBUG         enable debug logging
`)
}
