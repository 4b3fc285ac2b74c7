package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/aurakai/gatenav/internal/auth"
	"github.com/aurakai/gatenav/internal/carousel"
	"github.com/aurakai/gatenav/internal/catalog"
	"github.com/aurakai/gatenav/internal/config"
	"github.com/aurakai/gatenav/internal/database"
	"github.com/aurakai/gatenav/internal/database/repository"
	"github.com/aurakai/gatenav/internal/logging"
	"github.com/aurakai/gatenav/internal/secrets"
	"github.com/aurakai/gatenav/internal/tui"
)

const tokenSecretName = "token-secret"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// app bundles what the subcommands and the TUI share.
type app struct {
	cfg     config.Config
	db      *sql.DB
	session *auth.Session
	// store is nil when the token secret comes from config.
	store *secrets.Store
	out   io.Writer
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer logCloser.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	// The signing secret comes from config, or is generated once and kept
	// in the secret store so sessions survive restarts.
	var store *secrets.Store
	secret := cfg.Auth.TokenSecret
	if secret == "" {
		if store, err = secrets.Open(""); err != nil {
			return fmt.Errorf("secret store: %w", err)
		}
		if secret, err = store.GetOrCreate(tokenSecretName, 32); err != nil {
			return fmt.Errorf("token secret: %w", err)
		}
	}
	tokens, err := auth.NewTokens(secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}
	sessions := repository.NewSessionRepo(db)
	session := auth.NewSession(ctx, repository.NewUserRepo(db), sessions, tokens, logger)

	if n, err := sessions.PurgeExpired(ctx, database.Now()); err != nil {
		logger.Warn("purge expired sessions", "error", err)
	} else if n > 0 {
		logger.Info("purged expired sessions", "count", n)
	}

	a := &app{cfg: cfg, db: db, session: session, store: store, out: os.Stdout}
	if len(args) > 0 {
		if err := a.runCommand(ctx, args); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return nil
	}

	gates, err := loadCatalog(ctx, cfg, db)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	model, err := tui.New(ctx, gates, session, tui.Options{
		TapWindow:   cfg.Navigation.TapWindow(),
		LoginRoute:  cfg.Navigation.LoginRoute,
		ShowRegions: cfg.UI.ShowRegions,
		Logger:      logger,
		SaveRegions: a.saveRegions,
	})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("starting", "gates", gates.Len(), "db", cfg.Database.Path)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()
	if err := session.Logout(ctx); err != nil {
		logger.Warn("logout on exit", "error", err)
	}
	return runErr
}

func (a *app) saveRegions(show bool) error {
	a.cfg.UI.ShowRegions = show
	return config.Save(a.cfg)
}

// loadCatalog prefers the configured TOML file and falls back to the
// catalog stored in the database.
func loadCatalog(ctx context.Context, cfg config.Config, db *sql.DB) (catalog.Catalog, error) {
	if cfg.Catalog.Path != "" {
		return catalog.LoadFile(cfg.Catalog.Path)
	}
	gates, err := repository.NewGateRepo(db).List(ctx)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("list gates: %w", err)
	}
	return catalog.New(gates)
}

func (a *app) runCommand(ctx context.Context, args []string) error {
	switch args[0] {
	case "gates":
		return a.listGates(ctx, args[1:])
	case "gate":
		if len(args) != 4 || args[1] != "soon" {
			return fmt.Errorf("usage: gatenav gate soon <id> on|off")
		}
		return a.setComingSoon(ctx, args[2], args[3])
	case "user":
		switch {
		case len(args) == 4 && args[1] == "add":
			u, err := a.session.Register(ctx, args[2], args[3])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "user %s saved (%s)\n", u.Username, u.ID)
			return nil
		case len(args) == 2 && args[1] == "list":
			return a.listUsers(ctx)
		}
		return fmt.Errorf("usage: gatenav user add <name> <password> | gatenav user list")
	case "secret":
		if len(args) != 2 || args[1] != "rotate" {
			return fmt.Errorf("usage: gatenav secret rotate")
		}
		return a.rotateSecret()
	default:
		return fmt.Errorf("unknown command %q (want gates, gate, user or secret)", args[0])
	}
}

func (a *app) listGates(ctx context.Context, args []string) error {
	var region string
	switch {
	case len(args) == 0:
	case len(args) == 2 && args[0] == "--region":
		region = args[1]
	default:
		return fmt.Errorf("usage: gatenav gates [--region <r>]")
	}
	gates, err := loadCatalog(ctx, a.cfg, a.db)
	if err != nil {
		return err
	}
	list := gates.ByRegion(region)
	if len(list) == 0 {
		return fmt.Errorf("no gates in region %q (regions: %s)", region, strings.Join(catalog.RegionOrder, ", "))
	}
	printGates(a.out, list)
	return nil
}

// setComingSoon edits the stored catalog. A configured catalog file is
// edited by hand instead.
func (a *app) setComingSoon(ctx context.Context, id, state string) error {
	var soon bool
	switch state {
	case "on":
		soon = true
	case "off":
	default:
		return fmt.Errorf("state must be on or off, got %q", state)
	}
	if a.cfg.Catalog.Path != "" {
		return fmt.Errorf("catalog is read from %s; edit that file instead", a.cfg.Catalog.Path)
	}
	repo := repository.NewGateRepo(a.db)
	stored, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list gates: %w", err)
	}
	cat, err := catalog.New(stored)
	if err != nil {
		return err
	}
	g, ok := cat.ByID(id)
	if !ok {
		return fmt.Errorf("no gate with id %q", id)
	}
	if err := repo.SetComingSoon(ctx, g.ID, soon); err != nil {
		return fmt.Errorf("update gate: %w", err)
	}
	fmt.Fprintf(a.out, "%s coming-soon %s\n", g.Title, state)
	return nil
}

func (a *app) listUsers(ctx context.Context) error {
	users, err := repository.NewUserRepo(a.db).List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "no users")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%-20s %s  created %s\n", u.Username, u.ID, u.CreatedAt.Format(time.DateOnly))
	}
	return nil
}

// rotateSecret drops the stored signing secret. The next start generates a
// new one, which invalidates every issued token.
func (a *app) rotateSecret() error {
	if a.store == nil {
		return fmt.Errorf("token secret is set in config; change auth.token_secret instead")
	}
	if err := a.store.Delete(tokenSecretName); err != nil {
		return fmt.Errorf("delete secret: %w", err)
	}
	fmt.Fprintln(a.out, "token secret removed; sessions end on next start")
	return nil
}

func printGates(w io.Writer, gates []carousel.Gate) {
	region := color.New(color.FgCyan, color.Bold)
	locked := color.New(color.FgYellow)
	soon := color.New(color.FgMagenta)
	last := ""
	for _, g := range gates {
		if g.Region != last {
			region.Fprintf(w, "%s\n", g.Region)
			last = g.Region
		}
		fmt.Fprintf(w, "  %-22s %-20s", g.Title, g.Route)
		if g.Protected {
			locked.Fprint(w, " protected")
		}
		if g.ComingSoon {
			soon.Fprint(w, " coming-soon")
		}
		fmt.Fprintln(w)
	}
}
