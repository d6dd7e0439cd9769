package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/auth"
	"github.com/platanus-hack-25/lumera-cli/internal/config"
	"github.com/platanus-hack-25/lumera-cli/internal/guard"
	"github.com/platanus-hack-25/lumera-cli/internal/store"
)

// Commands declare who may run them through this annotation. Unannotated
// commands inherit from their parent; the default is open.
const (
	accessAnnotation = "lumera/access"
	accessOpen       = "open"
	accessAuth       = "auth"    // signed in
	accessProfile    = "profile" // signed in with a student profile
)

var errNoProfile = errors.New("no student profile yet; run `lumera profile create` first")

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"api-url":      config.KeyAPIURL,
	"db":           config.KeyDB,
	"http-timeout": config.KeyHTTPTimeout,
	"listen":       config.KeyDevListen,
	"backend":      config.KeyDevBackend,
	"allowed-host": config.KeyDevAllowedHosts,
	"tts-dir":      config.KeyTTSDir,
}

// env is what a command runs against. It is built by setup before the
// command runs and released by teardown afterwards.
type env struct {
	cfg     config.Config
	store   *store.Store
	session *auth.Session
	client  *api.Client
}

var rt *env

// setup resolves the configuration, restores the session from the local
// store, wires the API client to it and enforces the command's access
// level.
func setup(cmd *cobra.Command, args []string) error {
	v, err := config.NewViper()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	session, err := auth.Init(st)
	if err != nil {
		st.Close()
		return err
	}
	client := api.New(cfg.APIURL, api.WithTimeout(cfg.HTTPTimeout), api.WithHeaders(session))
	session.UseBackend(client)

	teardown()
	rt = &env{cfg: cfg, store: st, session: session, client: client}

	return checkAccess(cmd, accessOf(cmd))
}

func teardown() {
	if rt != nil && rt.store != nil {
		rt.store.Close()
	}
	rt = nil
}

// resolveDBPath returns the configured path (--db, LUMERA_DB or the config
// file) or the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func accessOf(cmd *cobra.Command) string {
	for c := cmd; c != nil; c = c.Parent() {
		if a, ok := c.Annotations[accessAnnotation]; ok {
			return a
		}
	}
	return accessOpen
}

func checkAccess(cmd *cobra.Command, level string) error {
	switch level {
	case accessAuth:
		return guard.RequireAuth(rt.session)
	case accessProfile:
		dest, err := guard.Resolve(cmd.Context(), rt.session, rt.client)
		if err != nil {
			return err
		}
		switch dest {
		case guard.Login:
			return guard.ErrLoginRequired
		case guard.Onboarding:
			return errNoProfile
		}
	}
	return nil
}

// currentUser returns the signed-in user. Only valid behind an auth or
// profile access check.
func currentUser() *api.User {
	return rt.session.User()
}
