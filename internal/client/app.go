package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/vaultward/vaultward/internal/adapter"
	"github.com/vaultward/vaultward/internal/config"
	"github.com/vaultward/vaultward/internal/logger"
	"github.com/vaultward/vaultward/internal/service"
	"github.com/vaultward/vaultward/internal/utils"
	"github.com/vaultward/vaultward/internal/workers"
	"github.com/vaultward/vaultward/models"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingEmail   = errors.New("account email is required, pass -e or set APP_EMAIL")
	ErrMissingArgs    = errors.New("missing command arguments")
)

const usage = `Usage: vaultward [flags] <command> [args]

Commands:
  register              create an account and an empty vault
  login                 open a session
  list                  print all vault entries
  offline               print entries from the local cache without the server
  add <name> [user]     add an entry, prompting for its password
  show <id|name>        print one entry with its password
  rm <id>               remove an entry
  rotate                change the master password
  logout                close the session
  status                probe server reachability and session state
`

type App struct {
	services *service.ClientServices
	adapter  adapter.ServerAdapter
	health   workers.Worker
	cfg      *config.ClientConfig
	logger   *logger.Logger

	out    io.Writer
	prompt func(label string) (string, error)
}

func NewApp(services *service.ClientServices, serverAdapter adapter.ServerAdapter, health workers.Worker, cfg *config.ClientConfig, log *logger.Logger) *App {
	return &App{
		services: services,
		adapter:  serverAdapter,
		health:   health,
		cfg:      cfg,
		logger:   log,
		out:      os.Stdout,
		prompt:   utils.PromptPassword,
	}
}

func (a *App) Run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return nil
	}

	ctx := context.Background()

	if a.health != nil {
		a.health.Start(ctx, a.cfg.Workers.HealthInterval)
		defer a.health.Stop()
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("dispatching command")

	switch command {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "list":
		return a.list(ctx)
	case "offline":
		return a.offline()
	case "add":
		return a.add(ctx, rest)
	case "show":
		return a.show(ctx, rest)
	case "rm":
		return a.remove(ctx, rest)
	case "rotate":
		return a.rotate(ctx)
	case "logout":
		return a.logout(ctx)
	case "status":
		return a.status(ctx)
	case "help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) credentials() (models.Credentials, error) {
	email := strings.TrimSpace(a.cfg.App.Email)
	if email == "" {
		return models.Credentials{}, ErrMissingEmail
	}

	password, err := a.prompt("Master password: ")
	if err != nil {
		return models.Credentials{}, fmt.Errorf("read master password: %w", err)
	}

	return models.Credentials{Email: email, MasterPassword: password}, nil
}

func (a *App) register(ctx context.Context) error {
	creds, err := a.credentials()
	if err != nil {
		return err
	}

	if err := a.services.AuthService.Register(ctx, creds); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "account %s registered\n", creds.Email)
	return nil
}

func (a *App) login(ctx context.Context) error {
	creds, err := a.credentials()
	if err != nil {
		return err
	}

	session, err := a.services.AuthService.CreateSession(ctx, creds)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "session opened, valid until %s\n", session.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}

func (a *App) list(ctx context.Context) error {
	creds, err := a.credentials()
	if err != nil {
		return err
	}

	entries, version, err := a.services.VaultService.ListEntries(ctx, creds)
	if err != nil {
		return err
	}

	a.printEntries(entries, version)
	return nil
}

func (a *App) offline() error {
	creds, err := a.credentials()
	if err != nil {
		return err
	}

	entries, version, err := a.services.VaultService.ListCached(creds)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "(local cache, may be behind the server)")
	a.printEntries(entries, version)
	return nil
}

func (a *App) add(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: add <name> [username]", ErrMissingArgs)
	}

	creds, err := a.credentials()
	if err != nil {
		return err
	}

	entry := models.VaultEntry{Name: args[0]}
	if len(args) > 1 {
		entry.Username = args[1]
	}

	entry.Password, err = a.prompt("Entry password: ")
	if err != nil {
		return fmt.Errorf("read entry password: %w", err)
	}

	added, version, err := a.services.VaultService.AddEntry(ctx, creds, entry)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "added %s (%s), vault version %d\n", added.Name, added.ID, version)
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show <id|name>", ErrMissingArgs)
	}

	creds, err := a.credentials()
	if err != nil {
		return err
	}

	entries, _, err := a.services.VaultService.ListEntries(ctx, creds)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.ID == args[0] || entry.Name == args[0] {
			fmt.Fprintf(a.out, "ID:       %s\n", entry.ID)
			fmt.Fprintf(a.out, "Name:     %s\n", entry.Name)
			fmt.Fprintf(a.out, "Username: %s\n", entry.Username)
			fmt.Fprintf(a.out, "Password: %s\n", entry.Password)
			if entry.URL != "" {
				fmt.Fprintf(a.out, "URL:      %s\n", entry.URL)
			}
			if entry.Notes != "" {
				fmt.Fprintf(a.out, "Notes:    %s\n", entry.Notes)
			}
			return nil
		}
	}

	return fmt.Errorf("%w: %s", service.ErrEntryNotFound, args[0])
}

func (a *App) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: rm <id>", ErrMissingArgs)
	}

	creds, err := a.credentials()
	if err != nil {
		return err
	}

	version, err := a.services.VaultService.RemoveEntry(ctx, creds, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "removed %s, vault version %d\n", args[0], version)
	return nil
}

func (a *App) rotate(ctx context.Context) error {
	creds, err := a.credentials()
	if err != nil {
		return err
	}

	newPassword, err := a.prompt("New master password: ")
	if err != nil {
		return fmt.Errorf("read new master password: %w", err)
	}
	confirmation, err := a.prompt("Repeat new master password: ")
	if err != nil {
		return fmt.Errorf("read password confirmation: %w", err)
	}
	if newPassword != confirmation {
		return errors.New("passwords do not match")
	}

	if err := a.services.RotationService.Rotate(ctx, creds, newPassword); err != nil {
		if errors.Is(err, service.ErrRotationIncomplete) {
			fmt.Fprintln(a.out, "vault re-encrypted, but the server credential was not updated; run rotate again with the same passwords")
		}
		return err
	}

	fmt.Fprintln(a.out, "master password rotated")
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) status(ctx context.Context) error {
	if _, ok := a.services.AuthService.AuthHeader(); ok {
		fmt.Fprintln(a.out, "session: active")
	} else {
		fmt.Fprintln(a.out, "session: none")
	}

	if err := a.adapter.Health(ctx); err != nil {
		fmt.Fprintf(a.out, "server:  %s (unreachable: %v)\n", a.cfg.Adapter.HTTPAddress, err)
		return nil
	}

	fmt.Fprintf(a.out, "server:  %s (reachable)\n", a.cfg.Adapter.HTTPAddress)
	return nil
}

func (a *App) printEntries(entries []models.VaultEntry, version int64) {
	if len(entries) == 0 {
		fmt.Fprintf(a.out, "vault is empty (version %d)\n", version)
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tUSERNAME\tURL")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.ID, entry.Name, entry.Username, entry.URL)
	}
	_ = w.Flush()
	fmt.Fprintf(a.out, "vault version %d\n", version)
}
