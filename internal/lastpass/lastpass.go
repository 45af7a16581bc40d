// Package lastpass assembles database connection details from a Lastpass
// vault entry by shelling out to the `lpass` CLI.
package lastpass

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"toolbelt.dev/toolbelt/internal/db"
	"toolbelt.dev/toolbelt/internal/shell"
	"toolbelt.dev/toolbelt/pkg/logging"
)

// Manager fetches the fields of one Lastpass entry.
type Manager struct {
	Entry  string
	runner shell.Runner
	log    zerolog.Logger
}

// New creates a Manager for the given vault entry.
func New(entry string) *Manager {
	return &Manager{
		Entry:  entry,
		runner: shell.NewCommandRunner(""),
		log:    logging.New("lastpass"),
	}
}

// NewWithRunner creates a Manager with a custom command runner.
func NewWithRunner(entry string, runner shell.Runner) *Manager {
	return &Manager{
		Entry:  entry,
		runner: runner,
		log:    logging.New("lastpass"),
	}
}

// Details reads the entry's Type, Database, Hostname, Port, username, and
// password fields and returns connection details. The session is established
// first when `lpass status` reports none, using LASTPASS_USERNAME.
func (m *Manager) Details(ctx context.Context) (db.ConnectionDetails, error) {
	if err := m.authenticate(ctx); err != nil {
		return db.ConnectionDetails{}, err
	}

	fields := map[string]string{}
	for name, args := range map[string][]string{
		"type":     {"--field", "Type"},
		"database": {"--field", "Database"},
		"hostname": {"--field", "Hostname"},
		"port":     {"--field", "Port"},
		"username": {"--username"},
		"password": {"--password"},
	} {
		value, err := m.field(ctx, args...)
		if err != nil {
			m.log.Warn().Str("entry", m.Entry).Msg("Lastpass entry lookup failed")
			return db.ConnectionDetails{}, fmt.Errorf("lastpass entry %q: %w", m.Entry, err)
		}
		fields[name] = value
	}

	port, err := strconv.Atoi(fields["port"])
	if err != nil {
		return db.ConnectionDetails{}, fmt.Errorf("lastpass entry %q has non-numeric port %q", m.Entry, fields["port"])
	}

	dialect := strings.ToLower(fields["type"])
	if dialect == "" {
		dialect = "postgresql"
	}

	return db.ConnectionDetails{
		Host:     fields["hostname"],
		Port:     port,
		User:     fields["username"],
		Password: fields["password"],
		Database: fields["database"],
		Dialect:  dialect,
	}, nil
}

// authenticate ensures an lpass session exists, logging in with
// LASTPASS_USERNAME when there is none.
func (m *Manager) authenticate(ctx context.Context) error {
	if _, err := m.runner.Run(ctx, "lpass", "status"); err == nil {
		return nil
	}

	username := os.Getenv("LASTPASS_USERNAME")
	if username == "" {
		return fmt.Errorf("no lpass session and LASTPASS_USERNAME is not set")
	}

	if _, err := m.runner.Run(ctx, "lpass", "login", username); err != nil {
		return fmt.Errorf("lpass login failed: %w", err)
	}
	return nil
}

func (m *Manager) field(ctx context.Context, args ...string) (string, error) {
	cmdArgs := append([]string{"show", m.Entry}, args...)
	return m.runner.Run(ctx, "lpass", cmdArgs...)
}
