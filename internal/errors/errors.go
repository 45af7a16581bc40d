// Package errors provides sentinel errors and custom error types for the toolbelt.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrClusterNotFound indicates that a cluster nickname is not configured
	ErrClusterNotFound = errors.New("cluster not found")

	// ErrSchemaNotFound indicates that a database schema does not exist
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrTableNotFound indicates that a table does not exist in a schema
	ErrTableNotFound = errors.New("table not found")

	// ErrBlankFilename indicates that an empty filename was supplied
	ErrBlankFilename = errors.New("blank filename")

	// ErrEngineMismatch indicates that a cluster runs an unexpected database engine
	ErrEngineMismatch = errors.New("unexpected database engine")
)

// ClusterNotFoundError represents an error when a cluster nickname is not configured
type ClusterNotFoundError struct {
	Nickname string
	Valid    []string
}

func (e *ClusterNotFoundError) Error() string {
	return fmt.Sprintf("unknown cluster nickname %q (valid nicknames: %s)", e.Nickname, strings.Join(e.Valid, ", "))
}

// Is returns true if the target error is ErrClusterNotFound
func (e *ClusterNotFoundError) Is(target error) bool {
	return target == ErrClusterNotFound
}

// NewClusterNotFoundError creates a new ClusterNotFoundError
func NewClusterNotFoundError(nickname string, valid []string) *ClusterNotFoundError {
	return &ClusterNotFoundError{Nickname: nickname, Valid: valid}
}

// TableNotFoundError represents an error when no table matches a base name in a schema
type TableNotFoundError struct {
	Schema string
	Table  string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("no table matching %q in schema %q", e.Table, e.Schema)
}

// Is returns true if the target error is ErrTableNotFound
func (e *TableNotFoundError) Is(target error) bool {
	return target == ErrTableNotFound
}

// NewTableNotFoundError creates a new TableNotFoundError
func NewTableNotFoundError(schema, table string) *TableNotFoundError {
	return &TableNotFoundError{Schema: schema, Table: table}
}

// CommandError represents an error from an external command execution
type CommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
