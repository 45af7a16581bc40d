// Package prompt provides the interactive questions the toolbelt asks,
// with retry loops for answers that must name something that exists.
package prompt

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"toolbelt.dev/toolbelt/internal/db"
	"toolbelt.dev/toolbelt/internal/fileutil"
	"toolbelt.dev/toolbelt/internal/output"
)

// Test seams for the terminal check and the survey asker.
var (
	stdinIsTerminal = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
	askOne          = survey.AskOne
)

// IsInteractive checks if we're in an interactive terminal
func IsInteractive() bool {
	// Allow forcing non-interactive mode via environment variable
	if os.Getenv("TOOLBELT_NON_INTERACTIVE") != "" {
		return false
	}
	return stdinIsTerminal()
}

// Confirm asks a yes/no question; anything but an explicit yes is false.
func Confirm(message string) bool {
	if !IsInteractive() {
		return false
	}

	confirmed := false
	prompt := &survey.Confirm{Message: message}
	if err := askOne(prompt, &confirmed); err != nil {
		return false
	}
	return confirmed
}

// ask asks a question and surfaces the terminal error, so retry loops can
// stop when stdin is gone instead of spinning on the default.
func ask(message, defaultValue string) (string, error) {
	if !IsInteractive() {
		return defaultValue, nil
	}

	answer := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := askOne(prompt, &answer); err != nil {
		return defaultValue, err
	}
	return answer, nil
}

// InputWithDefault asks a question; Enter keeps the default.
func InputWithDefault(message, defaultValue string) string {
	answer, err := ask(message, defaultValue)
	if err != nil {
		return defaultValue
	}
	return answer
}

// NotBlank asks until the answer is non-empty.
func NotBlank(message string) (string, error) {
	for {
		answer, err := ask(message, "")
		if err != nil {
			return "", fmt.Errorf("prompt for %q aborted: %w", message, err)
		}
		if answer != "" {
			return answer, nil
		}
		if !IsInteractive() {
			return "", fmt.Errorf("no answer for %q in non-interactive mode", message)
		}
	}
}

// PositiveInt asks for a positive integer, retrying on bad input. Enter keeps
// the default; an answer of zero maps to zeroValue.
func PositiveInt(message string, defaultValue, zeroValue int) (int, error) {
	for {
		answer, err := ask(message, strconv.Itoa(defaultValue))
		if err != nil {
			return 0, fmt.Errorf("prompt for %q aborted: %w", message, err)
		}

		n, err := parsePositiveInt(answer)
		if err != nil {
			if !IsInteractive() {
				return 0, err
			}
			fmt.Println("That's not a positive integer. Please try again.")
			continue
		}
		if n == 0 {
			return zeroValue, nil
		}
		return n, nil
	}
}

// parsePositiveInt parses a non-negative integer.
func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return n, nil
}

// EnsureSchema asks for a schema until one exists on the connection, and
// returns it with its tables.
func EnsureSchema(ctx context.Context, q db.Querier, defaultSchema string) (string, []db.TableInfo, error) {
	for {
		schema, err := ask("What is the schema?", defaultSchema)
		if err != nil {
			return "", nil, fmt.Errorf("schema prompt aborted: %w", err)
		}

		exists, tables, err := db.SchemaExists(ctx, q, schema)
		if err != nil {
			return "", nil, err
		}
		if exists {
			return schema, tables, nil
		}
		if !IsInteractive() {
			return "", nil, fmt.Errorf("schema %q does not exist", schema)
		}
	}
}

// PickFile asks for a directory and filename until the file exists. The
// visible files of the chosen directory are listed to help.
func PickFile(splog *output.Splog, fileMessage, dirMessage, defaultDir string) (name, dir, path string, err error) {
	for {
		dir, err = ask(dirMessage, defaultDir)
		if err != nil {
			return "", "", "", fmt.Errorf("directory prompt aborted: %w", err)
		}

		if files, listErr := fileutil.VisibleFiles(dir); listErr == nil && len(files) > 0 {
			splog.Info("Here are the files in %s:", dir)
			for _, file := range files {
				splog.Info("  %s", file)
			}
			splog.Newline()
		}

		name, err = ask(fileMessage, "")
		if err != nil {
			return "", "", "", fmt.Errorf("file prompt aborted: %w", err)
		}
		path, err = fileutil.FileExists(dir, name)
		if err == nil {
			return name, dir, path, nil
		}
		if !IsInteractive() {
			return "", "", "", err
		}
		splog.Warn("%v", err)
	}
}
