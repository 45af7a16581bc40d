package prompt

import (
	"io"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/require"
)

// forceInteractive makes the prompts believe stdin is a terminal and replaces
// the asker, restoring both when the test ends.
func forceInteractive(t *testing.T, fakeAsk func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error) {
	t.Helper()
	t.Setenv("TOOLBELT_NON_INTERACTIVE", "")

	origTerminal, origAsk := stdinIsTerminal, askOne
	stdinIsTerminal = func() bool { return true }
	askOne = fakeAsk
	t.Cleanup(func() {
		stdinIsTerminal = origTerminal
		askOne = origAsk
	})
}

func TestParsePositiveInt(t *testing.T) {
	t.Parallel()

	t.Run("accepts positive integers", func(t *testing.T) {
		t.Parallel()
		n, err := parsePositiveInt("42")
		require.NoError(t, err)
		require.Equal(t, 42, n)
	})

	t.Run("accepts zero", func(t *testing.T) {
		t.Parallel()
		n, err := parsePositiveInt("0")
		require.NoError(t, err)
		require.Equal(t, 0, n)
	})

	t.Run("rejects negatives", func(t *testing.T) {
		t.Parallel()
		_, err := parsePositiveInt("-3")
		require.Error(t, err)
	})

	t.Run("rejects non-numbers", func(t *testing.T) {
		t.Parallel()
		_, err := parsePositiveInt("ten")
		require.Error(t, err)
	})
}

func TestNonInteractiveDefaults(t *testing.T) {
	t.Setenv("TOOLBELT_NON_INTERACTIVE", "1")

	t.Run("InputWithDefault returns the default", func(t *testing.T) {
		require.Equal(t, "analytics", InputWithDefault("What is the schema?", "analytics"))
	})

	t.Run("Confirm is false", func(t *testing.T) {
		require.False(t, Confirm("Continue?"))
	})

	t.Run("PositiveInt maps zero to the substitute", func(t *testing.T) {
		n, err := PositiveInt("How many rows?", 0, 1000)
		require.NoError(t, err)
		require.Equal(t, 1000, n)
	})

	t.Run("PositiveInt returns the default otherwise", func(t *testing.T) {
		n, err := PositiveInt("How many rows?", 25, 1000)
		require.NoError(t, err)
		require.Equal(t, 25, n)
	})

	t.Run("NotBlank fails instead of looping", func(t *testing.T) {
		_, err := NotBlank("What is the table?")
		require.Error(t, err)
	})
}

func TestPromptsSurfaceTerminalErrors(t *testing.T) {
	t.Run("NotBlank stops when stdin is gone", func(t *testing.T) {
		forceInteractive(t, func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
			return io.EOF
		})

		_, err := NotBlank("What is the table?")
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("PositiveInt stops when stdin is gone", func(t *testing.T) {
		forceInteractive(t, func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
			return io.EOF
		})

		_, err := PositiveInt("How many rows?", 25, 1000)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("answers still flow through", func(t *testing.T) {
		forceInteractive(t, func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
			*(response.(*string)) = "events"
			return nil
		})

		answer, err := NotBlank("What is the table?")
		require.NoError(t, err)
		require.Equal(t, "events", answer)
	})
}
