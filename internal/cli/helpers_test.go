package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/cli/prompt"
	"github.com/thenoetrevino/lista/internal/config/colors"
	"github.com/thenoetrevino/lista/internal/testutil"
)

func credentialCmd(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "x"}
	AddCredentialFlags(cmd)
	AddOutputFlags(cmd)
	cmd.Flags().String("name", "", "")
	_ = cmd.Flags().Parse(args)
	return cmd
}

func stubPrompt(t *testing.T, fn func(*prompt.Credentials, bool, colors.ColorScheme) error) {
	t.Helper()
	t.Setenv(EnvNoPrompt, "")
	orig := askCredentials
	askCredentials = fn
	t.Cleanup(func() { askCredentials = orig })
}

func TestResolveCredentials_Flags(t *testing.T) {
	t.Setenv(EnvEmail, "env@x.com")
	t.Setenv(EnvPassword, "envpw")

	c, err := ResolveCredentials(credentialCmd("--email", "flag@x.com", "--password", "flagpw"), false, *colors.Default())

	require.NoError(t, err)
	assert.Equal(t, "flag@x.com", c.Email)
	assert.Equal(t, "flagpw", c.Password)
}

func TestResolveCredentials_Env(t *testing.T) {
	t.Setenv(EnvEmail, "env@x.com")
	t.Setenv(EnvPassword, "envpw")

	c, err := ResolveCredentials(credentialCmd(), false, *colors.Default())

	require.NoError(t, err)
	assert.Equal(t, "env@x.com", c.Email)
	assert.Equal(t, "envpw", c.Password)
}

func TestResolveCredentials_Prompt(t *testing.T) {
	t.Setenv(EnvEmail, "")
	t.Setenv(EnvPassword, "")
	stubPrompt(t, func(c *prompt.Credentials, withName bool, _ colors.ColorScheme) error {
		assert.True(t, withName)
		c.Name = "Alice"
		c.Password = "typed"
		return nil
	})

	c, err := ResolveCredentials(credentialCmd("--email", "a@x.com"), true, *colors.Default())

	require.NoError(t, err)
	assert.Equal(t, prompt.Credentials{Name: "Alice", Email: "a@x.com", Password: "typed"}, c)
}

func TestResolveCredentials_NotInteractive(t *testing.T) {
	t.Setenv(EnvEmail, "")
	t.Setenv(EnvPassword, "")
	stubPrompt(t, func(*prompt.Credentials, bool, colors.ColorScheme) error {
		return prompt.ErrNotInteractive
	})

	_, err := ResolveCredentials(credentialCmd(), false, *colors.Default())
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestResolveCredentials_NoPrompt(t *testing.T) {
	t.Setenv(EnvEmail, "")
	t.Setenv(EnvPassword, "")
	stubPrompt(t, func(*prompt.Credentials, bool, colors.ColorScheme) error {
		t.Fatal("prompt must not run")
		return nil
	})
	t.Setenv(EnvNoPrompt, "1")

	_, err := ResolveCredentials(credentialCmd("--email", "a@x.com"), false, *colors.Default())
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID([]string{"12"})
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	id, err = ParseTaskID([]string{"#7"})
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	for _, bad := range [][]string{nil, {"0"}, {"-3"}, {"abc"}} {
		_, err := ParseTaskID(bad)
		assert.Error(t, err, "args %v", bad)
	}
}

func TestGetCLIFromContext_UsesInjectedApp(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	a := app.New(repo)

	cliInstance, err := GetCLIFromContext(WithApp(context.Background(), a))

	require.NoError(t, err)
	assert.Same(t, a, cliInstance.App)
	require.NotNil(t, cliInstance.Config)
	assert.NoError(t, cliInstance.Close())
}

func TestSignIn(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.CreateTestUser(t, repo, "Alice", "a@x.com", "secret")
	a := app.New(repo)
	cliInstance, err := GetCLIFromContext(WithApp(context.Background(), a))
	require.NoError(t, err)
	t.Setenv(EnvEmail, "")
	t.Setenv(EnvPassword, "")
	stubPrompt(t, func(*prompt.Credentials, bool, colors.ColorScheme) error { return prompt.ErrNotInteractive })

	cmd := credentialCmd("--email", "a@x.com", "--password", "secret")
	user, err := SignIn(context.Background(), cmd, cliInstance, NewFormatter(cmd))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	cmd = credentialCmd("--email", "a@x.com", "--password", "wrong", "--json")
	_, err = SignIn(context.Background(), cmd, cliInstance, NewFormatter(cmd))
	assert.Equal(t, ExitAuth, ExitCode(err))

	cmd = credentialCmd()
	_, err = SignIn(context.Background(), cmd, cliInstance, NewFormatter(cmd))
	assert.Equal(t, ExitUsage, ExitCode(err))
}
