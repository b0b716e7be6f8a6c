package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should load values from a config file", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("JIRA_BASE_URL", "")
		content := `
jira:
  base_url: https://issues.example.org
  username: hosting-bot
  token: secret
github:
  token: ghp_abc123
listen: ":9090"
debug: true
`
		path := filepath.Join(t.TempDir(), "hosting-checker.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://issues.example.org", settings.Jira.BaseURL)
		assert.Equal(t, "hosting-bot", settings.Jira.Username)
		assert.Equal(t, "secret", settings.Jira.Token)
		assert.Equal(t, "ghp_abc123", settings.GitHub.Token)
		assert.Equal(t, ":9090", settings.Listen)
		assert.True(t, settings.Debug)
	})

	t.Run("should fall back to environment variables without a file", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("JIRA_BASE_URL", "https://issues.example.org")
		t.Setenv("JIRA_USERNAME", "hosting-bot")
		t.Setenv("JIRA_TOKEN", "secret")
		t.Setenv("GITHUB_TOKEN", "ghp_env")

		// when
		settings, err := entities.NewSettings("")

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://issues.example.org", settings.Jira.BaseURL)
		assert.Equal(t, "ghp_env", settings.GitHub.Token)
		assert.Equal(t, ":8080", settings.Listen)
	})

	t.Run("should expand env placeholders in the config file", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_HOSTING_TOKEN", "expanded-secret")
		content := `
jira:
  base_url: https://issues.example.org
  token: ${TEST_HOSTING_TOKEN}
`
		path := filepath.Join(t.TempDir(), "hosting-checker.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "expanded-secret", settings.Jira.Token)
	})

	t.Run("should fail without an issue tracker base URL", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("JIRA_BASE_URL", "")

		// when
		settings, err := entities.NewSettings("")

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "base URL")
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveToken(t *testing.T) {
	t.Run("should return inline values unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "ghp_abc123xyz"

		// when
		result := entities.ResolveToken(raw)

		// then
		assert.Equal(t, "ghp_abc123xyz", result)
	})

	t.Run("should expand environment variable references", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_TOKEN_RESOLVE", "my-secret-token")
		raw := "${TEST_TOKEN_RESOLVE}"

		// when
		result := entities.ResolveToken(raw)

		// then
		assert.Equal(t, "my-secret-token", result)
	})

	t.Run("should read the value from a file path", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("file-secret\n"), 0o600))

		// when
		result := entities.ResolveToken(path)

		// then
		assert.Equal(t, "file-secret", result)
	})
}
