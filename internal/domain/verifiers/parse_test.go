package verifiers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jenkins-infra/hosting-checker/internal/domain/verifiers"
)

func TestParseRepositoryURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{
			name:      "full GitHub URL",
			value:     "https://github.com/alice/cool-thing-plugin",
			wantOwner: "alice",
			wantRepo:  "cool-thing-plugin",
			wantOK:    true,
		},
		{
			name:      "bare owner and repo",
			value:     "alice/cool-thing-plugin",
			wantOwner: "alice",
			wantRepo:  "cool-thing-plugin",
			wantOK:    true,
		},
		{
			name:      "URL with .git suffix keeps the suffix",
			value:     "https://github.com/alice/cool-thing-plugin.git",
			wantOwner: "alice",
			wantRepo:  "cool-thing-plugin.git",
			wantOK:    true,
		},
		{
			name:   "empty value",
			value:  "",
			wantOK: false,
		},
		{
			name:   "no slash",
			value:  "cool-thing-plugin",
			wantOK: false,
		},
		{
			name:   "whitespace inside",
			value:  "https://github.com/alice/cool thing",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("should handle "+tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			owner, repo, ok := verifiers.ParseRepositoryURL(tt.value)

			// then
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOwner, owner)
				assert.Equal(t, tt.wantRepo, repo)
			}
		})
	}
}

func TestSplitCommitters(t *testing.T) {
	t.Parallel()

	t.Run("should split on commas, semicolons and newlines", func(t *testing.T) {
		t.Parallel()

		// given
		value := "alice, bob;carol\ndave"

		// when
		names := verifiers.SplitCommitters(value)

		// then
		assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, names)
	})

	t.Run("should drop empty entries", func(t *testing.T) {
		t.Parallel()

		// given
		value := "alice,, ;\n,bob"

		// when
		names := verifiers.SplitCommitters(value)

		// then
		assert.Equal(t, []string{"alice", "bob"}, names)
	})

	t.Run("should return nothing for a blank value", func(t *testing.T) {
		t.Parallel()

		// when
		names := verifiers.SplitCommitters("   ")

		// then
		assert.Empty(t, names)
	})
}
