package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"composer-sync/internal/types"
)

const hostRulesYAML = `hostRules:
  - hostType: github
    matchHost: api.github.com
    token: ghp_example
  - hostType: gitlab
    matchHost: gitlab.com
    token: glpat-one
  - hostType: gitlab
    matchHost: gitlab.example.com
    token: glpat-two
  - hostType: packagist
    matchHost: repo.example.com
    username: user
    password: secret
`

func writeHostRules(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "host-rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(hostRulesYAML), 0644))
	return path
}

func TestLoadHostRulesFile(t *testing.T) {
	rules, err := LoadHostRulesFile(writeHostRules(t))
	require.NoError(t, err)

	rule, ok := rules.Find("github", "https://api.github.com/")
	require.True(t, ok)
	assert.Equal(t, "ghp_example", rule.Token)

	all := rules.FindAll("gitlab")
	require.Len(t, all, 2)
	assert.Equal(t, "glpat-one", all[0].Token)
	assert.Equal(t, "glpat-two", all[1].Token)
}

func TestFindScopesByMatchHost(t *testing.T) {
	rules := NewHostRulesAdapter([]types.HostRule{
		{HostType: "github", MatchHost: "ghe.example.com", Token: "enterprise"},
		{HostType: "github", MatchHost: "api.github.com", Token: "cloud"},
	})
	rule, ok := rules.Find("github", "https://api.github.com/")
	require.True(t, ok)
	assert.Equal(t, "cloud", rule.Token)

	_, ok = rules.Find("github", "https://unrelated.example.com/")
	assert.False(t, ok)
}

func TestFindEmptyURLMatchesAnyRuleOfType(t *testing.T) {
	rules := NewHostRulesAdapter([]types.HostRule{
		{HostType: "packagist", MatchHost: "repo.example.com", Token: "tok"},
	})
	rule, ok := rules.Find("packagist", "")
	require.True(t, ok)
	assert.Equal(t, "tok", rule.Token)
}

func TestLoadHostRulesFileMissing(t *testing.T) {
	_, err := LoadHostRulesFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
