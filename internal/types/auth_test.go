package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthPayloadAbsentWhenEmpty(t *testing.T) {
	payload := AuthPayload{}
	assert.True(t, payload.Empty())
	_, ok := payload.Serialize()
	assert.False(t, ok)
}

func TestAuthPayloadSerializeOmitsUnpopulatedBranches(t *testing.T) {
	payload := AuthPayload{}
	payload.AddGithubToken("github.com", "ghp_token")
	serialized, ok := payload.Serialize()
	require.True(t, ok)

	assert.JSONEq(t, `{"github-oauth": {"github.com": "ghp_token"}}`, serialized)
}

func TestAuthPayloadGitlabDomainOrdering(t *testing.T) {
	payload := AuthPayload{}
	payload.AddGitlabToken("gitlab.com", "one")
	payload.AddGitlabToken("gitlab.example.com", "two")
	assert.Equal(t, []string{"gitlab.example.com", "gitlab.com"}, payload.GitlabDomains)
}

func TestHostRuleResolvedHost(t *testing.T) {
	cases := []struct {
		rule HostRule
		want string
	}{
		{HostRule{Host: "explicit.example.com", MatchHost: "other"}, "explicit.example.com"},
		{HostRule{MatchHost: "https://repo.example.com/path"}, "repo.example.com"},
		{HostRule{MatchHost: "repo.example.com"}, "repo.example.com"},
		{HostRule{}, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.rule.ResolvedHost())
	}
}
