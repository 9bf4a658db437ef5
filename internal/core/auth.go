package core

import (
	"strings"

	"composer-sync/internal/ports"
	"composer-sync/internal/types"
)

const (
	githubAPIURL  = "https://api.github.com/"
	githubHostURL = "https://github.com"
	githubHost    = "github.com"

	personalAccessTokenPrefix = "ghp_"
)

// AuthAssembler builds the resolver's credential payload from the rule
// store. It holds no state of its own; the payload is re-derived on every
// call and never persisted.
type AuthAssembler struct {
	Rules ports.HostRulesPort
}

func NewAuthAssembler(rules ports.HostRulesPort) AuthAssembler {
	return AuthAssembler{Rules: rules}
}

// Assemble queries credential rules for the supported host categories and
// returns the serialized payload, or ok=false when nothing was collected.
func (a AuthAssembler) Assemble() (string, bool) {
	if a.Rules == nil {
		return "", false
	}
	payload := types.AuthPayload{}

	githubToken := ""
	if rule, ok := a.Rules.Find("github", githubAPIURL); ok {
		githubToken = rule.Token
	}
	gitTagsToken := ""
	if rule, ok := a.Rules.Find("git-tags", githubHostURL); ok {
		gitTagsToken = rule.Token
	}
	if token := pickGithubToken(githubToken, gitTagsToken); token != "" {
		payload.AddGithubToken(githubHost, token)
	}

	for _, rule := range a.Rules.FindAll("gitlab") {
		host := rule.ResolvedHost()
		if host == "" || rule.Token == "" {
			continue
		}
		payload.AddGitlabToken(host, rule.Token)
	}

	for _, rule := range a.Rules.FindAll("packagist") {
		host := rule.ResolvedHost()
		if host == "" {
			continue
		}
		switch {
		case rule.Username != "" && rule.Password != "":
			payload.AddBasic(host, rule.Username, rule.Password)
		case rule.Token != "":
			payload.AddBearer(host, rule.Token)
		}
	}

	return payload.Serialize()
}

// pickGithubToken chooses between the code-hosting token and the
// git-source-tag token for the same provider. The two call sites may hold
// tokens issued for different scopes; a personal access token is safe to
// reuse for both, so a PAT-shaped token wins whenever the two differ.
func pickGithubToken(githubToken string, gitTagsToken string) string {
	if isPersonalAccessToken(gitTagsToken) {
		return gitTagsToken
	}
	if isPersonalAccessToken(githubToken) {
		return githubToken
	}
	if gitTagsToken != "" {
		return gitTagsToken
	}
	return githubToken
}

func isPersonalAccessToken(token string) bool {
	return strings.HasPrefix(token, personalAccessTokenPrefix)
}
