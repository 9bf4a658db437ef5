package types

import "encoding/json"

// BasicCredential is a username/password pair for http-basic registry auth.
type BasicCredential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthPayload is the tool-specific credential bundle, keyed by scheme and
// then by host. Every nested map is absent until first write, and an
// unpopulated payload serializes to absent, never to an empty object.
type AuthPayload struct {
	GithubOauth   map[string]string          `json:"github-oauth,omitempty"`
	GitlabToken   map[string]string          `json:"gitlab-token,omitempty"`
	GitlabDomains []string                   `json:"gitlab-domains,omitempty"`
	HTTPBasic     map[string]BasicCredential `json:"http-basic,omitempty"`
	Bearer        map[string]string          `json:"bearer,omitempty"`
}

func (p *AuthPayload) AddGithubToken(host string, token string) {
	if p.GithubOauth == nil {
		p.GithubOauth = map[string]string{}
	}
	p.GithubOauth[host] = token
}

// AddGitlabToken records the token and prepends the host to the allowed
// domain list, keeping the most recently added host first.
func (p *AuthPayload) AddGitlabToken(host string, token string) {
	if p.GitlabToken == nil {
		p.GitlabToken = map[string]string{}
	}
	p.GitlabToken[host] = token
	p.GitlabDomains = append([]string{host}, p.GitlabDomains...)
}

func (p *AuthPayload) AddBasic(host string, username string, password string) {
	if p.HTTPBasic == nil {
		p.HTTPBasic = map[string]BasicCredential{}
	}
	p.HTTPBasic[host] = BasicCredential{Username: username, Password: password}
}

func (p *AuthPayload) AddBearer(host string, token string) {
	if p.Bearer == nil {
		p.Bearer = map[string]string{}
	}
	p.Bearer[host] = token
}

func (p AuthPayload) Empty() bool {
	return len(p.GithubOauth) == 0 &&
		len(p.GitlabToken) == 0 &&
		len(p.HTTPBasic) == 0 &&
		len(p.Bearer) == 0
}

// Serialize returns the JSON form of the payload, or ok=false when nothing
// was collected.
func (p AuthPayload) Serialize() (string, bool) {
	if p.Empty() {
		return "", false
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", false
	}
	return string(data), true
}
