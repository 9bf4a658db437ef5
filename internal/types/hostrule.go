package types

import "strings"

// HostRule is one credential rule from the rule store. MatchHost scopes the
// rule to a host or URL prefix; an empty MatchHost matches any URL of the
// host type.
type HostRule struct {
	HostType  string `yaml:"hostType"`
	MatchHost string `yaml:"matchHost,omitempty"`
	Host      string `yaml:"host,omitempty"`
	Username  string `yaml:"username,omitempty"`
	Password  string `yaml:"password,omitempty"`
	Token     string `yaml:"token,omitempty"`
}

// ResolvedHost returns the host credentials should be emitted under: the
// explicit Host when set, otherwise MatchHost stripped of scheme and path.
func (r HostRule) ResolvedHost() string {
	if r.Host != "" {
		return r.Host
	}
	host := r.MatchHost
	if idx := strings.Index(host, "://"); idx >= 0 {
		host = host[idx+len("://"):]
	}
	if idx := strings.IndexByte(host, '/'); idx >= 0 {
		host = host[:idx]
	}
	return host
}
