package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"composer-sync/internal/ports"
	"composer-sync/internal/types"
)

// HostRulesAdapter serves credential rules from an in-memory list, loaded
// either from a YAML rules file or supplied directly.
type HostRulesAdapter struct {
	rules []types.HostRule
}

type hostRulesFile struct {
	HostRules []types.HostRule `yaml:"hostRules"`
}

func NewHostRulesAdapter(rules []types.HostRule) HostRulesAdapter {
	return HostRulesAdapter{rules: rules}
}

func LoadHostRulesFile(path string) (HostRulesAdapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HostRulesAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("host rules file not found").
			WithCause(err)
	}
	var file hostRulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return HostRulesAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse host rules yaml").
			WithCause(err)
	}
	return HostRulesAdapter{rules: file.HostRules}, nil
}

func (a HostRulesAdapter) Find(hostType string, url string) (types.HostRule, bool) {
	for _, rule := range a.rules {
		if rule.HostType != hostType {
			continue
		}
		if url == "" || rule.MatchHost == "" || matchesURL(rule.MatchHost, url) {
			return rule, true
		}
	}
	return types.HostRule{}, false
}

func (a HostRulesAdapter) FindAll(hostType string) []types.HostRule {
	var matched []types.HostRule
	for _, rule := range a.rules {
		if rule.HostType == hostType {
			matched = append(matched, rule)
		}
	}
	return matched
}

// matchesURL accepts a bare host or a URL prefix as the rule's match host.
func matchesURL(matchHost string, url string) bool {
	if strings.Contains(matchHost, "://") {
		return strings.HasPrefix(url, matchHost)
	}
	return strings.Contains(url, matchHost)
}

var _ ports.HostRulesPort = HostRulesAdapter{}
