package ports

import "composer-sync/internal/types"

// HostRulesPort is the credential-rule store. Rules are read-only; the
// assembler re-derives the payload on every call.
type HostRulesPort interface {
	// Find returns the first rule matching the host type and, when url is
	// non-empty, whose match host applies to it.
	Find(hostType string, url string) (types.HostRule, bool)

	// FindAll returns every rule of the given host type, in rule order.
	FindAll(hostType string) []types.HostRule
}
