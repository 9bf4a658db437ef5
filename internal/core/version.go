package core

import (
	"strings"

	semver "github.com/Masterminds/semver/v3"
)

// IsStableVersion reports whether value is an exact resolved version rather
// than a branch or ref alias (dev-main, 1.x-dev). Only such versions are
// recorded as locked versions.
func IsStableVersion(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "dev-") || strings.HasSuffix(trimmed, "-dev") {
		return false
	}
	_, err := semver.NewVersion(trimmed)
	return err == nil
}

// NormalizeVersion strips the leading v some locks carry on otherwise plain
// version strings.
func NormalizeVersion(value string) string {
	return strings.TrimPrefix(strings.TrimSpace(value), "v")
}
