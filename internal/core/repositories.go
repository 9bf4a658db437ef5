package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"composer-sync/internal/types"
)

const DefaultRegistryURL = "https://packagist.org"

// defaultRegistryKeys are the accepted spellings under which a manifest can
// disable the default registry by declaring the key as false.
var defaultRegistryKeys = map[string]struct{}{
	"packagist":     {},
	"packagist.org": {},
}

// ResolveRepositories decodes the manifest's repositories block into named
// repositories and the ordered fallback registry URL list. A malformed
// block never aborts extraction: parse failures are logged and replaced by
// empty accumulators, with only the default registry appended.
func ResolveRepositories(raw json.RawMessage) types.RegistrySet {
	set, err := parseRepositories(raw)
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse repositories block, ignoring it")
		return types.RegistrySet{
			Named:        map[string]types.Repository{},
			RegistryURLs: []string{DefaultRegistryURL},
		}
	}
	return set
}

func parseRepositories(raw json.RawMessage) (types.RegistrySet, error) {
	set := types.RegistrySet{Named: map[string]types.Repository{}}
	defaultEnabled := true
	if len(raw) == 0 {
		set.RegistryURLs = append(set.RegistryURLs, DefaultRegistryURL)
		return set, nil
	}

	entries, err := decodeRepoEntries(raw)
	if err != nil {
		return types.RegistrySet{}, err
	}
	for _, entry := range entries {
		repo := classifyRepository(entry)
		switch repo.Kind {
		case types.RepoKindVcs, types.RepoKindGit, types.RepoKindPath:
			set.Named[repo.Name] = repo
		case types.RepoKindComposer:
			set.RegistryURLs = append(set.RegistryURLs, normalizeRegistryURL(repo.URL))
		case types.RepoKindPackage:
			log.Info().Str("name", repo.Name).Msg("package repositories are not supported, skipping")
		case types.RepoKindDisable:
			defaultEnabled = false
		case types.RepoKindUnsupported:
			log.Info().Str("name", repo.Name).Msg("unknown repository type, skipping")
		}
	}
	if defaultEnabled {
		set.RegistryURLs = append(set.RegistryURLs, DefaultRegistryURL)
	}
	return set, nil
}

// repoEntry is one raw declaration before classification. Value is the
// entry body for object values; Disabled marks a bare false value.
type repoEntry struct {
	Name     string
	Type     string
	URL      string
	Disabled bool
}

// decodeRepoEntries accepts both the sequence and the mapping form of the
// repositories block, preserving declaration order in either case.
func decodeRepoEntries(raw json.RawMessage) ([]repoEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '[':
		var bodies []json.RawMessage
		if err := json.Unmarshal(trimmed, &bodies); err != nil {
			return nil, err
		}
		var entries []repoEntry
		for _, body := range bodies {
			entry, err := decodeRepoBody("", body)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		return entries, nil
	case '{':
		return decodeRepoMapping(trimmed)
	default:
		return nil, fmt.Errorf("repositories block is neither array nor object")
	}
}

// decodeRepoMapping walks the object token stream so the mapping form keeps
// its declaration order, which decides registry URL precedence.
func decodeRepoMapping(raw []byte) ([]repoEntry, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	var entries []repoEntry
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("expected repository name, got %v", keyToken)
		}
		var body json.RawMessage
		if err := decoder.Decode(&body); err != nil {
			return nil, err
		}
		entry, err := decodeRepoBody(key, body)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func decodeRepoBody(name string, body json.RawMessage) (repoEntry, error) {
	trimmed := bytes.TrimSpace(body)
	if string(trimmed) == "false" {
		return repoEntry{Name: name, Disabled: true}, nil
	}
	var decl struct {
		Name string `json:"name"`
		Type string `json:"type"`
		URL  string `json:"url"`
	}
	if err := json.Unmarshal(trimmed, &decl); err != nil {
		return repoEntry{}, err
	}
	if name == "" {
		name = decl.Name
	}
	return repoEntry{Name: name, Type: decl.Type, URL: decl.URL}, nil
}

func classifyRepository(entry repoEntry) types.Repository {
	if entry.Disabled {
		if _, ok := defaultRegistryKeys[entry.Name]; ok {
			return types.Repository{Kind: types.RepoKindDisable, Name: entry.Name}
		}
		return types.Repository{Kind: types.RepoKindUnsupported, Name: entry.Name}
	}
	switch entry.Type {
	case "vcs":
		return types.Repository{Kind: types.RepoKindVcs, Name: entry.Name, URL: entry.URL}
	case "git":
		return types.Repository{Kind: types.RepoKindGit, Name: entry.Name, URL: entry.URL}
	case "path":
		return types.Repository{Kind: types.RepoKindPath, Name: entry.Name, URL: entry.URL}
	case "composer":
		return types.Repository{Kind: types.RepoKindComposer, Name: entry.Name, URL: entry.URL}
	case "package":
		return types.Repository{Kind: types.RepoKindPackage, Name: entry.Name}
	default:
		return types.Repository{Kind: types.RepoKindUnsupported, Name: entry.Name}
	}
}

// normalizeRegistryURL strips the packages.json suffix some manifests carry
// on composer repository URLs.
func normalizeRegistryURL(url string) string {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(url, "/"), "/packages.json")
	return strings.TrimSuffix(trimmed, "/")
}
