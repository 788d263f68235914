package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/readmegen/internal/files/filesystem"
	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// Partial is the manifest's contribution to the Record. Unset fields mean
// the manifest said nothing, so lower-precedence sources apply.
type Partial struct {
	ProjectName    readmegen.Optional[string]
	Description    readmegen.Optional[string]
	Version        readmegen.Optional[string]
	Author         readmegen.Optional[string]
	License        readmegen.Optional[string]
	GitHubUsername readmegen.Optional[string]
	RepositoryName readmegen.Optional[string]
}

// Empty reports whether no field is set.
func (p Partial) Empty() bool {
	return p == Partial{}
}

// looseString decodes a JSON string and treats any other JSON value as
// absent, so one off-type field does not make the whole manifest unreadable.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = looseString(v)
	return nil
}

type packageFile struct {
	Name        looseString     `json:"name"`
	Description looseString     `json:"description"`
	Version     looseString     `json:"version"`
	License     looseString     `json:"license"`
	Author      json.RawMessage `json:"author"`
	Repository  json.RawMessage `json:"repository"`
	Homepage    looseString     `json:"homepage"`
}

// repositoryURL returns repository.url, or the repository itself when it is
// a plain string.
func (p packageFile) repositoryURL() string {
	raw := bytes.TrimSpace(p.Repository)
	if len(raw) == 0 {
		return ""
	}
	if raw[0] == '"' {
		var s string
		_ = json.Unmarshal(raw, &s)
		return s
	}
	var obj struct {
		URL looseString `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	return string(obj.URL)
}

// Parse derives a Partial from package.json content. Every field of a
// successfully parsed manifest is set, possibly to an empty string.
func Parse(data []byte, domains HostingDomains) (Partial, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return Partial{}, errors.New("manifest is not a JSON object")
	}

	var pkg packageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return Partial{}, err
	}

	projectName := string(pkg.Name)
	version := string(pkg.Version)
	if version == "" {
		version = readmegen.DefaultVersion
	}
	license := string(pkg.License)
	if license == "" {
		license = readmegen.ManifestDefaultLicense
	}
	repositoryName := projectName

	var author, username string
	if a := decodeAuthor(pkg.Author); a != nil {
		author = a.Name()
		username = usernameFromAuthor(author)
	}

	url := pkg.repositoryURL()
	if url == "" {
		url = string(pkg.Homepage)
	}
	if user, repo, ok := domains.ParseURL(url); ok {
		username = user
		repositoryName = repo
	}

	if author == "" && username != "" {
		author = username
	}

	return Partial{
		ProjectName:    readmegen.Some(projectName),
		Description:    readmegen.Some(string(pkg.Description)),
		Version:        readmegen.Some(version),
		Author:         readmegen.Some(author),
		License:        readmegen.Some(license),
		GitHubUsername: readmegen.Some(username),
		RepositoryName: readmegen.Some(repositoryName),
	}, nil
}

// Extractor reads package.json from a project directory.
type Extractor struct {
	fs      filesystem.FileSystem
	logger  readmegen.Logger
	domains HostingDomains
}

// NewExtractor creates an Extractor. A nil domains list falls back to
// readmegen.DefaultHostingDomains.
func NewExtractor(fsys filesystem.FileSystem, logger readmegen.Logger, domains []string) *Extractor {
	if len(domains) == 0 {
		domains = readmegen.DefaultHostingDomains
	}
	return &Extractor{fs: fsys, logger: logger, domains: HostingDomains(domains)}
}

// Extract reads <dir>/package.json. Read and parse failures are logged as a
// warning and produce an empty Partial; they are never returned.
func (e *Extractor) Extract(ctx context.Context, dir string) Partial {
	if err := ctx.Err(); err != nil {
		return Partial{}
	}

	path := filepath.Join(dir, readmegen.ManifestFileName)
	partial, err := e.extract(path)
	if err != nil {
		e.logger.Warn("Could not read or parse %s. Some information may need to be entered manually.", readmegen.ManifestFileName)
		e.logger.Verbose("manifest %s: %v", path, err)
		return Partial{}
	}

	e.logger.Verbose("Extracted metadata from %s", path)
	return partial
}

func (e *Extractor) extract(path string) (Partial, error) {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return Partial{}, fmt.Errorf("failed to read: %w", err)
	}
	partial, err := Parse(data, e.domains)
	if err != nil {
		return Partial{}, fmt.Errorf("failed to parse: %w", err)
	}
	return partial, nil
}
