package resolve

import (
	"fmt"

	"github.com/vvka-141/readmegen/internal/manifest"
	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// Overrides holds the values supplied on the command line. A field is Set
// only when the user passed the corresponding flag.
type Overrides struct {
	ProjectName    readmegen.Optional[string]
	Description    readmegen.Optional[string]
	ProjectVersion readmegen.Optional[string] // --projectVersion, mapped to Record.Version
	Author         readmegen.Optional[string]
	License        readmegen.Optional[string]
	GitHubUsername readmegen.Optional[string]
	RepositoryName readmegen.Optional[string]
	MainLanguage   readmegen.Optional[string]
	Logo           readmegen.Optional[bool]
	Preview        readmegen.Optional[bool]
}

// Explicit returns the fields that came from a command-line flag.
func (o Overrides) Explicit() readmegen.FieldSet {
	set := readmegen.FieldSet{}
	mark := func(f readmegen.Field, isSet bool) {
		if isSet {
			set.Add(f)
		}
	}
	mark(readmegen.FieldProjectName, o.ProjectName.Set)
	mark(readmegen.FieldDescription, o.Description.Set)
	mark(readmegen.FieldVersion, o.ProjectVersion.Set)
	mark(readmegen.FieldAuthor, o.Author.Set)
	mark(readmegen.FieldLicense, o.License.Set)
	mark(readmegen.FieldGitHubUsername, o.GitHubUsername.Set)
	mark(readmegen.FieldRepositoryName, o.RepositoryName.Set)
	mark(readmegen.FieldMainLanguage, o.MainLanguage.Set)
	mark(readmegen.FieldLogo, o.Logo.Set)
	mark(readmegen.FieldPreview, o.Preview.Set)
	return set
}

// Resolve builds the merged Record. defaults is not modified.
func Resolve(defaults readmegen.Record, partial manifest.Partial, overrides Overrides) readmegen.Record {
	pick := func(flag, fromManifest readmegen.Optional[string], fallback string) string {
		return flag.Or(fromManifest.Or(fallback))
	}

	rec := defaults
	rec.ProjectName = pick(overrides.ProjectName, partial.ProjectName, defaults.ProjectName)
	rec.Description = pick(overrides.Description, partial.Description, defaults.Description)
	rec.Version = pick(overrides.ProjectVersion, partial.Version, defaults.Version)
	rec.Author = pick(overrides.Author, partial.Author, defaults.Author)
	rec.License = pick(overrides.License, partial.License, defaults.License)
	rec.GitHubUsername = pick(overrides.GitHubUsername, partial.GitHubUsername, defaults.GitHubUsername)
	rec.RepositoryName = pick(overrides.RepositoryName, partial.RepositoryName, defaults.RepositoryName)
	rec.MainLanguage = overrides.MainLanguage.Or(defaults.MainLanguage)
	rec.Logo = overrides.Logo.Or(defaults.Logo)
	rec.Preview = overrides.Preview.Or(defaults.Preview)

	rec.Features = append([]readmegen.Feature{}, defaults.Features...)
	rec.Technologies = append([]readmegen.Technology{}, defaults.Technologies...)
	return rec
}

// ParseBoolFlag interprets a --logo/--preview value. Only the literal
// strings "true" and "false" are accepted; anything else returns an unset
// Optional and an error describing the rejected value.
func ParseBoolFlag(value string) (readmegen.Optional[bool], error) {
	switch value {
	case "true":
		return readmegen.Some(true), nil
	case "false":
		return readmegen.Some(false), nil
	}
	return readmegen.None[bool](), fmt.Errorf("invalid boolean %q (expected \"true\" or \"false\")", value)
}
