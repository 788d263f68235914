package readmegen

// Feature is one entry of the README feature list.
type Feature struct {
	Name string
	Text string
}

// Technology is one entry of the README technology list.
type Technology struct {
	Name string
	Link string
}

// Record is the project description threaded through the generation pipeline.
//
// A Record starts from DefaultRecord, is overlaid with manifest data and
// command-line flags by the resolver, may be edited by the interactive
// collector, and is finally consumed read-only by the renderer.
type Record struct {
	ProjectName    string
	Description    string
	Version        string
	Author         string
	License        string
	MainLanguage   string
	GitHubUsername string
	RepositoryName string
	Features       []Feature
	Technologies   []Technology
	Logo           bool
	Preview        bool
}

// DefaultRecord returns the built-in defaults every generation starts from.
func DefaultRecord() Record {
	return Record{
		Version:      DefaultVersion,
		License:      DefaultLicense,
		Features:     []Feature{},
		Technologies: []Technology{},
	}
}

// Optional carries a value together with whether it was supplied at all.
// It lets callers tell an explicit empty value apart from an absent one.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Or returns the value if set, otherwise fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}

// Field identifies a scalar Record field.
type Field int

const (
	FieldProjectName Field = iota
	FieldDescription
	FieldVersion
	FieldAuthor
	FieldLicense
	FieldGitHubUsername
	FieldRepositoryName
	FieldMainLanguage
	FieldLogo
	FieldPreview
)

var fieldNames = map[Field]string{
	FieldProjectName:    "projectName",
	FieldDescription:    "description",
	FieldVersion:        "version",
	FieldAuthor:         "author",
	FieldLicense:        "license",
	FieldGitHubUsername: "githubUsername",
	FieldRepositoryName: "repositoryName",
	FieldMainLanguage:   "mainLanguage",
	FieldLogo:           "logo",
	FieldPreview:        "preview",
}

// String returns the template variable name of the field.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// FieldSet is a set of fields, typically the ones supplied explicitly on the
// command line.
type FieldSet map[Field]struct{}

// Add inserts f into the set.
func (s FieldSet) Add(f Field) {
	s[f] = struct{}{}
}

// Has reports whether f is in the set. A nil set contains nothing.
func (s FieldSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}
