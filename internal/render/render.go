package render

import (
	"context"
	"fmt"

	"github.com/aymerick/raymond"

	"github.com/vvka-141/readmegen/internal/files/filesystem"
	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// Source selects the template. Path, when set, wins over Name; an empty
// Source means the default embedded template.
type Source struct {
	Path string
	Name string
}

// String describes the source for log messages.
func (s Source) String() string {
	if s.Path != "" {
		return s.Path
	}
	return "embedded:" + s.name()
}

func (s Source) name() string {
	if s.Name == "" {
		return readmegen.DefaultTemplateName
	}
	return s.Name
}

// Renderer renders Records with one template source.
type Renderer struct {
	fs     filesystem.FileSystem
	logger readmegen.Logger
	source Source
}

// New creates a Renderer. fsys is only used for file-based sources.
func New(fsys filesystem.FileSystem, logger readmegen.Logger, source Source) *Renderer {
	return &Renderer{
		fs:     fsys,
		logger: logger,
		source: source,
	}
}

// Render produces the README text for rec.
//
// Any template failure (missing file, unknown embedded name, syntax error,
// execution error) is logged and reported as readmegen.ErrGenerationFailed.
// A cancelled context is returned as is.
func (r *Renderer) Render(ctx context.Context, rec readmegen.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := r.render(rec)
	if err != nil {
		r.logger.Error("error generating README content: %v", err)
		return "", readmegen.ErrGenerationFailed
	}
	r.logger.Verbose("Rendered %d bytes with template %s", len(out), r.source)
	return out, nil
}

func (r *Renderer) render(rec readmegen.Record) (string, error) {
	src, err := r.load()
	if err != nil {
		return "", err
	}
	return Execute(src, rec)
}

func (r *Renderer) load() (string, error) {
	if r.source.Path == "" {
		return Embedded(r.source.name())
	}
	data, err := r.fs.ReadFile(r.source.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", r.source.Path, err)
	}
	return string(data), nil
}

// Execute renders src against rec and returns the engine's own errors.
func Execute(src string, rec readmegen.Record) (string, error) {
	tpl, err := raymond.Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}
	out, err := tpl.Exec(Context(rec))
	if err != nil {
		return "", fmt.Errorf("exec error: %w", err)
	}
	return out, nil
}

// Context converts rec into the template data. Keys are the camelCase field
// names used in templates.
func Context(rec readmegen.Record) map[string]interface{} {
	features := make([]map[string]string, 0, len(rec.Features))
	for _, f := range rec.Features {
		features = append(features, map[string]string{"name": f.Name, "text": f.Text})
	}
	technologies := make([]map[string]string, 0, len(rec.Technologies))
	for _, t := range rec.Technologies {
		technologies = append(technologies, map[string]string{"name": t.Name, "link": t.Link})
	}

	data := map[string]interface{}{
		readmegen.FieldProjectName.String():    rec.ProjectName,
		readmegen.FieldDescription.String():    rec.Description,
		readmegen.FieldVersion.String():        rec.Version,
		readmegen.FieldAuthor.String():         rec.Author,
		readmegen.FieldLicense.String():        rec.License,
		readmegen.FieldMainLanguage.String():   rec.MainLanguage,
		readmegen.FieldGitHubUsername.String(): rec.GitHubUsername,
		readmegen.FieldRepositoryName.String(): rec.RepositoryName,
		readmegen.FieldLogo.String():           rec.Logo,
		readmegen.FieldPreview.String():        rec.Preview,
	}
	data["features"] = features
	data["technologies"] = technologies
	return data
}
