package generator

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vvka-141/readmegen/internal/collect"
	"github.com/vvka-141/readmegen/internal/files/filesystem"
	"github.com/vvka-141/readmegen/internal/manifest"
	"github.com/vvka-141/readmegen/internal/render"
	"github.com/vvka-141/readmegen/internal/resolve"
	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// OutputFileMode is the permission used for the written document.
const OutputFileMode filesystem.FileMode = 0o644

// Options configures one generation run.
type Options struct {
	// Dir is the project directory holding package.json.
	Dir string

	// Output is the document path. Relative paths are resolved against Dir;
	// empty means README.md.
	Output string

	// Interactive enables the prompt stage.
	Interactive bool

	Overrides      resolve.Overrides
	Template       render.Source
	HostingDomains []string
	ListPolicy     collect.SecondaryPolicy
}

// OutputPath returns the absolute or Dir-relative document path.
func (o Options) OutputPath() string {
	output := o.Output
	if output == "" {
		output = readmegen.DefaultOutputFileName
	}
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(o.Dir, output)
}

// Result describes a finished run.
type Result struct {
	Path    string
	Record  readmegen.Record
	Written bool
}

// Generator wires the pipeline stages to their collaborators.
type Generator struct {
	fs       filesystem.FileSystem
	prompter readmegen.Prompter
	approver readmegen.Approver
	logger   readmegen.Logger
	out      io.Writer
}

// New creates a Generator. prompter is only used when Options.Interactive
// is set; approver is consulted whenever the output file already exists.
func New(
	fsys filesystem.FileSystem,
	prompter readmegen.Prompter,
	approver readmegen.Approver,
	logger readmegen.Logger,
	out io.Writer,
) *Generator {
	return &Generator{
		fs:       fsys,
		prompter: prompter,
		approver: approver,
		logger:   logger,
		out:      out,
	}
}

// Run generates the document described by opts.
//
// The returned Result carries the final Record even when a later stage
// fails. Errors match readmegen.ErrProjectNameRequired,
// readmegen.ErrApprovalDenied, readmegen.ErrGenerationFailed or
// readmegen.ErrWriteFailed where applicable.
func (g *Generator) Run(ctx context.Context, opts Options) (Result, error) {
	path := opts.OutputPath()
	name := filepath.Base(path)
	res := Result{Path: path}

	fmt.Fprintf(g.out, "\n--- Let's generate your %s! ---\n\n", name)

	partial := manifest.NewExtractor(g.fs, g.logger, opts.HostingDomains).Extract(ctx, opts.Dir)
	res.Record = resolve.Resolve(readmegen.DefaultRecord(), partial, opts.Overrides)
	g.logger.Verbose("Resolved record for %q (explicit fields: %d)", res.Record.ProjectName, len(opts.Overrides.Explicit()))

	if opts.Interactive {
		c := collect.New(g.prompter, g.out, g.logger, opts.ListPolicy)
		if err := c.Collect(ctx, &res.Record, opts.Overrides.Explicit()); err != nil {
			return res, err
		}
	} else {
		fmt.Fprintln(g.out, "Interactive prompts are skipped. Using provided/default values.")
	}

	if strings.TrimSpace(res.Record.ProjectName) == "" {
		return res, fmt.Errorf("%w: pass --projectName or set \"name\" in %s", readmegen.ErrProjectNameRequired, readmegen.ManifestFileName)
	}

	fmt.Fprintf(g.out, "\n--- Generating %s... ---\n", name)

	if err := g.approveOverwrite(ctx, path); err != nil {
		return res, err
	}

	content, err := render.New(g.fs, g.logger, opts.Template).Render(ctx, res.Record)
	if err != nil {
		return res, err
	}

	if err := filesystem.WriteFileAtomic(g.fs, path, []byte(content), OutputFileMode); err != nil {
		return res, fmt.Errorf("%w: %v", readmegen.ErrWriteFailed, err)
	}
	res.Written = true

	fmt.Fprintf(g.out, "✅ %s generated successfully at: %s\n", name, path)
	return res, nil
}

// approveOverwrite returns nil when path is free or the approver allows
// replacing it.
func (g *Generator) approveOverwrite(ctx context.Context, path string) error {
	exists, err := g.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		return nil
	}

	approved, err := g.approver.RequestApproval(ctx, path)
	if err != nil {
		return err
	}
	if !approved {
		fmt.Fprintf(g.out, "Operation cancelled. %s not overwritten.\n", filepath.Base(path))
		return readmegen.ErrApprovalDenied
	}
	return nil
}
