package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/readmegen/internal/collect"
	"github.com/vvka-141/readmegen/internal/config"
	"github.com/vvka-141/readmegen/internal/files/filesystem"
	"github.com/vvka-141/readmegen/internal/generator"
	"github.com/vvka-141/readmegen/internal/logging"
	"github.com/vvka-141/readmegen/internal/render"
	"github.com/vvka-141/readmegen/internal/resolve"
	"github.com/vvka-141/readmegen/internal/tui"
	"github.com/vvka-141/readmegen/internal/ui"
	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// Flag names shared by registration and change detection.
const (
	flagProjectName    = "projectName"
	flagDescription    = "description"
	flagProjectVersion = "projectVersion"
	flagAuthor         = "author"
	flagLicense        = "license"
	flagGitHubUsername = "githubUsername"
	flagRepositoryName = "repositoryName"
	flagMainLanguage   = "mainLanguage"
	flagLogo           = "logo"
	flagPreview        = "preview"
	flagTemplate       = "template"
	flagTemplateName   = "template-name"
	flagOutput         = "output"
)

type generateFlags struct {
	projectName    string
	description    string
	projectVersion string
	author         string
	license        string
	githubUsername string
	repositoryName string
	mainLanguage   string
	logo           string
	preview        string

	noPrompts    bool
	force        bool
	template     string
	templateName string
	output       string
	dir          string
	configPath   string
}

func registerGenerateFlags(cmd *cobra.Command, f *generateFlags) {
	flags := cmd.Flags()
	flags.StringVarP(&f.projectName, flagProjectName, "p", "", "Project name")
	flags.StringVarP(&f.description, flagDescription, "d", "", "Project description")
	flags.StringVar(&f.projectVersion, flagProjectVersion, "", "Project version")
	flags.StringVarP(&f.author, flagAuthor, "a", "", "Author name")
	flags.StringVarP(&f.license, flagLicense, "l", "", "Project license (e.g., MIT, ISC)")
	flags.StringVarP(&f.githubUsername, flagGitHubUsername, "g", "", "GitHub username")
	flags.StringVarP(&f.repositoryName, flagRepositoryName, "r", "", "Repository name on GitHub")
	flags.StringVarP(&f.mainLanguage, flagMainLanguage, "m", "", "Main programming language")
	flags.StringVar(&f.logo, flagLogo, "", "Include a logo section (true/false)")
	flags.StringVar(&f.preview, flagPreview, "", "Include a preview section (true/false)")

	flags.BoolVar(&f.noPrompts, "no-prompts", false, "Skip all interactive prompts and use default/provided values")
	flags.BoolVarP(&f.force, "force", "f", false, "Force overwrite existing README.md without confirmation")
	flags.StringVarP(&f.template, flagTemplate, "t", "", "Path to a Handlebars template file")
	flags.StringVar(&f.templateName, flagTemplateName, "", "Embedded template to use (see 'readmegen templates list')")
	flags.StringVarP(&f.output, flagOutput, "o", "", "Output file, relative to --dir (default \"README.md\")")
	flags.StringVar(&f.dir, "dir", "", "Project directory containing package.json (default: current directory)")
	flags.StringVar(&f.configPath, "config", "", "Path to readmegen.yaml (default: <dir>/readmegen.yaml)")

	_ = cmd.RegisterFlagCompletionFunc(flagLogo, completeBoolValues)
	_ = cmd.RegisterFlagCompletionFunc(flagPreview, completeBoolValues)
	_ = cmd.RegisterFlagCompletionFunc(flagTemplateName, completeTemplateFlag)
}

func runGenerate(cmd *cobra.Command, f *generateFlags) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(cmd.ErrOrStderr(), verbose)

	dir := f.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		dir = wd
	}

	cfg, err := config.Load(dir, f.configPath, os.LookupEnv)
	if err != nil {
		return err
	}

	opts := buildOptions(cmd, f, dir, cfg, logger)
	opts.Interactive = opts.Interactive && !tui.Unattended()
	mode := tui.DetectMode()
	if verbose {
		logger.Verbose("Project directory: %s", dir)
		logger.Verbose("Terminal mode: %s, prompts enabled: %t", mode, opts.Interactive)
		logger.Verbose("Template: %s", opts.Template)
	}

	// Without a terminal the same questions are read line by line from stdin.
	var prompter readmegen.Prompter
	if mode == tui.ModeInteractive {
		prompter = tui.NewPrompter()
	} else {
		prompter = ui.NewLinePrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	var approver readmegen.Approver
	if f.force {
		approver = ui.NewForcedApprover(cmd.ErrOrStderr(), logger)
	} else {
		approver = ui.NewInteractiveApprover(prompter, logger)
	}

	gen := generator.New(filesystem.NewOSFileSystem(), prompter, approver, logger, cmd.ErrOrStderr())
	_, err = gen.Run(cmd.Context(), opts)
	return err
}

// buildOptions layers explicit flags over the tool configuration. It does
// not look at the environment; Interactive only reflects --no-prompts and the
// configuration.
func buildOptions(cmd *cobra.Command, f *generateFlags, dir string, cfg config.ToolConfig, logger readmegen.Logger) generator.Options {
	changed := cmd.Flags().Changed

	output := cfg.Output
	if changed(flagOutput) {
		output = f.output
	}

	var source render.Source
	switch {
	case changed(flagTemplate):
		source.Path = f.template
	case cfg.Template != "":
		source.Path = cfg.Template
		if !filepath.IsAbs(source.Path) {
			source.Path = filepath.Join(dir, source.Path)
		}
	}
	source.Name = cfg.TemplateName
	if changed(flagTemplateName) {
		source.Name = f.templateName
		// an explicit embedded name beats a configured template file
		if !changed(flagTemplate) {
			source.Path = ""
		}
	}

	policy := collect.AllowEmptySecondary
	if cfg.Lists.RequireSecondary {
		policy = collect.RequireSecondary
	}

	return generator.Options{
		Dir:            dir,
		Output:         output,
		Interactive:    !f.noPrompts && !cfg.NonInteractive,
		Overrides:      overridesFromFlags(cmd, f, logger),
		Template:       source,
		HostingDomains: cfg.HostingDomains,
		ListPolicy:     policy,
	}
}

// overridesFromFlags marks a field as set only when its flag was given,
// so an explicit empty value still overrides package.json.
func overridesFromFlags(cmd *cobra.Command, f *generateFlags, logger readmegen.Logger) resolve.Overrides {
	text := func(name, value string) readmegen.Optional[string] {
		if cmd.Flags().Changed(name) {
			return readmegen.Some(value)
		}
		return readmegen.None[string]()
	}
	boolean := func(name, value string) readmegen.Optional[bool] {
		if !cmd.Flags().Changed(name) {
			return readmegen.None[bool]()
		}
		v, err := resolve.ParseBoolFlag(value)
		if err != nil {
			logger.Warn("Ignoring --%s: %v", name, err)
		}
		return v
	}

	return resolve.Overrides{
		ProjectName:    text(flagProjectName, f.projectName),
		Description:    text(flagDescription, f.description),
		ProjectVersion: text(flagProjectVersion, f.projectVersion),
		Author:         text(flagAuthor, f.author),
		License:        text(flagLicense, f.license),
		GitHubUsername: text(flagGitHubUsername, f.githubUsername),
		RepositoryName: text(flagRepositoryName, f.repositoryName),
		MainLanguage:   text(flagMainLanguage, f.mainLanguage),
		Logo:           boolean(flagLogo, f.logo),
		Preview:        boolean(flagPreview, f.preview),
	}
}
