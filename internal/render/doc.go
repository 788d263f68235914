// Package render turns a Record into README text with a Handlebars template.
//
// Templates come either from a file (Source.Path) or from the set embedded in
// the binary (Source.Name, see ListTemplates). Scalar fields are exposed under
// their camelCase names (projectName, githubUsername, ...); features and
// technologies are lists of {name, text} and {name, link} objects.
//
// Renderer.Render never returns the underlying cause of a failure. The cause
// is logged and ErrGenerationFailed is returned instead, so callers handle a
// single error regardless of whether the template was missing or malformed.
package render
