// Package manifest extracts project metadata from package.json.
//
// Extraction is heuristic and never fatal: an unreadable or malformed
// manifest yields an empty Partial and a warning, and the pipeline carries
// on with flags, prompts and defaults.
//
// # Identity fields
//
// The author field comes in two shapes, modelled as the Author union:
//
//	"author": "octo <octo@example.com>"   // StringAuthor
//	"author": {"name": "octo"}           // ObjectAuthor
//
// A single-token author name (no whitespace, no "/") doubles as the hosting
// username. A repository or homepage URL on a recognized host overrides both
// the username and the repository name:
//
//	https://github.com/octo/lib.git -> username "octo", repository "lib"
package manifest
