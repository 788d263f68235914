package render

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed templates/*.hbs
var embedded embed.FS

const templateExt = ".hbs"

// ListTemplates returns the names of the embedded templates, sorted.
func ListTemplates() []string {
	entries, err := fs.ReadDir(embedded, "templates")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != templateExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), templateExt))
	}
	sort.Strings(names)
	return names
}

// Embedded returns the source of the named embedded template.
func Embedded(name string) (string, error) {
	data, err := embedded.ReadFile(path.Join("templates", name+templateExt))
	if err != nil {
		return "", fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(ListTemplates(), ", "))
	}
	return string(data), nil
}
