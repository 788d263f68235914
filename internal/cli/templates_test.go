package cli

import (
	"strings"
	"testing"

	"github.com/vvka-141/readmegen/internal/render"
)

func TestTemplateDescriptions(t *testing.T) {
	for _, name := range render.ListTemplates() {
		if templateDescriptions[name] == "" {
			t.Errorf("missing description for template '%s'", name)
		}
	}
}

func TestTemplatesList(t *testing.T) {
	res := runCLI(t, "", "templates", "list")
	if res.err != nil {
		t.Fatalf("templates list failed: %v", res.err)
	}
	for _, name := range render.ListTemplates() {
		if !strings.Contains(res.stdout, name) {
			t.Errorf("expected %q in output:\n%s", name, res.stdout)
		}
	}
}

func TestTemplatesShow(t *testing.T) {
	t.Run("prints embedded source", func(t *testing.T) {
		res := runCLI(t, "", "templates", "show", "minimal")
		if res.err != nil {
			t.Fatalf("templates show failed: %v", res.err)
		}
		want, err := render.Embedded("minimal")
		if err != nil {
			t.Fatalf("Embedded: %v", err)
		}
		if res.stdout != want {
			t.Errorf("output mismatch:\nwant: %q\ngot:  %q", want, res.stdout)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		res := runCLI(t, "", "templates", "show", "fancy")
		if res.err == nil {
			t.Fatal("expected error for unknown template")
		}
		if !strings.Contains(res.err.Error(), "basic") {
			t.Errorf("expected available templates in error, got: %v", res.err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		res := runCLI(t, "", "templates", "show")
		if res.err == nil || !strings.Contains(res.err.Error(), "<template_name>") {
			t.Errorf("expected missing argument error, got: %v", res.err)
		}
	})
}
