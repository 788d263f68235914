package manifest

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Author is the manifest's author field. It is a closed union of
// StringAuthor and ObjectAuthor; any other JSON shape decodes to nil.
type Author interface {
	// Name returns the candidate author name.
	Name() string
	isAuthor()
}

// StringAuthor is the "Name <email> (url)" shorthand.
type StringAuthor string

// Name returns the text before the first '<', trimmed.
func (a StringAuthor) Name() string {
	s := string(a)
	if i := strings.IndexByte(s, '<'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func (StringAuthor) isAuthor() {}

// ObjectAuthor is the {"name", "email", "url"} form.
type ObjectAuthor struct {
	AuthorName string `json:"name"`
	Email      string `json:"email"`
	URL        string `json:"url"`
}

// Name returns the name property, empty if absent.
func (a ObjectAuthor) Name() string {
	return a.AuthorName
}

func (ObjectAuthor) isAuthor() {}

// decodeAuthor picks the variant from the first JSON token.
func decodeAuthor(raw json.RawMessage) Author {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return StringAuthor(s)
	case '{':
		var obj struct {
			Name  looseString `json:"name"`
			Email looseString `json:"email"`
			URL   looseString `json:"url"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil
		}
		return ObjectAuthor{AuthorName: string(obj.Name), Email: string(obj.Email), URL: string(obj.URL)}
	}
	return nil
}

// usernameFromAuthor returns name when it can double as a hosting username:
// non-empty, a single token, and not a path.
func usernameFromAuthor(name string) string {
	if name == "" || strings.ContainsAny(name, " \t\n\r/") {
		return ""
	}
	return name
}
