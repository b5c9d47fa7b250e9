package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FileName is the manifest file name expected at the project root.
const FileName = "package.json"

// PackageManifest holds the package identity fields read from package.json.
type PackageManifest struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
	Author      Person `json:"author" yaml:"author"`
}

// Person is an npm "people field". package.json allows either a plain string
// or an object with name, email and url; both decode into Person.
type Person struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

// UnmarshalJSON accepts both the string and the object form.
func (p *Person) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Person{Name: s}
		return nil
	}

	type person Person
	var obj person
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("author must be a string or an object: %w", err)
	}
	*p = Person(obj)
	return nil
}

// MarshalJSON writes the string form when only a name is set, so a string
// author survives a read/write cycle unchanged.
func (p Person) MarshalJSON() ([]byte, error) {
	if p.Email == "" && p.URL == "" {
		return marshalRaw(p.Name)
	}
	type person Person
	return marshalRaw(person(p))
}

// marshalRaw is json.Marshal without HTML escaping, so "<" and "&" stay as
// the user wrote them.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// String renders the person in npm's shorthand: "Name <email> (url)".
func (p Person) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Email != "" {
		fmt.Fprintf(&b, " <%s>", p.Email)
	}
	if p.URL != "" {
		fmt.Fprintf(&b, " (%s)", p.URL)
	}
	return strings.TrimSpace(b.String())
}

// IsZero reports whether no author information is present.
func (p Person) IsZero() bool {
	return p.Name == "" && p.Email == "" && p.URL == ""
}
