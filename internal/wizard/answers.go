package wizard

import "github.com/easifyphp/composer-setup/internal/manifest"

// Author is the optional author identity. Empty fields are never written.
type Author struct {
	Name  string
	Email string
}

// Empty reports whether neither field was given.
func (a Author) Empty() bool {
	return a.Name == "" && a.Email == ""
}

// Entry builds the authors[] element, omitting empty fields.
func (a Author) Entry() *manifest.Object {
	entry := manifest.NewObject()
	if a.Name != "" {
		entry.Set("name", a.Name)
	}
	if a.Email != "" {
		entry.Set("email", a.Email)
	}
	return entry
}

// Answers holds everything the user was asked.
type Answers struct {
	Name        string
	Description string
	Type        string
	License     string
	PHPVersion  string
	Author      Author
}

// Fragment builds the partial manifest the answers describe.
func (a Answers) Fragment() *manifest.Object {
	f := manifest.NewObject()
	f.Set("name", a.Name)
	if a.Description != "" {
		f.Set("description", a.Description)
	}
	f.Set("type", a.Type)
	f.Set("license", a.License)

	require := manifest.NewObject()
	require.Set("php", ">="+a.PHPVersion)
	f.Set("require", require)

	authors := []any{}
	if !a.Author.Empty() {
		authors = append(authors, a.Author.Entry())
	}
	f.Set("authors", authors)
	return f
}
