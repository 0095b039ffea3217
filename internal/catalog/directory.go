package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// PreviewFilename is the reserved face preview image kept next to every person's photos.
// It is never shown as a gallery card.
const PreviewFilename = "face_preview.jpg"

// IsPreview reports whether filename is the preview sentinel, ignoring case
func IsPreview(filename string) bool {
	return strings.ToLower(filename) == PreviewFilename
}

// Person is one face directory entry
type Person struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

// Directory maps person names to their filenames, preserving the order of the source document
type Directory struct {
	people []Person
	pos    map[string]int
}

// NewDirectory builds a directory from people in the given order.
// A repeated name keeps its first position and takes the later files.
func NewDirectory(people ...Person) *Directory {
	d := &Directory{pos: make(map[string]int, len(people))}
	for _, p := range people {
		d.put(p.Name, p.Files)
	}
	return d
}

func (d *Directory) put(name string, files []string) {
	if files == nil {
		files = []string{}
	}
	if i, ok := d.pos[name]; ok {
		d.people[i].Files = files
		return
	}
	d.pos[name] = len(d.people)
	d.people = append(d.people, Person{Name: name, Files: files})
}

// People returns the directory entries in stored order
func (d *Directory) People() []Person {
	return d.people
}

// Len returns the number of people
func (d *Directory) Len() int {
	return len(d.people)
}

// Files returns the filenames registered for name
func (d *Directory) Files(name string) ([]string, bool) {
	i, ok := d.pos[name]
	if !ok {
		return nil, false
	}
	return d.people[i].Files, true
}

// Names returns every person name sorted byte-wise
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.people))
	for _, p := range d.people {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// UnmarshalJSON decodes a JSON object of name -> filename array, keeping key order.
func (d *Directory) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("face directory must be a JSON object, got %v", tok)
	}

	decoded := NewDirectory()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v in face directory", tok)
		}

		var files []string
		if err := dec.Decode(&files); err != nil {
			return fmt.Errorf("files of %q: %w", name, err)
		}
		decoded.put(name, files)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = *decoded
	return nil
}
