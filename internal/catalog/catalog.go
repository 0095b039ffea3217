package catalog

import "face-gallery/pkg/models"

// Index maps a filename to its Google Drive file ID
type Index map[string]string

// Lookup returns the Drive ID for filename. Absent and empty IDs are both reported as missing.
func (idx Index) Lookup(filename string) (string, bool) {
	id, ok := idx[filename]
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Catalog is the pair of lookup tables the gallery renders from
type Catalog struct {
	Directory *Directory
	Index     Index
}

// New creates a catalog, substituting empty tables for nil ones
func New(dir *Directory, idx Index) *Catalog {
	if dir == nil {
		dir = NewDirectory()
	}
	if idx == nil {
		idx = Index{}
	}
	return &Catalog{Directory: dir, Index: idx}
}

// Counts lists every person with the number of displayable files, sorted by name
func (c *Catalog) Counts() []models.PersonSummary {
	names := c.Directory.Names()
	out := make([]models.PersonSummary, 0, len(names))
	for _, name := range names {
		files, _ := c.Directory.Files(name)
		out = append(out, models.PersonSummary{Name: name, Files: countEligible(files)})
	}
	return out
}

// Summary aggregates the catalog. The default person is the one with the most
// displayable files, the first in directory order on ties.
func (c *Catalog) Summary() models.CatalogSummary {
	summary := models.CatalogSummary{People: c.Directory.Len()}

	best := -1
	for _, p := range c.Directory.People() {
		n := countEligible(p.Files)
		if n > best {
			best = n
			summary.DefaultPerson = p.Name
		}
		summary.Images += n
		for _, f := range p.Files {
			if IsPreview(f) {
				continue
			}
			if _, ok := c.Index.Lookup(f); !ok {
				summary.MissingIDs++
			}
		}
	}
	return summary
}

func countEligible(files []string) int {
	n := 0
	for _, f := range files {
		if !IsPreview(f) {
			n++
		}
	}
	return n
}
