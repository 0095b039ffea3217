// Package gallery turns a catalog and a filter/threshold state into an ordered list of
// card descriptors. It performs no I/O; adapters decide how the cards are displayed.
package gallery

import (
	"face-gallery/internal/catalog"
	"face-gallery/internal/drive"
	"face-gallery/pkg/models"
)

// Render walks people in directory order and produces at most state.Threshold entries.
//
// People are filtered by case-insensitive substring of their name; every file of a
// matching person is considered, except the preview sentinel which is skipped before
// the threshold check and never counts. ShowMore is set when the pass filled the
// threshold, meaning more entries may follow.
func Render(c *catalog.Catalog, urls drive.URLs, state State) models.Page {
	page := models.Page{
		Filter:    state.Filter,
		Threshold: state.Threshold,
		Entries:   []models.Entry{},
	}

	rendered := 0
	for _, person := range c.Directory.People() {
		if !state.matches(person.Name) {
			continue
		}
		for _, filename := range person.Files {
			if catalog.IsPreview(filename) {
				continue
			}
			if rendered >= state.Threshold {
				break
			}
			page.Entries = append(page.Entries, entryFor(c.Index, urls, person.Name, filename))
			rendered++
		}
	}

	page.ShowMore = rendered >= state.Threshold
	return page
}

func entryFor(idx catalog.Index, urls drive.URLs, person, filename string) models.Entry {
	id, ok := idx.Lookup(filename)
	if !ok {
		return models.Entry{
			Kind:     models.EntryMissing,
			Person:   person,
			Filename: filename,
		}
	}
	return models.Entry{
		Kind:         models.EntryImage,
		Person:       person,
		Filename:     filename,
		FileID:       id,
		ThumbnailURL: urls.ThumbnailURL(id),
		ViewURL:      urls.ViewURL(id),
	}
}
