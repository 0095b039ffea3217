package models

import "fmt"

// EntryKind identifies which variant of a gallery card an Entry describes
type EntryKind string

const (
	EntryImage    EntryKind = "image"    // lazy thumbnail wrapped with a full-resolution link
	EntryFallback EntryKind = "fallback" // thumbnail failed to load, plain link to the file
	EntryMissing  EntryKind = "missing"  // filename has no Drive ID in the index
)

// OpenLinkText is the caption under every image card
const OpenLinkText = "↗ Open full-resolution image in Google Drive"

// Entry describes one gallery card independently of how it is displayed
type Entry struct {
	Kind         EntryKind `json:"kind"`
	Person       string    `json:"person"`
	Filename     string    `json:"filename"`
	FileID       string    `json:"file_id,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	ViewURL      string    `json:"view_url,omitempty"`
}

// Fallback returns the variant shown when the thumbnail of an image entry fails to load.
// Entries of any other kind are returned unchanged.
func (e Entry) Fallback() Entry {
	if e.Kind != EntryImage {
		return e
	}
	e.Kind = EntryFallback
	e.ThumbnailURL = ""
	return e
}

// Text returns the visible text of the card
func (e Entry) Text() string {
	switch e.Kind {
	case EntryMissing:
		return fmt.Sprintf("Missing Drive ID for %s", e.Filename)
	case EntryFallback:
		return fmt.Sprintf("Thumbnail unavailable, open %s", e.Filename)
	default:
		return OpenLinkText
	}
}

// Page is the outcome of one render pass
type Page struct {
	Filter    string  `json:"filter"`
	Threshold int     `json:"threshold"`
	Entries   []Entry `json:"entries"`
	ShowMore  bool    `json:"show_more"`
}

// Rendered returns the number of entries produced by the pass
func (p Page) Rendered() int {
	return len(p.Entries)
}
