package models

// PersonSummary is one row of the name-suggestion listing
type PersonSummary struct {
	Name  string `json:"name"`
	Files int    `json:"files"`
}

// PeopleResponse represents the response for listing known people
type PeopleResponse struct {
	People        []PersonSummary `json:"people"`
	DefaultPerson string          `json:"default_person,omitempty"`
}

// CatalogSummary holds aggregate counts over a loaded catalog
type CatalogSummary struct {
	People        int    `json:"people"`
	Images        int    `json:"images"`         // filenames excluding the preview sentinel
	MissingIDs    int    `json:"missing_ids"`    // eligible filenames without a Drive ID
	DefaultPerson string `json:"default_person"` // person with the most files
}
