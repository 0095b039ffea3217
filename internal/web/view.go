package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/url"
	"strconv"

	"face-gallery/internal/gallery"
	"face-gallery/pkg/models"

	"github.com/labstack/echo/v4"
)

//go:embed assets
var assets embed.FS

// PageTemplate is the name of the gallery page template
const PageTemplate = "index.html.tmpl"

var pageTemplate = template.Must(template.ParseFS(assets, "assets/"+PageTemplate))

const (
	showLookupLabel = "Show face reference"
	hideLookupLabel = "Hide face reference"
)

// PageView is everything the gallery page template needs
type PageView struct {
	Filter      string
	Names       []string
	Cards       []CardView
	Rendered    int
	Threshold   int
	Batch       int
	ShowMore    bool
	MoreURL     string
	Summary     models.CatalogSummary
	LookupOpen  bool
	LookupLabel string
	LookupURL   string
	Error       string

	// Standalone pages inline their assets and drop server round-trips
	Standalone bool
	InlineCSS  template.CSS
	InlineJS   template.JS
}

// CardView is one card as the template displays it
type CardView struct {
	Kind         string
	Person       string
	Filename     string
	Text         string
	ThumbnailURL string
	ViewURL      string
	FallbackText string
	Anchor       string
}

// NewCardView translates a descriptor into display fields. Image cards carry the text
// of their fallback variant so the browser can swap in place when the thumbnail fails.
func NewCardView(e models.Entry) CardView {
	card := CardView{
		Kind:         string(e.Kind),
		Person:       e.Person,
		Filename:     e.Filename,
		Text:         e.Text(),
		ThumbnailURL: e.ThumbnailURL,
		ViewURL:      e.ViewURL,
	}
	if e.Kind == models.EntryImage {
		card.FallbackText = e.Fallback().Text()
	}
	return card
}

// NewPageView builds the view for one rendered page
func NewPageView(page models.Page, names []string, summary models.CatalogSummary, lookupOpen bool, lookupURL string) PageView {
	cards := make([]CardView, 0, len(page.Entries))
	for _, e := range page.Entries {
		cards = append(cards, NewCardView(e))
	}
	// first card of the latest batch, target of the load-more link
	if first := page.Threshold - gallery.BatchSize; first > 0 && first < len(cards) {
		cards[first].Anchor = "more"
	}

	v := PageView{
		Filter:     page.Filter,
		Names:      names,
		Cards:      cards,
		Rendered:   page.Rendered(),
		Threshold:  page.Threshold,
		Batch:      gallery.BatchSize,
		ShowMore:   page.ShowMore,
		Summary:    summary,
		LookupOpen: lookupOpen,
		LookupURL:  lookupURL,
	}
	v.LookupLabel = lookupLabel(lookupOpen)
	if page.ShowMore {
		v.MoreURL = moreURL(page.Filter, page.Threshold, lookupOpen)
	}
	return v
}

// Inline switches the view to a self-contained document
func (v PageView) Inline() (PageView, error) {
	css, err := assets.ReadFile("assets/static/gallery.css")
	if err != nil {
		return v, err
	}
	js, err := assets.ReadFile("assets/static/gallery.js")
	if err != nil {
		return v, err
	}
	v.Standalone = true
	v.InlineCSS = template.CSS(css)
	v.InlineJS = template.JS(js)
	v.MoreURL = ""
	return v, nil
}

// WritePage executes the page template
func WritePage(w io.Writer, v PageView) error {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, PageTemplate, v); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Renderer serves the embedded templates through Echo's c.Render
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{templates: pageTemplate}
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func lookupLabel(open bool) string {
	if open {
		return hideLookupLabel
	}
	return showLookupLabel
}

// moreURL links to the same filter with one more batch
func moreURL(filter string, threshold int, lookupOpen bool) string {
	next := gallery.State{Filter: filter, Threshold: threshold}.Next()

	q := url.Values{}
	if filter != "" {
		q.Set("q", filter)
	}
	q.Set("shown", strconv.Itoa(next.Threshold))
	if lookupOpen {
		q.Set("lookup", "1")
	}
	return "/?" + q.Encode() + "#more"
}
