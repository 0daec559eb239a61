package seo

import "html/template"

// Meta holds the per-page head metadata rendered in the base layout.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OGImage     string
	OGType      string
	// JSONLD snippets are pre-marshaled JSON; template.JS keeps the
	// script-context escaper from re-quoting them.
	JSONLD []template.JS
}

// ForPage builds default metadata with the brand suffix applied.
func ForPage(brand, title, description string) Meta {
	if title == "" {
		title = brand
	} else {
		title = title + " | " + brand
	}
	return Meta{
		Title:       title,
		Description: description,
		OGType:      "website",
	}
}
