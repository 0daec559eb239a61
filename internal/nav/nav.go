package nav

import "strings"

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/portfolio"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/portfolio", Label: "Portfolio"},
	{Path: "/gallery", Label: "Gallery"},
	{Path: "/vendors", Label: "Vendors"},
	{Path: "/blog", Label: "Blog"},
	{Path: "/contact", Label: "Contact"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path: Home, then a
// crumb per segment with a prettified label; extra labels override segment
// text positionally (e.g. a vendor's display name for its slug).
func Breadcrumbs(currentPath string, labels ...string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}
	segments := strings.Split(strings.Trim(currentPath, "/"), "/")
	href := ""
	for i, seg := range segments {
		href += "/" + seg
		label := prettify(seg)
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  label,
			Active: i == len(segments)-1,
		})
	}
	return crumbs
}

func prettify(segment string) string {
	words := strings.Split(segment, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
