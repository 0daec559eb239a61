package nav_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurelia-studios/aurelia-web/internal/nav"
)

func activeHrefs(items []nav.RenderedItem) []string {
	var out []string
	for _, it := range items {
		if it.Active {
			out = append(out, it.Href)
		}
	}
	return out
}

func TestBuildActiveState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		active []string
	}{
		{path: "/", active: nil},
		{path: "/vendors", active: []string{"/vendors"}},
		{path: "/vendors/floral-decor", active: []string{"/vendors"}},
		{path: "/vendorsextra", active: nil},
		{path: "/blog/monsoon-weddings", active: []string{"/blog"}},
		{path: "", active: nil},
	}
	for _, tc := range tests {
		items := nav.Build(tc.path)
		require.Len(t, items, len(nav.Main))
		require.Equal(t, tc.active, activeHrefs(items), "path %q", tc.path)
	}
}

func TestBreadcrumbsRoot(t *testing.T) {
	t.Parallel()

	crumbs := nav.Breadcrumbs("/")
	require.Len(t, crumbs, 1)
	require.Equal(t, "Home", crumbs[0].Label)
	require.True(t, crumbs[0].Active)
}

func TestBreadcrumbsSegments(t *testing.T) {
	t.Parallel()

	crumbs := nav.Breadcrumbs("/vendors/floral-decor")
	require.Len(t, crumbs, 3)
	require.Equal(t, "/", crumbs[0].Href)
	require.Equal(t, "/vendors", crumbs[1].Href)
	require.Equal(t, "Vendors", crumbs[1].Label)
	require.False(t, crumbs[1].Active)
	require.Equal(t, "/vendors/floral-decor", crumbs[2].Href)
	require.Equal(t, "Floral Decor", crumbs[2].Label, "slug is prettified")
	require.True(t, crumbs[2].Active)
}

func TestBreadcrumbsLabelOverrides(t *testing.T) {
	t.Parallel()

	crumbs := nav.Breadcrumbs("/vendors/floral-decor", "", "Petals & Co.")
	require.Equal(t, "Vendors", crumbs[1].Label, "empty override keeps the prettified label")
	require.Equal(t, "Petals & Co.", crumbs[2].Label)
}
