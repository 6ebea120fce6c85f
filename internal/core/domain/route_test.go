package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewForPath(t *testing.T) {
	want := map[string]View{
		"/":                      ViewLanding,
		"/citizen-dashboard":     ViewCitizenDashboard,
		"/authorities-dashboard": ViewAuthoritiesDashboard,
		"/report-issue":          ViewReportIssue,
		"/register":              ViewRegister,
		"/city":                  ViewCity,
	}
	for path, view := range want {
		got, ok := ViewForPath(path)
		assert.True(t, ok, path)
		assert.Equal(t, view, got, path)
		assert.Equal(t, path, PathFor(view))
	}

	got, ok := ViewForPath("/nowhere")
	assert.False(t, ok)
	assert.Equal(t, ViewNotFound, got)
	assert.Empty(t, PathFor(ViewNotFound))
}

func TestRoutes_ReturnsCopy(t *testing.T) {
	r := Routes()
	assert.Len(t, r, 6)
	r[0].Path = "/changed"
	assert.Equal(t, "/", Routes()[0].Path)
}

func TestNavLinks_PointAtRoutes(t *testing.T) {
	for _, l := range NavLinks() {
		v, ok := ViewForPath(l.Path)
		assert.True(t, ok, l.Path)
		assert.Equal(t, l.View, v)
	}
}
