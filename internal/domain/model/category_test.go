package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Coffee", want: "coffee"},
		{name: "spaces to hyphens", in: "Dark Roast Beans", want: "dark-roast-beans"},
		{name: "underscores to hyphens", in: "dark_roast", want: "dark-roast"},
		{name: "drops punctuation", in: "beans! (500g)", want: "beans-500g"},
		{name: "trims edge hyphens", in: " -beans- ", want: "beans"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestCategory_BeforeCreate_GeneratesSlug(t *testing.T) {
	c := Category{Name: "Dark Roast"}

	err := c.BeforeCreate(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Slug)
	assert.Contains(t, c.Slug, "dark-roast")
	// ランダム接頭辞3文字 + ハイフン
	assert.Len(t, c.Slug, len("dark-roast")+4)
}

func TestCategory_BeforeCreate_KeepsExplicitSlug(t *testing.T) {
	c := Category{Name: "Dark Roast", Slug: "roast"}

	err := c.BeforeCreate(nil)
	require.NoError(t, err)
	assert.Equal(t, "roast", c.Slug)
}
