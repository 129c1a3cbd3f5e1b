package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nazzy-pedidos/internal/view"
)

func TestBadgeHiddenAtZero(t *testing.T) {
	doc := view.NewDocument()

	doc.SetBadge(0)
	assert.Equal(t, view.Badge{Visible: false, Count: 0}, doc.Snapshot().Badge)

	doc.SetBadge(3)
	assert.Equal(t, view.Badge{Visible: true, Count: 3}, doc.Snapshot().Badge)

	doc.SetBadge(0)
	assert.Equal(t, view.Badge{Visible: false, Count: 0}, doc.Snapshot().Badge)
}

func TestSetSidebarTextOverwrites(t *testing.T) {
	doc := view.NewDocument()
	doc.AddSidebar()
	doc.AddSidebar()

	doc.SetSidebarText("first")
	doc.SetSidebarText("second")

	state := doc.Snapshot()
	assert.Len(t, state.Sidebars, 2)
	for _, s := range state.Sidebars {
		if assert.NotNil(t, s.CustomText) {
			assert.Equal(t, "second", *s.CustomText)
		}
	}
}

func TestSetBrandLogoReplacesText(t *testing.T) {
	doc := view.NewDocument()
	doc.AddBrand("Nazzy")

	doc.SetBrandLogo("logo.png", 120)

	brand := doc.Snapshot().Brands[0]
	assert.Empty(t, brand.Text)
	if assert.NotNil(t, brand.Logo) {
		assert.Equal(t, view.Logo{Src: "logo.png", Height: 120, Fit: "contain"}, *brand.Logo)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	doc := view.NewDocument()
	doc.AddBrand("Nazzy")
	doc.SetFeed([]view.Row{{ID: "1", Title: "A"}})

	state := doc.Snapshot()
	state.Feed[0].Title = "mutated"
	state.Brands[0].Text = "mutated"

	fresh := doc.Snapshot()
	assert.Equal(t, "A", fresh.Feed[0].Title)
	assert.Equal(t, "Nazzy", fresh.Brands[0].Text)
}
