package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		id      string
		primary string
		font    string
		radius  string
	}{
		{"minimal", "#3B82F6", "'Inter', sans-serif", "4px"},
		{"creative", "#EC4899", "'Poppins', sans-serif", "12px"},
		{"professional", "#1F2937", "'Source Sans Pro', sans-serif", "6px"},
		{"developer", "#10B981", "'JetBrains Mono', monospace", "8px"},
		{"modern", "#8B5CF6", "'DM Sans', sans-serif", "16px"},
		{"academic", "#4B5563", "'Merriweather', serif", "4px"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := ResolveTheme(tt.id)
			assert.Equal(t, tt.primary, got.PrimaryColor)
			assert.Equal(t, tt.font, got.FontFamily)
			assert.Equal(t, tt.radius, got.BorderRadius)
			assert.NotEmpty(t, got.SecondaryColor)
		})
	}
}

func TestResolveThemeFallsBackToMinimal(t *testing.T) {
	minimal := ResolveTheme("minimal")
	for _, id := range []string{"nonexistent-id", "", "MINIMAL", "developer "} {
		assert.Equal(t, minimal, ResolveTheme(id), "id %q", id)
	}
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 6)

	wantOrder := []TemplateID{
		TemplateMinimal, TemplateCreative, TemplateProfessional,
		TemplateDeveloper, TemplateModern, TemplateAcademic,
	}
	for i, tmpl := range cat {
		assert.Equal(t, wantOrder[i], tmpl.ID)
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.Description)
		assert.Equal(t, ResolveTheme(string(tmpl.ID)), tmpl.Theme)
	}
	assert.Equal(t, wantOrder, TemplateIDs())
}

func TestCatalogReturnsCopy(t *testing.T) {
	cat := Catalog()
	cat[0].Name = "changed"
	assert.Equal(t, "Minimal", Catalog()[0].Name)
}

func TestParseTemplateID(t *testing.T) {
	id, ok := ParseTemplateID("academic")
	assert.True(t, ok)
	assert.Equal(t, TemplateAcademic, id)

	_, ok = ParseTemplateID("brutalist")
	assert.False(t, ok)

	_, ok = ParseTemplateID("")
	assert.False(t, ok)
}
