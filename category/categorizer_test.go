package category

import (
	"testing"

	"github.com/poiesic/resumatch/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizer_Categorize(t *testing.T) {
	c, err := NewCategorizer()
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"tech keyword", "python developer", "Tech"},
		{"marketing keyword", "seo content marketing", "Marketing"},
		{"earlier category wins", "figma python", "Tech"},
		{"finance precedes hr for shared keyword", "payroll", "Finance"},
		{"hr keyword", "hr generalist", "HR"},
		{"healthcare keyword", "registered nurse", "Healthcare"},
		{"generic role falls back to other", "business analyst", taxonomy.LabelOther},
		{"role word as substring", "managerial duty", taxonomy.LabelOther},
		{"nothing matches", "gardening enthusiast", taxonomy.LabelUncategorized},
		{"empty text", "", taxonomy.LabelUncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.text))
		})
	}
}

func TestCategorizer_FirstMatchOrder(t *testing.T) {
	cats := []taxonomy.Category{
		{Label: "First", Keywords: []string{"alpha"}},
		{Label: "Second", Keywords: []string{"beta", "alpha"}},
	}

	c, err := NewCategorizer(WithTaxonomy(cats...))
	require.NoError(t, err)

	assert.Equal(t, "First", c.Categorize("beta alpha"))
	assert.Equal(t, "Second", c.Categorize("beta"))

	reversed, err := NewCategorizer(WithTaxonomy(cats[1], cats[0]))
	require.NoError(t, err)
	assert.Equal(t, "Second", reversed.Categorize("beta alpha"))
}

func TestWithRoleWords(t *testing.T) {
	c, err := NewCategorizer(
		WithTaxonomy(taxonomy.Category{Label: "Only", Keywords: []string{"zzz"}}),
		WithRoleWords("gardener"),
	)
	require.NoError(t, err)

	assert.Equal(t, taxonomy.LabelOther, c.Categorize("head gardener"))
	assert.Equal(t, taxonomy.LabelUncategorized, c.Categorize("business analyst"))
}
