package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func fixture() []models.Product {
	cat := func(s string) *string { return &s }
	return []models.Product{
		{ID: "1", Name: "Creatine Monohydrate", CategoryID: cat("Ropa"), Price: 45},
		{ID: "2", Name: "Women Sneakers", CategoryID: cat("Zapatos"), Price: 30},
		{ID: "3", Name: "Casual Sneakers", CategoryID: cat("Zapatos"), Price: 55},
		{ID: "4", Name: "Sport Shoes", CategoryID: cat("Zapatos"), Price: 25},
		{ID: "5", Name: "Running Shoes", CategoryID: cat("Zapatos"), Price: 15},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestNewStore_Defaults(t *testing.T) {
	st := NewStore().State()
	assert.Equal(t, "All", st.SelectedCategory)
	assert.Equal(t, "", st.SearchQuery)
	assert.True(t, st.Notifications)
}

func TestApply_ByCategory(t *testing.T) {
	got := Apply(fixture(), State{SelectedCategory: "Zapatos"})
	assert.Equal(t, []string{"2", "3", "4", "5"}, ids(got))
}

func TestApply_BySearchCaseInsensitive(t *testing.T) {
	got := Apply(fixture(), State{SelectedCategory: CategoryAll, SearchQuery: "sneakers"})
	assert.Equal(t, []string{"2", "3"}, ids(got))

	got = Apply(fixture(), State{SelectedCategory: CategoryAll, SearchQuery: "SNEAK"})
	assert.Equal(t, []string{"2", "3"}, ids(got))
}

func TestApply_BothPredicates(t *testing.T) {
	got := Apply(fixture(), State{SelectedCategory: "Zapatos", SearchQuery: "shoes"})
	assert.Equal(t, []string{"4", "5"}, ids(got))

	got = Apply(fixture(), State{SelectedCategory: "Ropa", SearchQuery: "shoes"})
	assert.Empty(t, got)
}

func TestApply_UnknownCategory(t *testing.T) {
	got := Apply(fixture(), State{SelectedCategory: "Juguetes"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatch_ProductWithoutCategory(t *testing.T) {
	assert.True(t, Match("Gift card", "", State{SelectedCategory: CategoryAll}))
	assert.False(t, Match("Gift card", "", State{SelectedCategory: "Ropa"}))
}

func TestStore_Mutations(t *testing.T) {
	s := NewStore()

	var seen []State
	unsubscribe := s.Subscribe(func(st State) { seen = append(seen, st) })

	s.SetSelectedCategory("Zapatos")
	s.SetSearchQuery("  Sneakers ")
	st := s.ToggleNotifications()

	assert.Equal(t, State{SelectedCategory: "Zapatos", SearchQuery: "  Sneakers ", Notifications: false}, st)
	require.Len(t, seen, 3)
	assert.Equal(t, "Zapatos", seen[0].SelectedCategory)

	unsubscribe()
	s.ToggleNotifications()
	assert.Len(t, seen, 3)
	assert.True(t, s.State().Notifications)

	s.Reset()
	assert.Equal(t, State{SelectedCategory: "All", Notifications: true}, s.State())
}
