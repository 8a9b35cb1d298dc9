package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platemarket/internal/domain"
	"platemarket/internal/repos"
	"platemarket/internal/services"
)

func TestCatalogService_ViewAndLookup(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	cat, err := services.LoadCatalog(repos.NewListingRepo(db))
	require.NoError(t, err)

	l, ok := cat.Get("3")
	require.True(t, ok)
	assert.Equal(t, "Н333НН", l.Number)
	_, ok = cat.Get("404")
	assert.False(t, ok)

	assert.Equal(t, []string{"50", "77", "78", "177", "199", "777"}, cat.Regions())

	f := domain.DefaultFilter()
	f.Region = "177"
	view := cat.View(f, domain.SortDateDesc)
	require.Len(t, view, 1)
	assert.Equal(t, "2", view[0].ID)

	// callers cannot reach into the snapshot
	all := cat.All()
	all[0].Number = "changed"
	again, _ := cat.Get(all[0].ID)
	assert.NotEqual(t, "changed", again.Number)
}

func TestCatalogService_FavoritesSkipStaleIDs(t *testing.T) {
	cat := services.NewCatalogService([]domain.Listing{
		{ID: "1", DateAdded: time.Now()},
		{ID: "2", DateAdded: time.Now()},
	})
	st := newMemStore()
	st.m[services.FavoritesKey] = `["2","deleted-long-ago"]`
	led := services.LoadFavorites(st)

	favs := cat.Favorites(led)
	require.Len(t, favs, 1)
	assert.Equal(t, "2", favs[0].ID)
}

func TestSessions_OnePerSID(t *testing.T) {
	stores := map[string]*memStore{}
	sessions := services.NewSessions(func(sid string) services.Storage {
		if _, ok := stores[sid]; !ok {
			stores[sid] = newMemStore()
		}
		return stores[sid]
	}, []string{"derived"}, services.SessionLimits{})

	a := sessions.Get("a")
	assert.Same(t, a, sessions.Get("a"))
	b := sessions.Get("b")
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, sessions.Len())

	a.Favorites.Toggle("1")
	a.Notices.ClearAll()
	assert.False(t, b.Favorites.IsFavorite("1"))
	assert.Equal(t, []string{"derived"}, b.Notices.Items())
	assert.Equal(t, `["1"]`, stores["a"].m[services.FavoritesKey])
	assert.Equal(t, []string{"derived"}, sessions.Derived())
}
