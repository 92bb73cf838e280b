package menu

import (
	"context"
	"testing"

	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/internal/restoapi/options"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	pages    map[int]*models.MenuPage
	requests []options.MenuQuery
}

func (f *fakeAPI) MenuList(ctx context.Context, opts ...options.Option) (*models.MenuPage, error) {
	q := options.MenuQuery{}
	for _, opt := range opts {
		opt(&q)
	}
	f.requests = append(f.requests, q)
	page := q.Page
	if page == 0 {
		page = 1
	}
	return f.pages[page], nil
}

func pages() map[int]*models.MenuPage {
	return map[int]*models.MenuPage{
		1: {Data: []*models.MenuItem{{ID: 1}, {ID: 2}}, CurrentPage: 1, LastPage: 3},
		2: {Data: []*models.MenuItem{{ID: 3}, {ID: 4}}, CurrentPage: 2, LastPage: 3},
		3: {Data: []*models.MenuItem{{ID: 5}}, CurrentPage: 3, LastPage: 3},
	}
}

func TestListPassesQuery(t *testing.T) {
	api := &fakeAPI{pages: pages()}
	s := NewService(api)

	_, err := s.List(context.Background(), Query{Category: "minuman", Search: "teh", Page: 2})
	require.NoError(t, err)
	assert.Equal(t, options.MenuQuery{Category: "minuman", Search: "teh", Page: 2}, api.requests[0])
}

func TestFindStopsWhenComplete(t *testing.T) {
	api := &fakeAPI{pages: pages()}
	s := NewService(api)

	found, err := s.Find(context.Background(), []int{2, 3})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Len(t, api.requests, 2)
}

func TestFindMissing(t *testing.T) {
	api := &fakeAPI{pages: pages()}
	s := NewService(api)

	found, err := s.Find(context.Background(), []int{5, 99})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Len(t, api.requests, 3)
}
