package menu

import (
	"context"

	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/internal/restoapi/options"
	"RestoReservasi/pkg/logging"

	"github.com/pkg/errors"
)

// maxPages bounds Find when the server keeps reporting more pages.
const maxPages = 50

type API interface {
	MenuList(ctx context.Context, opts ...options.Option) (*models.MenuPage, error)
}

type Query struct {
	Category string
	Search   string
	Page     int
}

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context, q Query) (*models.MenuPage, error) {
	var opts []options.Option
	if q.Category != "" {
		opts = append(opts, options.Category(q.Category))
	}
	if q.Search != "" {
		opts = append(opts, options.Search(q.Search))
	}
	if q.Page > 0 {
		opts = append(opts, options.Page(q.Page))
	}
	page, err := s.api.MenuList(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed MenuList()")
	}
	return page, nil
}

// Find walks the pages until every requested id is found or the pages run out.
func (s *Service) Find(ctx context.Context, ids []int) (map[int]*models.MenuItem, error) {
	logger := logging.GetLogger()
	logger.Println("Find:>Start")
	defer logger.Println("Find:>End")

	want := map[int]bool{}
	for _, id := range ids {
		want[id] = true
	}
	found := map[int]*models.MenuItem{}

	for page := 1; page <= maxPages && len(found) < len(want); page++ {
		p, err := s.List(ctx, Query{Page: page})
		if err != nil {
			return nil, err
		}
		for _, item := range p.Data {
			if want[item.ID] {
				found[item.ID] = item
			}
		}
		if p.LastPage <= page || len(p.Data) == 0 {
			break
		}
	}

	for id := range want {
		if _, ok := found[id]; !ok {
			logger.Warnf("menu item %d not found", id)
		}
	}
	return found, nil
}
