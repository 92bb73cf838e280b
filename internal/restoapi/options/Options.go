package options

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// MenuQuery is encoded into the query string of the menu listing.
type MenuQuery struct {
	Category string `url:"category,omitempty"`
	Search   string `url:"search,omitempty"`
	Page     int    `url:"page,omitempty"`
}

type Option func(*MenuQuery)

func Category(value string) Option {
	return func(q *MenuQuery) {
		q.Category = value
	}
}

func Search(value string) Option {
	return func(q *MenuQuery) {
		q.Search = value
	}
}

func Page(value int) Option {
	return func(q *MenuQuery) {
		q.Page = value
	}
}

func Values(opts ...Option) (url.Values, error) {
	q := new(MenuQuery)
	for _, opt := range opts {
		opt(q)
	}
	return query.Values(q)
}
