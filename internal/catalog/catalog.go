package catalog

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/pkg/logging"

	"github.com/pkg/errors"
)

// TableSource is the part of the API the loader needs.
type TableSource interface {
	TableList(ctx context.Context) (map[string][]*models.Table, error)
}

// Loader holds the table catalog of one selection session.
type Loader struct {
	api TableSource

	mu     sync.Mutex
	tables map[string][]*models.Table
}

func NewLoader(api TableSource) *Loader {
	return &Loader{api: api, tables: map[string][]*models.Table{}}
}

// LoadTables replaces the catalog. On failure the previous catalog is kept as is.
func (l *Loader) LoadTables(ctx context.Context) (map[string][]*models.Table, error) {
	logger := logging.GetLogger()
	logger.Println("LoadTables:>Start")
	defer logger.Println("LoadTables:>End")

	tables, err := l.api.TableList(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed TableList()")
	}
	for area, list := range tables {
		for _, t := range list {
			if t.ID == "" {
				t.ID = strconv.Itoa(t.DatabaseID)
			}
			if t.Area == "" {
				t.Area = area
			}
			t.Selected = false
		}
	}

	l.mu.Lock()
	l.tables = tables
	l.mu.Unlock()

	logger.Infof("loaded %d areas", len(tables))
	return tables, nil
}

func (l *Loader) find(id string) *models.Table {
	for _, list := range l.tables {
		for _, t := range list {
			if t.ID == id {
				return t
			}
		}
	}
	return nil
}

// SelectTable toggles the selection. Full, inactive or otherwise unavailable tables are ignored.
func (l *Loader) SelectTable(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := l.find(id)
	if t == nil {
		return
	}
	if t.Selected {
		t.Selected = false
		return
	}
	if !t.Selectable() {
		return
	}
	t.Selected = true
}

// Preselect selects tables by server id, as carried over from a previous step.
func (l *Loader) Preselect(databaseIDs []int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, id := range databaseIDs {
		for _, list := range l.tables {
			for _, t := range list {
				if t.DatabaseID == id && t.Selectable() {
					t.Selected = true
				}
			}
		}
	}
}

func (l *Loader) Areas() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return sortedAreas(l.tables)
}

func (l *Loader) Tables(area string) []*models.Table {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tables[area]
}

func (l *Loader) selected() []*models.Table {
	var out []*models.Table
	for _, area := range sortedAreas(l.tables) {
		for _, t := range l.tables[area] {
			if t.Selected {
				out = append(out, t)
			}
		}
	}
	return out
}

func (l *Loader) SelectedTables() []*models.Table {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selected()
}

func (l *Loader) SelectedIDs() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var ids []int
	for _, t := range l.selected() {
		ids = append(ids, t.DatabaseID)
	}
	return ids
}

func (l *Loader) TotalSelectedSeats() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0
	for _, t := range l.selected() {
		total += t.Seats
	}
	return total
}

// SelectedSections lists the areas holding at least one selected table.
func (l *Loader) SelectedSections() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var sections []string
	seen := map[string]bool{}
	for _, t := range l.selected() {
		for _, area := range sortedAreas(l.tables) {
			if seen[area] || !contains(l.tables[area], t.ID) {
				continue
			}
			seen[area] = true
			sections = append(sections, area)
		}
	}
	return sections
}

func contains(list []*models.Table, id string) bool {
	for _, t := range list {
		if t.ID == id {
			return true
		}
	}
	return false
}

func sortedAreas(tables map[string][]*models.Table) []string {
	areas := make([]string, 0, len(tables))
	for area := range tables {
		areas = append(areas, area)
	}
	sort.Strings(areas)
	return areas
}
