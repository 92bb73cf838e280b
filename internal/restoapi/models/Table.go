package models

const (
	TableStatusAvailable = "tersedia"
	TableStatusOccupied  = "terisi"
	TableStatusBooked    = "dipesan"
	TableStatusInactive  = "nonaktif"
)

type Table struct {
	ID         string `json:"id"`
	DatabaseID int    `json:"database_id"`
	Area       string `json:"area"`
	Seats      int    `json:"seats"`
	Status     string `json:"status"`
	Full       bool   `json:"full"`
	Selected   bool   `json:"-"`
}

// Selectable reports whether the table may be toggled into the selection.
func (t *Table) Selectable() bool {
	return !t.Full && t.Status == TableStatusAvailable
}

type TablesResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    map[string][]*Table `json:"data"`
}

type BookedTimesResponse struct {
	BookedTimes []string `json:"booked_times"`
}
