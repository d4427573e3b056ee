package web

import (
	"strconv"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/listview"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/notify"
)

// Column binds one table column to a typed field accessor, replacing
// the stringly-keyed render callbacks the old dashboard used.
type Column[T listview.Entity] struct {
	Title string
	Cell  func(T) string
}

// rowView is one rendered table row.
type rowView struct {
	ID     string
	Cells  []string
	Status string
	// Busy marks the in-flight mutation on this row, for the spinner.
	Busy string
}

// tableView feeds the entity table template.
type tableView struct {
	Title   string
	Base    string
	Headers []string

	Rows       []rowView
	Page       int
	TotalPages int
	Total      int
	Limit      int
	Search     string
	Status     string

	StatusOptions []string
	CanToggle     bool
	Loading       bool
	Err           string
	Flashes       []notify.Notification

	// Colspan covers every column including status and actions, for the
	// empty-state row.
	Colspan int
	// Reload asks the fragment to re-fetch itself once the pending
	// debounced load has settled.
	Reload bool
}

func buildTable[T listview.Entity](title, base string, cols []Column[T], statusOptions []string, canToggle bool, state listview.State[T], status func(T) string, flashes []notify.Notification) tableView {
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Title
	}

	rows := make([]rowView, len(state.Items))
	for i, item := range state.Items {
		cells := make([]string, len(cols))
		for j, col := range cols {
			cells[j] = col.Cell(item)
		}
		row := rowView{ID: item.EntityID(), Cells: cells}
		if status != nil {
			row.Status = status(item)
		}
		switch item.EntityID() {
		case state.ActivatingID:
			row.Busy = "activating"
		case state.DeactivatingID:
			row.Busy = "deactivating"
		case state.DeletingID:
			row.Busy = "deleting"
		}
		rows[i] = row
	}

	colspan := len(cols) + 1
	if canToggle {
		colspan++
	}

	return tableView{
		Colspan:       colspan,
		Title:         title,
		Base:          base,
		Headers:       headers,
		Rows:          rows,
		Page:          state.Page,
		TotalPages:    state.TotalPages(),
		Total:         state.Total,
		Limit:         state.Limit,
		Search:        state.Search,
		Status:        state.Status,
		StatusOptions: statusOptions,
		CanToggle:     canToggle,
		Loading:       state.Loading,
		Err:           state.Err,
		Flashes:       flashes,
	}
}

func itoa(n int) string { return strconv.Itoa(n) }

// entityStatus reads the status column off the common entities.
func pilotStatus(p dtos.PilotUser) string       { return p.Status }
func instructorStatus(i dtos.Instructor) string { return i.Status }
func membershipStatus(m dtos.Membership) string { return m.Status }
func ebookStatus(e dtos.Ebook) string           { return e.Status }
func podcastStatus(p dtos.Podcast) string       { return p.Status }
func promoCodeStatus(p dtos.PromoCode) string   { return p.Status }
