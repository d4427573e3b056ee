package listview

// State is a point-in-time copy of a controller's visible state, safe
// to hand to a renderer while the controller keeps mutating.
type State[T Entity] struct {
	Items  []T
	Total  int
	Page   int
	Limit  int
	Search string
	Status string

	Loading bool
	Err     string

	ActivatingID   string
	DeactivatingID string
	DeletingID     string
}

// TotalPages derives the page count from Total and Limit.
func (s State[T]) TotalPages() int {
	if s.Limit < 1 {
		return 0
	}
	return (s.Total + s.Limit - 1) / s.Limit
}

// Snapshot copies the current state under the controller's lock.
func (c *Controller[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	return State[T]{
		Items:          items,
		Total:          c.total,
		Page:           c.query.Page,
		Limit:          c.query.Limit,
		Search:         c.query.Search,
		Status:         c.query.Status,
		Loading:        c.loading,
		Err:            c.errMsg,
		ActivatingID:   c.activatingID,
		DeactivatingID: c.deactivatingID,
		DeletingID:     c.deletingID,
	}
}
