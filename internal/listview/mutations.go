package listview

import (
	"context"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/logging"
)

// Activate flips one row to ACTIVE. The row's tracking id is set for the
// duration of the call and cleared when it settles, success or failure.
// On success the one row is patched from the server-echoed entity; the
// rest of the list is untouched.
func (c *Controller[T]) Activate(ctx context.Context, id string) {
	if c.cfg.Activate == nil {
		return
	}

	c.mu.Lock()
	c.activatingID = id
	c.mu.Unlock()

	row, err := c.cfg.Activate(ctx, id)

	c.mu.Lock()
	if c.activatingID == id {
		c.activatingID = ""
	}
	if err == nil {
		c.patchRow(row)
	}
	c.mu.Unlock()

	if err != nil {
		logging.WithOperation(c.cfg.Label, "activate").Warnw("mutation failed",
			"id", id,
			"error", err.Error(),
		)
		c.cfg.Notifier.Error(client.Message(err))
		return
	}
	c.cfg.Notifier.Success(c.cfg.Label + " activated")
}

// Deactivate flips one row to DEACTIVE, mirroring Activate.
func (c *Controller[T]) Deactivate(ctx context.Context, id string) {
	if c.cfg.Deactivate == nil {
		return
	}

	c.mu.Lock()
	c.deactivatingID = id
	c.mu.Unlock()

	row, err := c.cfg.Deactivate(ctx, id)

	c.mu.Lock()
	if c.deactivatingID == id {
		c.deactivatingID = ""
	}
	if err == nil {
		c.patchRow(row)
	}
	c.mu.Unlock()

	if err != nil {
		logging.WithOperation(c.cfg.Label, "deactivate").Warnw("mutation failed",
			"id", id,
			"error", err.Error(),
		)
		c.cfg.Notifier.Error(client.Message(err))
		return
	}
	c.cfg.Notifier.Success(c.cfg.Label + " deactivated")
}

// Delete removes one row. On success the row leaves the in-memory list
// and total drops by one; on failure the list is left as it was.
func (c *Controller[T]) Delete(ctx context.Context, id string) {
	if c.cfg.Delete == nil {
		return
	}

	c.mu.Lock()
	c.deletingID = id
	c.mu.Unlock()

	err := c.cfg.Delete(ctx, id)

	c.mu.Lock()
	if c.deletingID == id {
		c.deletingID = ""
	}
	if err == nil {
		c.removeRow(id)
	}
	c.mu.Unlock()

	if err != nil {
		logging.WithOperation(c.cfg.Label, "delete").Warnw("mutation failed",
			"id", id,
			"error", err.Error(),
		)
		c.cfg.Notifier.Error(client.Message(err))
		return
	}
	c.cfg.Notifier.Success(c.cfg.Label + " deleted")
}

// patchRow replaces the row matching the entity's id. Caller holds mu.
func (c *Controller[T]) patchRow(row T) {
	id := row.EntityID()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items[i] = row
			return
		}
	}
}

// removeRow drops the row with the given id. Caller holds mu.
func (c *Controller[T]) removeRow(id string) {
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			if c.total > 0 {
				c.total--
			}
			return
		}
	}
}
