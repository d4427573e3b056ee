package gateway

import (
	"context"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

// Logbook manages recorded flights across all pilots. Unlike the other
// entities it has no ACTIVE/DEACTIVE toggle; the list filters on flight
// type instead.
type Logbook struct {
	c *client.Client
}

func NewLogbook(c *client.Client) *Logbook {
	return &Logbook{c: c}
}

func (g *Logbook) List(ctx context.Context, q ListQuery) (ListResult[dtos.LogbookEntry], error) {
	var data dtos.LogbookListData
	err := g.c.GetJSON(ctx, "/logbook/all-logbook", q.Values("type"), &data, "Failed to fetch logbook entries")
	if err != nil {
		return ListResult[dtos.LogbookEntry]{}, err
	}
	return ListResult[dtos.LogbookEntry]{Items: data.Entries, Total: data.Pagination.TotalItems}, nil
}

func (g *Logbook) Create(ctx context.Context, input dtos.LogbookInput) (dtos.LogbookEntry, error) {
	var entry dtos.LogbookEntry
	err := g.c.PostJSON(ctx, "/logbook/create", input, &entry, "Failed to create logbook entry")
	return entry, err
}

func (g *Logbook) Update(ctx context.Context, id string, input dtos.LogbookInput) (dtos.LogbookEntry, error) {
	var entry dtos.LogbookEntry
	err := g.c.PatchJSON(ctx, "/logbook/update/"+id, input, &entry, "Failed to update logbook entry")
	return entry, err
}

func (g *Logbook) Delete(ctx context.Context, id string) error {
	return g.c.Delete(ctx, "/logbook/delete/"+id, nil, "Failed to delete logbook entry")
}
