package gateway

import (
	"context"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

// Pilots manages registered pilot accounts. The backend groups these
// endpoints under /admin with a -user suffix rather than a /pilot prefix.
type Pilots struct {
	c *client.Client
}

func NewPilots(c *client.Client) *Pilots {
	return &Pilots{c: c}
}

// List fetches one page of pilot users. This endpoint returns flat
// totalUsers/currentPage keys instead of the shared pagination block.
func (g *Pilots) List(ctx context.Context, q ListQuery) (ListResult[dtos.PilotUser], error) {
	var data dtos.PilotListData
	err := g.c.GetJSON(ctx, "/admin/all-users", q.Values("status"), &data, "Failed to fetch pilot users")
	if err != nil {
		return ListResult[dtos.PilotUser]{}, err
	}
	return ListResult[dtos.PilotUser]{Items: data.Users, Total: data.TotalUsers}, nil
}

func (g *Pilots) Create(ctx context.Context, input dtos.CreatePilotRequest) (dtos.PilotUser, error) {
	var pilot dtos.PilotUser
	err := g.c.PostJSON(ctx, "/admin/create-user", input, &pilot, "Failed to create pilot user")
	return pilot, err
}

func (g *Pilots) Update(ctx context.Context, id string, input dtos.UpdatePilotRequest) (dtos.PilotUser, error) {
	var pilot dtos.PilotUser
	err := g.c.PatchJSON(ctx, "/admin/update-user/"+id, input, &pilot, "Failed to update pilot user")
	return pilot, err
}

func (g *Pilots) Delete(ctx context.Context, id string) error {
	return g.c.Delete(ctx, "/admin/delete-user/"+id, nil, "Failed to delete pilot user")
}

// Activate flips the account to ACTIVE and returns the updated row.
func (g *Pilots) Activate(ctx context.Context, id string) (dtos.PilotUser, error) {
	var pilot dtos.PilotUser
	err := g.c.PatchJSON(ctx, "/admin/to-active-user/"+id, nil, &pilot, "Failed to activate pilot user")
	return pilot, err
}

// Deactivate flips the account to DEACTIVE and returns the updated row.
func (g *Pilots) Deactivate(ctx context.Context, id string) (dtos.PilotUser, error) {
	var pilot dtos.PilotUser
	err := g.c.PatchJSON(ctx, "/admin/to-deactive-user/"+id, nil, &pilot, "Failed to deactivate pilot user")
	return pilot, err
}
