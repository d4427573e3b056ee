package gateway

import (
	"context"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

// Memberships manages subscription plans. The backend exposes update as
// PUT here, unlike the PATCH the other entities use.
type Memberships struct {
	c *client.Client
}

func NewMemberships(c *client.Client) *Memberships {
	return &Memberships{c: c}
}

func (g *Memberships) List(ctx context.Context, q ListQuery) (ListResult[dtos.Membership], error) {
	var data dtos.MembershipListData
	err := g.c.GetJSON(ctx, "/membership/all-membership", q.Values("status"), &data, "Failed to fetch memberships")
	if err != nil {
		return ListResult[dtos.Membership]{}, err
	}
	return ListResult[dtos.Membership]{Items: data.Memberships, Total: data.Pagination.TotalItems}, nil
}

func (g *Memberships) Create(ctx context.Context, input dtos.MembershipInput) (dtos.Membership, error) {
	var membership dtos.Membership
	err := g.c.PostJSON(ctx, "/membership/create", input, &membership, "Failed to create membership")
	return membership, err
}

func (g *Memberships) Update(ctx context.Context, id string, input dtos.MembershipInput) (dtos.Membership, error) {
	var membership dtos.Membership
	err := g.c.PutJSON(ctx, "/membership/update/"+id, input, &membership, "Failed to update membership")
	return membership, err
}

func (g *Memberships) Delete(ctx context.Context, id string) error {
	return g.c.Delete(ctx, "/membership/delete/"+id, nil, "Failed to delete membership")
}

func (g *Memberships) Activate(ctx context.Context, id string) (dtos.Membership, error) {
	var membership dtos.Membership
	err := g.c.PatchJSON(ctx, "/membership/to-active/"+id, nil, &membership, "Failed to activate membership")
	return membership, err
}

func (g *Memberships) Deactivate(ctx context.Context, id string) (dtos.Membership, error) {
	var membership dtos.Membership
	err := g.c.PatchJSON(ctx, "/membership/to-deactive/"+id, nil, &membership, "Failed to deactivate membership")
	return membership, err
}
