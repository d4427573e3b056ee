package gateway

import (
	"context"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

// PromoCodes manages checkout discount codes.
type PromoCodes struct {
	c *client.Client
}

func NewPromoCodes(c *client.Client) *PromoCodes {
	return &PromoCodes{c: c}
}

func (g *PromoCodes) List(ctx context.Context, q ListQuery) (ListResult[dtos.PromoCode], error) {
	var data dtos.PromoCodeListData
	err := g.c.GetJSON(ctx, "/promocode/all-promocode", q.Values("status"), &data, "Failed to fetch promo codes")
	if err != nil {
		return ListResult[dtos.PromoCode]{}, err
	}
	return ListResult[dtos.PromoCode]{Items: data.PromoCodes, Total: data.Pagination.TotalItems}, nil
}

func (g *PromoCodes) Create(ctx context.Context, input dtos.PromoCodeInput) (dtos.PromoCode, error) {
	var code dtos.PromoCode
	err := g.c.PostJSON(ctx, "/promocode/create", input, &code, "Failed to create promo code")
	return code, err
}

func (g *PromoCodes) Update(ctx context.Context, id string, input dtos.PromoCodeInput) (dtos.PromoCode, error) {
	var code dtos.PromoCode
	err := g.c.PatchJSON(ctx, "/promocode/update/"+id, input, &code, "Failed to update promo code")
	return code, err
}

func (g *PromoCodes) Delete(ctx context.Context, id string) error {
	return g.c.Delete(ctx, "/promocode/delete/"+id, nil, "Failed to delete promo code")
}

func (g *PromoCodes) Activate(ctx context.Context, id string) (dtos.PromoCode, error) {
	var code dtos.PromoCode
	err := g.c.PatchJSON(ctx, "/promocode/to-active/"+id, nil, &code, "Failed to activate promo code")
	return code, err
}

func (g *PromoCodes) Deactivate(ctx context.Context, id string) (dtos.PromoCode, error) {
	var code dtos.PromoCode
	err := g.c.PatchJSON(ctx, "/promocode/to-deactive/"+id, nil, &code, "Failed to deactivate promo code")
	return code, err
}
