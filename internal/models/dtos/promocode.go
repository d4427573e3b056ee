package dtos

// PromoCode is a discount code applied at checkout.
type PromoCode struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	ExpiresAt       string `json:"expiresAt,omitempty"`
	Status          string `json:"status"`
}

func (p PromoCode) EntityID() string { return p.ID }

// PromoCodeListData is the payload of GET /promocode/all-promocode.
type PromoCodeListData struct {
	PromoCodes []PromoCode `json:"promoCodes"`
	Pagination Pagination  `json:"pagination"`
}

// PromoCodeInput is the body for promo code create/update calls.
type PromoCodeInput struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	ExpiresAt       string `json:"expiresAt,omitempty"`
}
