package dtos

// Membership is a purchasable subscription plan.
type Membership struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceCents   int      `json:"priceCents"`
	DurationDays int      `json:"durationDays"`
	Features     []string `json:"features,omitempty"`
	Status       string   `json:"status"`
}

func (m Membership) EntityID() string { return m.ID }

// MembershipListData is the payload of GET /membership/all-membership.
type MembershipListData struct {
	Memberships []Membership `json:"memberships"`
	Pagination  Pagination   `json:"pagination"`
}

// MembershipInput is the body for membership create/update calls.
type MembershipInput struct {
	Name         string   `json:"name"`
	PriceCents   int      `json:"priceCents"`
	DurationDays int      `json:"durationDays"`
	Features     []string `json:"features,omitempty"`
}
