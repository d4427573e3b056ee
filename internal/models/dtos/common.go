package dtos

import "encoding/json"

// Entity status values used by the dashboard backend. The backend spells
// the inactive state "DEACTIVE", not "INACTIVE".
const (
	StatusActive   = "ACTIVE"
	StatusDeactive = "DEACTIVE"
)

// APIEnvelope is the response wrapper every backend endpoint uses.
// Data is kept raw because the payload shape differs per entity.
type APIEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Pagination is the nested block most list endpoints return. The pilot
// users endpoint predates it and returns flat keys instead (see PilotList).
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}
