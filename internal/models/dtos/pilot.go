package dtos

// PilotUser is a registered pilot account managed from the dashboard.
type PilotUser struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	LicenseType string `json:"licenseType,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

func (p PilotUser) EntityID() string { return p.ID }

// PilotListData is the payload of GET /admin/all-users. This endpoint
// predates the shared pagination block and returns flat keys.
type PilotListData struct {
	Users       []PilotUser `json:"users"`
	TotalUsers  int         `json:"totalUsers"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
}

// CreatePilotRequest is the body for POST /admin/create-user.
type CreatePilotRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	LicenseType string `json:"licenseType,omitempty"`
	Password    string `json:"password"`
}

// UpdatePilotRequest is the body for PATCH /admin/update-user/:id.
// Empty fields are omitted so the backend keeps the current value.
type UpdatePilotRequest struct {
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LicenseType string `json:"licenseType,omitempty"`
}
