package dtos

// Instructor is a flight instructor shown on the marketing site and
// managed from the dashboard. Photo uploads go through multipart bodies.
type Instructor struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	ExperienceYears int    `json:"experienceYears"`
	ImageURL        string `json:"image,omitempty"`
	Status          string `json:"status"`
}

func (i Instructor) EntityID() string { return i.ID }

// InstructorListData is the payload of GET /instructor/all-instructor.
type InstructorListData struct {
	Instructors []Instructor `json:"instructors"`
	Pagination  Pagination   `json:"pagination"`
}

// InstructorInput carries the text fields of a create or update. The
// optional photo travels beside it as a multipart file part.
type InstructorInput struct {
	Name            string
	Email           string
	Phone           string
	ExperienceYears int
}
