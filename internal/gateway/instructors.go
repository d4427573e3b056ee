package gateway

import (
	"context"
	"io"
	"strconv"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

// Instructors manages the flight instructor roster. Create and update
// are multipart because they can carry a profile photo.
type Instructors struct {
	c *client.Client
}

func NewInstructors(c *client.Client) *Instructors {
	return &Instructors{c: c}
}

func (g *Instructors) List(ctx context.Context, q ListQuery) (ListResult[dtos.Instructor], error) {
	var data dtos.InstructorListData
	err := g.c.GetJSON(ctx, "/instructor/all-instructor", q.Values("status"), &data, "Failed to fetch instructors")
	if err != nil {
		return ListResult[dtos.Instructor]{}, err
	}
	return ListResult[dtos.Instructor]{Items: data.Instructors, Total: data.Pagination.TotalItems}, nil
}

// Create registers an instructor. photo may be nil.
func (g *Instructors) Create(ctx context.Context, input dtos.InstructorInput, photo io.Reader, photoName string) (dtos.Instructor, error) {
	var instructor dtos.Instructor
	err := g.c.PostMultipart(ctx, "/instructor/create",
		instructorFields(input), photoParts(photo, photoName),
		&instructor, "Failed to create instructor")
	return instructor, err
}

func (g *Instructors) Update(ctx context.Context, id string, input dtos.InstructorInput, photo io.Reader, photoName string) (dtos.Instructor, error) {
	var instructor dtos.Instructor
	err := g.c.PatchMultipart(ctx, "/instructor/update/"+id,
		instructorFields(input), photoParts(photo, photoName),
		&instructor, "Failed to update instructor")
	return instructor, err
}

func (g *Instructors) Delete(ctx context.Context, id string) error {
	return g.c.Delete(ctx, "/instructor/delete/"+id, nil, "Failed to delete instructor")
}

func (g *Instructors) Activate(ctx context.Context, id string) (dtos.Instructor, error) {
	var instructor dtos.Instructor
	err := g.c.PatchJSON(ctx, "/instructor/to-active/"+id, nil, &instructor, "Failed to activate instructor")
	return instructor, err
}

func (g *Instructors) Deactivate(ctx context.Context, id string) (dtos.Instructor, error) {
	var instructor dtos.Instructor
	err := g.c.PatchJSON(ctx, "/instructor/to-deactive/"+id, nil, &instructor, "Failed to deactivate instructor")
	return instructor, err
}

func instructorFields(input dtos.InstructorInput) map[string]string {
	return map[string]string{
		"name":            input.Name,
		"email":           input.Email,
		"phone":           input.Phone,
		"experienceYears": strconv.Itoa(input.ExperienceYears),
	}
}

func photoParts(photo io.Reader, name string) []client.FilePart {
	if photo == nil {
		return nil
	}
	return []client.FilePart{{Field: "image", Filename: name, Content: photo}}
}
