package gateway

import (
	"context"
	"io"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

// Ebooks manages the study library. Create and update are multipart:
// a cover image and the PDF itself.
type Ebooks struct {
	c *client.Client
}

func NewEbooks(c *client.Client) *Ebooks {
	return &Ebooks{c: c}
}

// EbookUpload bundles the optional file parts of a create or update.
type EbookUpload struct {
	Cover     io.Reader
	CoverName string
	Pdf       io.Reader
	PdfName   string
}

func (u EbookUpload) parts() []client.FilePart {
	var parts []client.FilePart
	if u.Cover != nil {
		parts = append(parts, client.FilePart{Field: "coverImage", Filename: u.CoverName, Content: u.Cover})
	}
	if u.Pdf != nil {
		parts = append(parts, client.FilePart{Field: "pdf", Filename: u.PdfName, Content: u.Pdf})
	}
	return parts
}

func (g *Ebooks) List(ctx context.Context, q ListQuery) (ListResult[dtos.Ebook], error) {
	var data dtos.EbookListData
	err := g.c.GetJSON(ctx, "/ebook/all-ebook", q.Values("status"), &data, "Failed to fetch ebooks")
	if err != nil {
		return ListResult[dtos.Ebook]{}, err
	}
	return ListResult[dtos.Ebook]{Items: data.Ebooks, Total: data.Pagination.TotalItems}, nil
}

func (g *Ebooks) Create(ctx context.Context, input dtos.EbookInput, upload EbookUpload) (dtos.Ebook, error) {
	var ebook dtos.Ebook
	err := g.c.PostMultipart(ctx, "/ebook/create", ebookFields(input), upload.parts(), &ebook, "Failed to create ebook")
	return ebook, err
}

func (g *Ebooks) Update(ctx context.Context, id string, input dtos.EbookInput, upload EbookUpload) (dtos.Ebook, error) {
	var ebook dtos.Ebook
	err := g.c.PatchMultipart(ctx, "/ebook/update/"+id, ebookFields(input), upload.parts(), &ebook, "Failed to update ebook")
	return ebook, err
}

func (g *Ebooks) Delete(ctx context.Context, id string) error {
	return g.c.Delete(ctx, "/ebook/delete/"+id, nil, "Failed to delete ebook")
}

func (g *Ebooks) Activate(ctx context.Context, id string) (dtos.Ebook, error) {
	var ebook dtos.Ebook
	err := g.c.PatchJSON(ctx, "/ebook/to-active/"+id, nil, &ebook, "Failed to activate ebook")
	return ebook, err
}

func (g *Ebooks) Deactivate(ctx context.Context, id string) (dtos.Ebook, error) {
	var ebook dtos.Ebook
	err := g.c.PatchJSON(ctx, "/ebook/to-deactive/"+id, nil, &ebook, "Failed to deactivate ebook")
	return ebook, err
}

func ebookFields(input dtos.EbookInput) map[string]string {
	return map[string]string{
		"title":  input.Title,
		"author": input.Author,
	}
}
