package gateway

import (
	"context"
	"io"
	"strconv"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

// Podcasts manages published audio episodes.
type Podcasts struct {
	c *client.Client
}

func NewPodcasts(c *client.Client) *Podcasts {
	return &Podcasts{c: c}
}

// PodcastUpload bundles the optional file parts of a create or update.
type PodcastUpload struct {
	Audio     io.Reader
	AudioName string
	Cover     io.Reader
	CoverName string
}

func (u PodcastUpload) parts() []client.FilePart {
	var parts []client.FilePart
	if u.Audio != nil {
		parts = append(parts, client.FilePart{Field: "audio", Filename: u.AudioName, Content: u.Audio})
	}
	if u.Cover != nil {
		parts = append(parts, client.FilePart{Field: "coverImage", Filename: u.CoverName, Content: u.Cover})
	}
	return parts
}

func (g *Podcasts) List(ctx context.Context, q ListQuery) (ListResult[dtos.Podcast], error) {
	var data dtos.PodcastListData
	err := g.c.GetJSON(ctx, "/podcast/all-podcast", q.Values("status"), &data, "Failed to fetch podcasts")
	if err != nil {
		return ListResult[dtos.Podcast]{}, err
	}
	return ListResult[dtos.Podcast]{Items: data.Podcasts, Total: data.Pagination.TotalItems}, nil
}

func (g *Podcasts) Create(ctx context.Context, input dtos.PodcastInput, upload PodcastUpload) (dtos.Podcast, error) {
	var podcast dtos.Podcast
	err := g.c.PostMultipart(ctx, "/podcast/create", podcastFields(input), upload.parts(), &podcast, "Failed to create podcast")
	return podcast, err
}

func (g *Podcasts) Update(ctx context.Context, id string, input dtos.PodcastInput, upload PodcastUpload) (dtos.Podcast, error) {
	var podcast dtos.Podcast
	err := g.c.PatchMultipart(ctx, "/podcast/update/"+id, podcastFields(input), upload.parts(), &podcast, "Failed to update podcast")
	return podcast, err
}

func (g *Podcasts) Delete(ctx context.Context, id string) error {
	return g.c.Delete(ctx, "/podcast/delete/"+id, nil, "Failed to delete podcast")
}

func (g *Podcasts) Activate(ctx context.Context, id string) (dtos.Podcast, error) {
	var podcast dtos.Podcast
	err := g.c.PatchJSON(ctx, "/podcast/to-active/"+id, nil, &podcast, "Failed to activate podcast")
	return podcast, err
}

func (g *Podcasts) Deactivate(ctx context.Context, id string) (dtos.Podcast, error) {
	var podcast dtos.Podcast
	err := g.c.PatchJSON(ctx, "/podcast/to-deactive/"+id, nil, &podcast, "Failed to deactivate podcast")
	return podcast, err
}

func podcastFields(input dtos.PodcastInput) map[string]string {
	return map[string]string{
		"title":       input.Title,
		"host":        input.Host,
		"durationSec": strconv.Itoa(input.DurationSec),
	}
}
