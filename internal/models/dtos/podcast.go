package dtos

// Podcast is an audio episode published to members.
type Podcast struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Host        string `json:"host"`
	AudioURL    string `json:"audio,omitempty"`
	CoverURL    string `json:"coverImage,omitempty"`
	DurationSec int    `json:"durationSec"`
	Status      string `json:"status"`
}

func (p Podcast) EntityID() string { return p.ID }

// PodcastListData is the payload of GET /podcast/all-podcast.
type PodcastListData struct {
	Podcasts   []Podcast  `json:"podcasts"`
	Pagination Pagination `json:"pagination"`
}

// PodcastInput carries the text fields of a podcast create or update.
// Audio and cover files travel beside it as multipart file parts.
type PodcastInput struct {
	Title       string
	Host        string
	DurationSec int
}
