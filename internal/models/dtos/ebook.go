package dtos

// Ebook is a downloadable study book. Cover image and PDF are uploaded
// through multipart bodies; the backend returns storage URLs.
type Ebook struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	CoverURL string `json:"coverImage,omitempty"`
	PdfURL   string `json:"pdf,omitempty"`
	Status   string `json:"status"`
}

func (e Ebook) EntityID() string { return e.ID }

// EbookListData is the payload of GET /ebook/all-ebook.
type EbookListData struct {
	Ebooks     []Ebook    `json:"ebooks"`
	Pagination Pagination `json:"pagination"`
}

// EbookInput carries the text fields of an e-book create or update.
type EbookInput struct {
	Title  string
	Author string
}
