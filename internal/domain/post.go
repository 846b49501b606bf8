package domain

// PostSummary is the metadata-only view of a blog post used for listings
type PostSummary struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Date    string   `json:"date"` // free-form, compared as a plain string
	Author  string   `json:"author"`
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags"`
}

// PostDetail is a fully resolved post including its rendered HTML body
type PostDetail struct {
	PostSummary
	Content string `json:"content"`
}
