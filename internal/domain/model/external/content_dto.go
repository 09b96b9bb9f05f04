package external

// ArticleQuery carries the filters accepted by the content API articles listing
type ArticleQuery struct {
	CategorySlug string
	TagID        string
	AuthorSlug   string
	Page         int
	Limit        int
}

// ContentAPIErrorResponse represents error bodies returned by the content API
type ContentAPIErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
