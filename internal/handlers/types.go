package handlers

import "time"

// ShortenRequest is the request body for shortening a URL. Fields are not
// validated at the schema level; the service rejects blank URLs itself.
type ShortenRequest struct {
	Body struct {
		OriginalURL string `doc:"The URL to shorten"               example:"https://example.com/very/long/path" json:"originalUrl,omitempty"`
		UserID      string `doc:"Identifier of the requesting user" example:"u1"                                 json:"userId,omitempty"`
	}
}

// ShortenResponse is the response for a successfully shortened URL.
type ShortenResponse struct {
	Body struct {
		ShortURL string `doc:"The short URL" example:"https://tinyurl.com/abc123" json:"shortUrl"`
	}
}

// RedirectRequest is the request for resolving a short URL.
type RedirectRequest struct {
	ShortURL string `doc:"The short URL to resolve" example:"abc123" path:"shortUrl"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}

// HistoryRequest is the request for a user's shortening history.
type HistoryRequest struct {
	UserID string `doc:"Owner of the history"                          example:"u1" path:"userId"`
	Page   string `doc:"1-based page number, defaults to 1"            example:"2"  query:"page"  required:"false"`
	Limit  string `doc:"Page size, defaults to 10"                     example:"10" query:"limit" required:"false"`
}

// HistoryItem is one entry of a history page.
type HistoryItem struct {
	OriginalURL string    `doc:"The original URL" json:"originalUrl"`
	ShortURL    string    `doc:"The short URL"    json:"shortUrl"`
	CreatedAt   time.Time `doc:"Creation time"    json:"createdAt"`
}

// HistoryResponse is one page of a user's shortening history, newest first.
type HistoryResponse struct {
	Body struct {
		Items       []HistoryItem `json:"items"`
		Total       int           `json:"total"`
		CurrentPage int           `json:"currentPage"`
		TotalPages  int           `json:"totalPages"`
		HasNextPage bool          `json:"hasNextPage"`
		HasPrevPage bool          `json:"hasPrevPage"`
	}
}
