package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers all URL shortener routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/urls/shorten",
		Summary:     "Shorten a URL",
		Description: "Creates a short URL for the given original URL, reusing any existing mapping for it.",
		Tags:        []string{"URLs"},
	}, urlHandler.ShortenURL)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/urls/history/{userId}",
		Summary:     "Get shortening history",
		Description: "Returns one page of the user's shortening history, newest first.",
		Tags:        []string{"URLs"},
	}, urlHandler.GetHistory)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/urls/{shortUrl}",
		Summary:     "Redirect to original URL",
		Description: "Redirects to the original URL associated with the short URL.",
		Tags:        []string{"URLs"},
	}, urlHandler.RedirectToURL)
}
