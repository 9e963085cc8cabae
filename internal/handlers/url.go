package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/abinbabu/url-shortener/internal/shortener"
	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// URLHandler handles shortening, redirect, and history operations.
type URLHandler struct {
	service *shortener.Service
	logger  *zap.Logger
}

// NewURLHandler creates a new URL handler over the shortening service.
func NewURLHandler(service *shortener.Service, logger *zap.Logger) *URLHandler {
	return &URLHandler{
		service: service,
		logger:  logger,
	}
}

// ShortenURL creates a mapping for the request's original URL. Every
// creation failure, validation included, surfaces as a 500 so the caller
// retries the whole operation.
func (h *URLHandler) ShortenURL(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	mapping, err := h.service.Create(ctx, req.Body.OriginalURL, req.Body.UserID)
	if err != nil {
		h.logger.Error("failed to shorten url",
			zap.String("owner_id", req.Body.UserID),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to shorten url")
	}

	resp := &ShortenResponse{}
	resp.Body.ShortURL = mapping.ShortURL

	return resp, nil
}

// RedirectToURL resolves the short URL and redirects with a 302.
func (h *URLHandler) RedirectToURL(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	originalURL, err := h.service.Resolve(ctx, req.ShortURL)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		h.logger.Error("failed to resolve url",
			zap.String("short_url", req.ShortURL),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to resolve url")
	}

	resp := &RedirectResponse{
		Status: http.StatusFound,
	}
	resp.Headers.Location = originalURL

	return resp, nil
}

// GetHistory returns one page of the user's shortening history.
func (h *URLHandler) GetHistory(ctx context.Context, req *HistoryRequest) (*HistoryResponse, error) {
	page := parsePositive(req.Page, shortener.DefaultPage)
	limit := parsePositive(req.Limit, shortener.DefaultPageSize)

	history, err := h.service.History(ctx, req.UserID, page, limit)
	if err != nil {
		h.logger.Error("failed to load history",
			zap.String("owner_id", req.UserID),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to load history")
	}

	resp := &HistoryResponse{}
	resp.Body.Items = make([]HistoryItem, 0, len(history.Items))

	for _, m := range history.Items {
		resp.Body.Items = append(resp.Body.Items, HistoryItem{
			OriginalURL: m.OriginalURL,
			ShortURL:    m.ShortURL,
			CreatedAt:   m.CreatedAt,
		})
	}

	resp.Body.Total = history.Total
	resp.Body.CurrentPage = history.CurrentPage
	resp.Body.TotalPages = history.TotalPages
	resp.Body.HasNextPage = history.HasNextPage
	resp.Body.HasPrevPage = history.HasPrevPage

	return resp, nil
}

// parsePositive coerces a query value permissively: non-numeric input or
// values below 1 silently fall back to def instead of erroring.
func parsePositive(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}

	return n
}
