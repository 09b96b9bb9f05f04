package api

import (
	"context"

	"go-news/internal/domain/entity"
	"go-news/internal/domain/model/external"
)

// ContentGateway defines the content API calls
type ContentGateway interface {
	// ListArticles lists articles matching the non-empty filters of query
	ListArticles(ctx context.Context, query external.ArticleQuery) ([]entity.Article, error)
}
