package content

import (
	"context"

	"go-news/internal/domain/entity"
	"go-news/internal/domain/model/external"
)

type UseCase interface {
	// ListArticles proxies the content API article listing
	ListArticles(ctx context.Context, query external.ArticleQuery) ([]entity.Article, error)
}
