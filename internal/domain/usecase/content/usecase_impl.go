package content

import (
	"context"
	"fmt"

	"go-news/internal/domain/entity"
	"go-news/internal/domain/gateway/api"
	"go-news/internal/domain/model/external"
	"go-news/pkg/util/numberutils"
)

const maxArticlesLimit = 100

type contentUseCase struct {
	apiGateway api.ContentGateway
}

func NewContentUseCase(apiGateway api.ContentGateway) UseCase {
	return &contentUseCase{apiGateway: apiGateway}
}

// ListArticles clamps paging values before calling upstream. Zero values are left out of the query.
func (uc *contentUseCase) ListArticles(ctx context.Context, query external.ArticleQuery) ([]entity.Article, error) {
	if query.Limit != 0 {
		query.Limit = numberutils.ClampInt(query.Limit, 1, maxArticlesLimit)
	}
	if query.Page < 0 {
		query.Page = 0
	}

	articles, err := uc.apiGateway.ListArticles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	if articles == nil {
		articles = []entity.Article{}
	}
	return articles, nil
}
