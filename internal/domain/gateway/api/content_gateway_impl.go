package api

import (
	"context"
	"strconv"
	"time"

	"go-news/internal/domain/entity"
	"go-news/internal/domain/model/external"
	"go-news/pkg/http"
	"go-news/pkg/log"

	"go.uber.org/zap"
)

const contentService = "articles"

type contentGatewayImpl struct {
	httpClient *http.Client
	timeout    time.Duration
}

// NewContentGateway creates a new instance of ContentGateway with HTTP client
func NewContentGateway(baseUrl string, timeout time.Duration, clientOptions http.ClientOptions) ContentGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	clientOptions.ReadTimeout = timeout
	// moved listings are followed, as a browser fetch would
	clientOptions.FollowRedirect = true

	return &contentGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		timeout:    timeout,
	}
}

// ListArticles lists articles from GET /articles
func (c *contentGatewayImpl) ListArticles(ctx context.Context, query external.ArticleQuery) ([]entity.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	successResp, errResp, status, err := c.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/articles").
		WithQueryParams(articleQueryParams(query)).
		WithSuccessResp(&[]entity.Article{}).
		WithErrorResp(&external.ContentAPIErrorResponse{}).
		Execute()

	if err == nil {
		return *successResp.(*[]entity.Article), nil
	}

	fields := []zap.Field{zap.Int("status", status), zap.Error(err)}
	if errResp != nil {
		body := errResp.(*external.ContentAPIErrorResponse)
		fields = append(fields, zap.String("provider_message", body.Message+body.Error))
	}
	log.Warn("content provider request failed", fields...)

	return nil, &UpstreamError{Service: contentService, Kind: ErrUpstreamFetch, StatusCode: status, Err: err}
}

func articleQueryParams(query external.ArticleQuery) map[string]string {
	params := make(map[string]string)
	if query.CategorySlug != "" {
		params["categorySlug"] = query.CategorySlug
	}
	if query.TagID != "" {
		params["tagId"] = query.TagID
	}
	if query.AuthorSlug != "" {
		params["authorSlug"] = query.AuthorSlug
	}
	if query.Limit > 0 {
		params["limit"] = strconv.Itoa(query.Limit)
	}
	if query.Page > 0 {
		params["page"] = strconv.Itoa(query.Page)
	}
	return params
}
