package controller

import (
	"errors"
	"net/http"

	"go-news/internal/domain/gateway/api"
	"go-news/internal/domain/model"
	"go-news/internal/domain/model/external"
	"go-news/internal/domain/usecase/content"
	"go-news/pkg/msg"
	"go-news/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type ArticleController struct {
	api     *echo.Group
	useCase content.UseCase
}

func NewArticleController(api *echo.Group, useCase content.UseCase) *ArticleController {
	return &ArticleController{api: api, useCase: useCase}
}

// InitArticleRoutes initializes article routes
func (controller *ArticleController) InitArticleRoutes() {
	controller.api.GET("/api/articles", controller.ListArticles)
}

// ListArticles godoc
// @Summary List articles
// @Description Proxy the content API article listing
// @Tags articles
// @Produce json
// @Param categorySlug query string false "Category slug"
// @Param tagId query string false "Tag id"
// @Param authorSlug query string false "Author slug"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {array} entity.Article "Articles"
// @Failure 500 {object} model.ErrorResponse "Content API unreachable"
// @Router /api/articles [get]
func (controller *ArticleController) ListArticles(c echo.Context) error {
	query := external.ArticleQuery{
		CategorySlug: c.QueryParam("categorySlug"),
		TagID:        c.QueryParam("tagId"),
		AuthorSlug:   c.QueryParam("authorSlug"),
		Page:         numberutils.ToIntWithDefault(c.QueryParam("page"), 0),
		Limit:        numberutils.ToIntWithDefault(c.QueryParam("limit"), 0),
	}

	articles, err := controller.useCase.ListArticles(c.Request().Context(), query)
	if err != nil {
		var upstreamErr *api.UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.StatusCode >= http.StatusMultipleChoices {
			return c.JSON(upstreamErr.StatusCode, model.ErrorResponse{
				Error: msg.GetMessage("articles.fetch-status", http.StatusText(upstreamErr.StatusCode)),
			})
		}
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("articles.fetch-failed")})
	}

	return c.JSON(http.StatusOK, articles)
}
