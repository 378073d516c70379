package mock

import (
	"context"

	"github.com/fwojciec/docsift"
)

var _ docsift.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of docsift.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *docsift.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*docsift.Article, error)
	FindArticlesFn    func(ctx context.Context, filter docsift.ArticleFilter) ([]*docsift.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *docsift.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*docsift.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter docsift.ArticleFilter) ([]*docsift.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}
