package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsift"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docsift.ArticleService = (*ArticleService)(nil)

// ArticleService implements docsift.ArticleService using SQLite.
// Sections are stored in a child table ordered by position, with each
// section's blocks serialized as JSON.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashSections computes xxHash of the serialized sections, hex encoded.
func hashSections(sections []docsift.Section) string {
	data, err := json.Marshal(sections)
	if err != nil {
		return ""
	}
	h := xxhash.Sum64(data)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateArticle creates a new article with its sections.
func (s *ArticleService) CreateArticle(ctx context.Context, article *docsift.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.FetchedAt = time.Now().UTC()
	article.ContentHash = hashSections(article.Sections)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO articles (id, url, title, body_found, content_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.URL, article.Title, boolToInt(article.BodyFound),
		article.ContentHash, article.Position, article.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, section := range article.Sections {
		blocks, err := json.Marshal(section.Blocks)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sections (id, article_id, position, heading, blocks)
			VALUES (?, ?, ?, ?, ?)
		`, uuid.New().String(), article.ID, i, section.Heading, string(blocks))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindArticleByID retrieves an article by ID, including its sections.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*docsift.Article, error) {
	var article docsift.Article
	var bodyFound int
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, body_found, content_hash, position, fetched_at
		FROM articles
		WHERE id = ?
	`, id).Scan(&article.ID, &article.URL, &article.Title, &bodyFound,
		&article.ContentHash, &article.Position, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, docsift.Errorf(docsift.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	article.BodyFound = bodyFound != 0
	article.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	if err := s.loadSections(ctx, &article); err != nil {
		return nil, err
	}

	return &article, nil
}

// FindArticles retrieves articles matching the filter, including sections.
func (s *ArticleService) FindArticles(ctx context.Context, filter docsift.ArticleFilter) ([]*docsift.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, body_found, content_hash, position, fetched_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	switch filter.SortBy {
	case docsift.SortByPosition:
		query.WriteString(" ORDER BY position ASC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*docsift.Article
	for rows.Next() {
		var article docsift.Article
		var bodyFound int
		var fetchedAt string

		if err := rows.Scan(&article.ID, &article.URL, &article.Title, &bodyFound,
			&article.ContentHash, &article.Position, &fetchedAt); err != nil {
			return nil, err
		}

		article.BodyFound = bodyFound != 0
		article.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, article := range articles {
		if err := s.loadSections(ctx, article); err != nil {
			return nil, err
		}
	}

	return articles, nil
}

// DeleteArticle permanently removes an article; its sections are removed by
// the foreign key cascade.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docsift.Errorf(docsift.ENOTFOUND, "article not found")
	}

	return nil
}

// loadSections populates the article's sections in position order.
func (s *ArticleService) loadSections(ctx context.Context, article *docsift.Article) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT heading, blocks
		FROM sections
		WHERE article_id = ?
		ORDER BY position ASC
	`, article.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var section docsift.Section
		var blocks string

		if err := rows.Scan(&section.Heading, &blocks); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(blocks), &section.Blocks); err != nil {
			return err
		}

		article.Sections = append(article.Sections, section)
	}

	return rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
