package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/ghostwriterhq/scheduler/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// postgresStore persists posts in a scheduled_posts table. DateTime is kept
// as text so the naive timestamp round-trips without zone interpretation.
type postgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) PostStore {
	return &postgresStore{db: db}
}

const postColumns = `id, owner_id, platform, content, date_time, status, image_url, created_at, wordpress_url, facebook_url, threads_url`

func scanPost(row interface{ Scan(...any) error }) (*models.ScheduledPost, error) {
	var p models.ScheduledPost
	err := row.Scan(&p.ID, &p.OwnerID, &p.Platform, &p.Content, &p.DateTime, &p.Status,
		&p.ImageURL, &p.CreatedAt, &p.WordpressURL, &p.FacebookURL, &p.ThreadsURL)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *postgresStore) Create(ctx context.Context, post *models.ScheduledPost) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	query := `
		INSERT INTO scheduled_posts (id, owner_id, platform, content, date_time, status, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	createdAt := time.Now()
	err = s.db.QueryRowContext(ctx, query,
		id, post.OwnerID, post.Platform, post.Content, post.DateTime,
		models.PostStatusScheduled, post.ImageURL, createdAt,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	post.Status = models.PostStatusScheduled
	return post.ID, nil
}

func (s *postgresStore) GetByID(ctx context.Context, ownerID, postID string) (*models.ScheduledPost, error) {
	query := `SELECT ` + postColumns + ` FROM scheduled_posts WHERE id = $1 AND owner_id = $2`
	post, err := scanPost(s.db.QueryRowContext(ctx, query, postID, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return post, nil
}

func (s *postgresStore) ListByOwner(ctx context.Context, ownerID string) ([]*models.ScheduledPost, error) {
	query := `SELECT ` + postColumns + ` FROM scheduled_posts WHERE owner_id = $1 ORDER BY date_time ASC`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (s *postgresStore) ListDueWordpress(ctx context.Context, cutoff string) ([]*models.ScheduledPost, error) {
	query := `
		SELECT ` + postColumns + `
		FROM scheduled_posts
		WHERE platform = $1 AND status = $2 AND date_time <= $3
		ORDER BY date_time ASC
	`
	rows, err := s.db.QueryContext(ctx, query, models.PlatformWordpress, models.PostStatusScheduled, cutoff)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func collectPosts(rows *sql.Rows) ([]*models.ScheduledPost, error) {
	var posts []*models.ScheduledPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (s *postgresStore) SetPublished(ctx context.Context, ownerID, postID, platform, publishedURL string) error {
	var urlColumn string
	switch platform {
	case models.PlatformWordpress:
		urlColumn = "wordpress_url"
	case models.PlatformFacebook:
		urlColumn = "facebook_url"
	case models.PlatformThreads:
		urlColumn = "threads_url"
	default:
		urlColumn = ""
	}

	query := `UPDATE scheduled_posts SET status = $1 WHERE id = $2 AND owner_id = $3`
	if urlColumn != "" {
		query = `UPDATE scheduled_posts SET status = $1, ` + urlColumn + ` = $4 WHERE id = $2 AND owner_id = $3`
	}

	var res sql.Result
	var err error
	if urlColumn != "" {
		res, err = s.db.ExecContext(ctx, query, models.PostStatusPublished, postID, ownerID, publishedURL)
	} else {
		res, err = s.db.ExecContext(ctx, query, models.PostStatusPublished, postID, ownerID)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postgresStore) Remove(ctx context.Context, ownerID, postID string) error {
	query := `DELETE FROM scheduled_posts WHERE id = $1 AND owner_id = $2`
	res, err := s.db.ExecContext(ctx, query, postID, ownerID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
