package db

import (
	"context"

	"greengear/internal/models"

	"github.com/jackc/pgx/v5"
)

const postSelect = `
	SELECT p.id, p.user_id, p.title, p.content, p.post_type, p.likes, p.views, p.created_at,
		u.id, u.username, COUNT(c.id) AS comments_count
	FROM community_posts p
	JOIN users u ON p.user_id = u.id
	LEFT JOIN post_comments c ON c.post_id = p.id`

func (db *Database) CreatePost(ctx context.Context, p *models.CommunityPost) error {
	return db.Pool.QueryRow(ctx,
		`INSERT INTO community_posts (user_id, title, content, post_type)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		p.UserID, p.Title, p.Content, p.PostType,
	).Scan(&p.ID, &p.CreatedAt)
}

func (db *Database) ListPosts(ctx context.Context) ([]models.CommunityPost, error) {
	rows, err := db.Pool.Query(ctx,
		postSelect+`
		 GROUP BY p.id, u.id
		 ORDER BY p.created_at DESC, p.id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.CommunityPost
	for rows.Next() {
		var p models.CommunityPost
		if err := scanPost(rows, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

// GetPostAndIncrementViews bumps the post's view counter and returns the post
// as read after the bump. The increment is a single atomic UPDATE, so
// concurrent reads never lose counts.
func (db *Database) GetPostAndIncrementViews(ctx context.Context, postID int) (*models.CommunityPost, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		"UPDATE community_posts SET views = views + 1, updated_at = CURRENT_TIMESTAMP WHERE id = $1",
		postID,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}

	var p models.CommunityPost
	err = tx.QueryRow(ctx,
		postSelect+`
		 WHERE p.id = $1
		 GROUP BY p.id, u.id`,
		postID,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.PostType, &p.Likes, &p.Views, &p.CreatedAt,
		&p.Author.ID, &p.Author.Username, &p.CommentsCount)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &p, nil
}

func scanPost(rows pgx.Rows, p *models.CommunityPost) error {
	return rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.PostType, &p.Likes, &p.Views,
		&p.CreatedAt, &p.Author.ID, &p.Author.Username, &p.CommentsCount)
}

func (db *Database) CreateComment(ctx context.Context, c *models.PostComment) error {
	return db.Pool.QueryRow(ctx,
		`INSERT INTO post_comments (post_id, user_id, content)
		 VALUES ($1, $2, $3) RETURNING id, created_at`,
		c.PostID, c.UserID, c.Content,
	).Scan(&c.ID, &c.CreatedAt)
}

func (db *Database) ListComments(ctx context.Context, postID int) ([]models.PostComment, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT c.id, c.post_id, c.user_id, c.content, c.likes, c.created_at, u.id, u.username
		 FROM post_comments c
		 JOIN users u ON c.user_id = u.id
		 WHERE c.post_id = $1
		 ORDER BY c.created_at ASC, c.id ASC`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.PostComment
	for rows.Next() {
		var c models.PostComment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.Likes, &c.CreatedAt,
			&c.Author.ID, &c.Author.Username); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (db *Database) GetComment(ctx context.Context, commentID int) (*models.PostComment, error) {
	var c models.PostComment

	err := db.Pool.QueryRow(ctx,
		"SELECT id, post_id, user_id, content, likes, created_at FROM post_comments WHERE id = $1",
		commentID,
	).Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.Likes, &c.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &c, nil
}

// LikePost increments the post's like counter. Likes are deliberately not
// deduplicated per user; the atomic UPDATE keeps concurrent likes from
// losing counts.
func (db *Database) LikePost(ctx context.Context, postID int) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		"UPDATE community_posts SET likes = likes + 1, updated_at = CURRENT_TIMESTAMP WHERE id = $1",
		postID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (db *Database) LikeComment(ctx context.Context, commentID int) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		"UPDATE post_comments SET likes = likes + 1 WHERE id = $1",
		commentID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (db *Database) DeleteComment(ctx context.Context, commentID int) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		"DELETE FROM post_comments WHERE id = $1",
		commentID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
