package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateScrapedPosts, downCreateScrapedPosts)
}

func upCreateScrapedPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS scraped_posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		post_shortcode TEXT UNIQUE NOT NULL,
		link TEXT NOT NULL,
		post_date TEXT,
		last_record TEXT NOT NULL,
		owner TEXT,
		likes TEXT,
		comments TEXT,
		views TEXT,
		engagement_rate TEXT,
		is_video INTEGER NOT NULL DEFAULT 0,
		error TEXT
	);
	`)
	return err
}

func downCreateScrapedPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE scraped_posts;`)
	return err
}
