package record

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/NandoXu/ig-reels-analytics/internal/domain"
	"github.com/NandoXu/ig-reels-analytics/internal/normalize"
	"github.com/NandoXu/ig-reels-analytics/internal/repositories"
	apperrors "github.com/NandoXu/ig-reels-analytics/pkg/errors"
	"github.com/NandoXu/ig-reels-analytics/pkg/logger"
)

const table = "scraped_posts"

var columns = []string{
	"post_shortcode", "link", "post_date", "last_record",
	"owner", "likes", "comments", "views", "engagement_rate", "is_video", "error",
}

type SQLite struct {
	db     *sql.DB
	logger logger.Logger
}

func NewSQLite(db *sql.DB, logger logger.Logger) *SQLite {
	return &SQLite{
		db:     db,
		logger: logger.WithComponent("RecordRepo"),
	}
}

var _ Repository = (*SQLite)(nil)

// Upsert stores one scrape attempt, replacing any earlier record with the
// same shortcode.
func (r *SQLite) Upsert(ctx context.Context, rec *domain.PostResult) error {
	var errColumn any
	if rec.Error != "" {
		errColumn = rec.Error
	}

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Options("OR REPLACE").
		Columns(columns...).
		Values(
			rec.Shortcode,
			rec.URL,
			rec.PostDate.String(),
			rec.LastRecord.UTC().Format(time.RFC3339),
			rec.Owner,
			rec.Likes.String(),
			rec.Comments.String(),
			rec.Views.String(),
			rec.EngagementRate.String(),
			rec.IsVideo,
			errColumn,
		).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Wrap(err, "failed to store record")
	}

	r.logger.Info("Record stored", "shortcode", rec.Shortcode)
	return nil
}

// ListAll returns every stored record, most recent scrape first.
func (r *SQLite) ListAll(ctx context.Context) ([]*domain.PostResult, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		OrderBy("last_record DESC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}
	defer rows.Close()

	var records []*domain.PostResult
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByShortcode returns one stored record or ErrNotFound.
func (r *SQLite) GetByShortcode(ctx context.Context, shortcode string) (*domain.PostResult, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"post_shortcode": shortcode}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// DeleteByLink removes the record whose shortcode the link derives to.
func (r *SQLite) DeleteByLink(ctx context.Context, link string) error {
	shortcode := normalize.ExtractShortcode(link)
	if shortcode == "" {
		return ErrInvalidLink
	}

	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Eq{"post_shortcode": shortcode}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		r.logger.Warn("No record to delete", "shortcode", shortcode, "link", link)
		return nil
	}

	r.logger.Info("Record deleted", "shortcode", shortcode)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.PostResult, error) {
	var (
		rec        domain.PostResult
		postDate   sql.NullString
		lastRecord string
		owner      sql.NullString
		likes      sql.NullString
		comments   sql.NullString
		views      sql.NullString
		rate       sql.NullString
		errText    sql.NullString
	)

	err := row.Scan(
		&rec.Shortcode,
		&rec.URL,
		&postDate,
		&lastRecord,
		&owner,
		&likes,
		&comments,
		&views,
		&rate,
		&rec.IsVideo,
		&errText,
	)
	if err != nil {
		return nil, err
	}

	rec.Owner = domain.Unknown
	if owner.Valid && owner.String != "" {
		rec.Owner = owner.String
	}
	rec.PostDate = domain.PostDateFromString(postDate.String)
	rec.Likes = domain.CountFromString(likes.String)
	rec.Comments = domain.CountFromString(comments.String)
	rec.Views = domain.CountFromString(views.String)
	rec.EngagementRate = domain.RateFromString(rate.String)
	rec.Error = errText.String

	if t, err := time.Parse(time.RFC3339, lastRecord); err == nil {
		rec.LastRecord = t
	}

	return &rec, nil
}
