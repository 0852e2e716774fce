package repository

import (
	"context"

	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/Astemirdum/bookreview-service/stats/internal/errs"
	"github.com/Astemirdum/bookreview-service/stats/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	SaveEvent(ctx context.Context, event kafka.BookEvent) error
	GetStats(ctx context.Context) (model.StatsInfo, error)
	GetBookStats(ctx context.Context, bookID string) (model.BookStats, error)
}

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type repository struct {
	db  DB
	log *zap.Logger
}

func NewRepository(db DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	eventsTableName = `events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) SaveEvent(ctx context.Context, event kafka.BookEvent) error {
	q, args, err := qb.Insert(eventsTableName).
		Columns("id", "timestamp", "event_type", "book_id", "title", "rating", "reviews").
		Values(event.ID, event.Timestamp, string(event.Type), event.BookID, event.Title, event.Rating, event.Reviews).
		ToSql()
	if err != nil {
		return err
	}
	if _, err = r.db.Exec(ctx, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrDuplicateEvent
		}
		return errors.Wrap(err, "insert event")
	}
	return nil
}

func (r *repository) GetStats(ctx context.Context) (model.StatsInfo, error) {
	q, args, err := statsQuery().OrderBy("book_id").ToSql()
	if err != nil {
		return model.StatsInfo{}, err
	}
	stats, err := r.collect(ctx, q, args...)
	if err != nil {
		return model.StatsInfo{}, err
	}
	return model.StatsInfo{Data: stats}, nil
}

func (r *repository) GetBookStats(ctx context.Context, bookID string) (model.BookStats, error) {
	q, args, err := statsQuery().Where(sq.Eq{"book_id": bookID}).ToSql()
	if err != nil {
		return model.BookStats{}, err
	}
	stats, err := r.collect(ctx, q, args...)
	if err != nil {
		return model.BookStats{}, err
	}
	if len(stats) == 0 {
		return model.BookStats{}, errs.ErrNotFound
	}
	return stats[0], nil
}

func (r *repository) collect(ctx context.Context, q string, args ...any) ([]model.BookStats, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query stats")
	}
	defer rows.Close()
	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.BookStats])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return stats, nil
}

const described = `event_type <> 'BOOK_DELETED'`

func statsQuery() sq.SelectBuilder {
	return qb.Select(
		"book_id",
		"coalesce((array_agg(title order by timestamp desc) filter (where "+described+"))[1], '') as title",
		"coalesce((array_agg(reviews order by timestamp desc) filter (where "+described+"))[1], 0) as reviews",
		"coalesce((array_agg(rating order by timestamp desc) filter (where "+described+"))[1], 0) as avg_rating",
		"count(*) filter (where event_type = 'BOOK_UPDATED') as updates",
		"bool_or(event_type = 'BOOK_DELETED') as deleted",
		"max(timestamp) as last_updated",
	).
		From(eventsTableName).
		GroupBy("book_id")
}
