package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campus-compliments/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a row addressed by ID does not exist.
var ErrNotFound = errors.New("repository: not found")

// Repository implements the repository interface for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// InsertCompliment stores a fully populated compliment.
func (r *Repository) InsertCompliment(ctx context.Context, c models.Compliment) error {
	sql := `
		INSERT INTO compliments (id, building_code, building_name, text, lng, lat, created_at, likes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, sql,
		c.ID,
		c.BuildingCode,
		c.BuildingName,
		c.Text,
		c.Coordinates.Lng(),
		c.Coordinates.Lat(),
		c.Timestamp,
		c.Likes,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert compliment: %w", err)
	}
	return nil
}

// ListCompliments returns compliments newest first, narrowed by filter.
func (r *Repository) ListCompliments(ctx context.Context, filter models.ComplimentFilter) ([]models.Compliment, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.Query != "" {
		args = append(args, "%"+escapeLike(filter.Query)+"%")
		where = append(where, fmt.Sprintf("(text ILIKE $%d OR building_name ILIKE $%d)", len(args), len(args)))
	}
	if filter.BuildingCode != "" {
		args = append(args, filter.BuildingCode)
		where = append(where, fmt.Sprintf("building_code = $%d", len(args)))
	}

	sql := `
		SELECT id, building_code, building_name, text, lng, lat, created_at, likes
		FROM compliments
	`
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY created_at DESC, id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	compliments := []models.Compliment{}
	for rows.Next() {
		var c models.Compliment
		var lng, lat float64
		err := rows.Scan(
			&c.ID,
			&c.BuildingCode,
			&c.BuildingName,
			&c.Text,
			&lng,
			&lat,
			&c.Timestamp,
			&c.Likes,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan compliment: %w", err)
		}
		c.Coordinates = models.Coordinates{lng, lat}
		compliments = append(compliments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return compliments, nil
}

// AdjustLikes adds delta to a compliment's like count, never going below zero,
// and returns the new count.
func (r *Repository) AdjustLikes(ctx context.Context, id string, delta int) (int, error) {
	sql := `
		UPDATE compliments
		SET likes = GREATEST(likes + $2, 0)
		WHERE id = $1
		RETURNING likes
	`

	var likes int
	err := r.db.QueryRow(ctx, sql, id, delta).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("repository: failed to update likes: %w", err)
	}
	return likes, nil
}

// ComplimentStats counts all compliments, distinct building codes and
// compliments created at or after since.
func (r *Repository) ComplimentStats(ctx context.Context, since time.Time) (models.Stats, error) {
	sql := `
		SELECT
			COUNT(*),
			COUNT(DISTINCT building_code),
			COUNT(*) FILTER (WHERE created_at >= $1)
		FROM compliments
	`

	var s models.Stats
	err := r.db.QueryRow(ctx, sql, since).Scan(&s.TotalCompliments, &s.ActiveLocations, &s.TodayCompliments)
	if err != nil {
		return s, fmt.Errorf("repository: failed to compute stats: %w", err)
	}
	return s, nil
}

// InsertFeedback stores a feedback message and returns its ID.
func (r *Repository) InsertFeedback(ctx context.Context, f models.Feedback) (int64, error) {
	sql := `
		INSERT INTO feedback (text, email, user_agent, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, sql, f.Text, f.Email, f.UserAgent, f.Timestamp).Scan(&id); err != nil {
		return 0, fmt.Errorf("repository: failed to insert feedback: %w", err)
	}
	return id, nil
}

// ListBuildings returns the building catalog in import order.
func (r *Repository) ListBuildings(ctx context.Context) ([]models.Building, error) {
	sql := `
		SELECT building_code, building_name, address, city, state, zip_code
		FROM buildings
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute buildings query: %w", err)
	}
	defer rows.Close()

	buildings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Building, error) {
		var b models.Building
		err := row.Scan(&b.BuildingCode, &b.BuildingName, &b.Address, &b.City, &b.State, &b.ZipCode)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan building: %w", err)
	}
	return buildings, nil
}

// ReplaceBuildings swaps the whole catalog in one transaction using COPY.
func (r *Repository) ReplaceBuildings(ctx context.Context, buildings []models.Building) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM buildings"); err != nil {
		return 0, fmt.Errorf("repository: failed to clear buildings: %w", err)
	}

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"buildings"},
		[]string{"building_code", "building_name", "address", "city", "state", "zip_code"},
		pgx.CopyFromSlice(len(buildings), func(i int) ([]interface{}, error) {
			b := buildings[i]
			return []interface{}{b.BuildingCode, b.BuildingName, b.Address, b.City, b.State, b.ZipCode}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy buildings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit: %w", err)
	}
	return n, nil
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("repository: ping: %w", err)
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
