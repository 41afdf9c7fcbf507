package exercise

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a Repository backed by Postgres.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, e *Exercise) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO exercises (id, name, category, specialty, description, video_url)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Name, e.Category, e.Specialty, e.Description, e.VideoURL)
	return err
}

func (r *repoPG) List(ctx context.Context, f Filter, limit, offset int) ([]*Exercise, int, error) {
	where := ` WHERE 1=1`
	countWhere := where
	var args []interface{}
	idx := 1

	if f.Category != "" {
		clause := fmt.Sprintf(` AND category = $%d`, idx)
		where += clause
		countWhere += clause
		args = append(args, f.Category)
		idx++
	}
	if f.Specialty != "" {
		clause := fmt.Sprintf(` AND specialty = $%d`, idx)
		where += clause
		countWhere += clause
		args = append(args, f.Specialty)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM exercises`+countWhere, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, category, specialty, description, video_url, created_at
		FROM exercises%s ORDER BY name ASC LIMIT $%d OFFSET $%d`, where, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Specialty, &e.Description, &e.VideoURL, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &e)
	}
	return items, total, rows.Err()
}
