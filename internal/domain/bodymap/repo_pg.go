package bodymap

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a Repository backed by Postgres.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, p *PainPoint) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO pain_points (id, patient_id, x, y, intensity, description)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.PatientID, p.X, p.Y, p.Intensity, p.Description)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*PainPoint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, x, y, intensity, description, created_at
		FROM pain_points WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PainPoint
	for rows.Next() {
		var p PainPoint
		if err := rows.Scan(&p.ID, &p.PatientID, &p.X, &p.Y, &p.Intensity, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}
