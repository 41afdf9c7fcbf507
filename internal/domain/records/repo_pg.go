package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a Repository backed by Postgres.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const docCols = `id, patient_id, title, content, record_type, created_at`

func scanDocument(row pgx.Row) (*ClinicalDocument, error) {
	var d ClinicalDocument
	err := row.Scan(&d.ID, &d.PatientID, &d.Title, &d.Content, &d.RecordType, &d.CreatedAt)
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *ClinicalDocument) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clinical_documents (id, patient_id, title, content, record_type)
		VALUES ($1, $2, $3, $4, $5)`,
		d.ID, d.PatientID, d.Title, d.Content, d.RecordType)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*ClinicalDocument, error) {
	d, err := scanDocument(r.pool.QueryRow(ctx, `SELECT `+docCols+` FROM clinical_documents WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *repoPG) List(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*ClinicalDocument, int, error) {
	where := ""
	args := []interface{}{}
	if patientID != uuid.Nil {
		where = ` WHERE patient_id = $1`
		args = append(args, patientID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clinical_documents`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+docCols+` FROM clinical_documents%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*ClinicalDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}
