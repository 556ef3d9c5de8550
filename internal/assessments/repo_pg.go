package assessments

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, assessment Assessment) error {
	const query = `
INSERT INTO assessments (id, user_id, pain_level, mobility_level, condition, goals, top_score, result_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		assessment.ID,
		assessment.UserID,
		assessment.PainLevel,
		assessment.MobilityLevel,
		assessment.Condition,
		joinGoals(assessment.Goals),
		assessment.TopScore,
		assessment.ResultCount,
		assessment.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	const query = `
SELECT id, user_id, pain_level, mobility_level, condition, goals, top_score, result_count, created_at
FROM assessments
WHERE user_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Assessment, 0)
	for rows.Next() {
		rec, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, userID, assessmentID string) (Assessment, error) {
	const query = `
SELECT id, user_id, pain_level, mobility_level, condition, goals, top_score, result_count, created_at
FROM assessments
WHERE user_id = $1 AND id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID, assessmentID)
	rec, err := scanAssessment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var rec Assessment
	var goals string
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.PainLevel,
		&rec.MobilityLevel,
		&rec.Condition,
		&goals,
		&rec.TopScore,
		&rec.ResultCount,
		&rec.CreatedAt,
	)
	if err != nil {
		return Assessment{}, err
	}
	rec.Goals = splitGoals(goals)
	return rec, nil
}

func joinGoals(goals []string) string {
	trimmed := make([]string, 0, len(goals))
	for _, g := range goals {
		if g = strings.TrimSpace(g); g != "" {
			trimmed = append(trimmed, g)
		}
	}
	return strings.Join(trimmed, ",")
}

func splitGoals(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
