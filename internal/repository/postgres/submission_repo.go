package postgres

import (
	"context"
	"go-studio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type submissionRepo struct {
	db *pgxpool.Pool
}

func NewSubmissionRepository(db *pgxpool.Pool) domain.SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Insert(ctx context.Context, sub *domain.ArchivedSubmission) error {
	query := `INSERT INTO contact_submissions (name, email, company, timeline, is_decision_maker, project_type, budget, message, elapsed_seconds, submitter_ip, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW()) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		sub.Name, sub.Email, sub.Company, sub.Timeline, sub.IsDecisionMaker,
		sub.ProjectType, sub.Budget, sub.Message, sub.ElapsedSeconds, sub.SubmitterIP,
	).Scan(&sub.ID, &sub.CreatedAt)
	return err
}

func (r *submissionRepo) List(ctx context.Context, limit int) ([]domain.ArchivedSubmission, error) {
	query := `SELECT id, name, email, company, timeline, is_decision_maker, project_type, budget, message, elapsed_seconds, submitter_ip, created_at
              FROM contact_submissions ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.ArchivedSubmission
	for rows.Next() {
		var sub domain.ArchivedSubmission
		if err := rows.Scan(
			&sub.ID, &sub.Name, &sub.Email, &sub.Company, &sub.Timeline, &sub.IsDecisionMaker,
			&sub.ProjectType, &sub.Budget, &sub.Message, &sub.ElapsedSeconds, &sub.SubmitterIP,
			&sub.CreatedAt,
		); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
