package repositories

import (
	"context"
	"database/sql"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/models"

	"github.com/google/uuid"
)

type ApplicationCriteria struct {
	Status *models.ApplicationStatus
	JobID  string
	Limit  int
	Offset int
}

type ApplicationRepository interface {
	// Create вставляет отклик со статусом pending. Уникальность пары
	// (job_id, artisan_profile_id) обеспечивает индекс БД, а не предварительная
	// проверка, поэтому гонка check-then-insert невозможна.
	Create(ctx context.Context, app *models.JobApplication) error
	FindByID(ctx context.Context, id string) (*models.JobApplication, error)
	ListByArtisan(ctx context.Context, artisanProfileID string, status *models.ApplicationStatus) ([]models.JobApplication, error)
	ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error)
	// List - выборка по всем откликам платформы (админский обзор)
	List(ctx context.Context, criteria ApplicationCriteria) ([]models.JobApplication, error)
	// DecideIfPending условно переводит pending-отклик в новый статус.
	// false — строка уже не pending (вторая гонка решений проигрывает здесь).
	DecideIfPending(ctx context.Context, id string, status models.ApplicationStatus) (bool, error)
	// WithdrawIfPending условно отзывает pending-отклик владельца.
	WithdrawIfPending(ctx context.Context, id, artisanProfileID string) (bool, error)
}

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, job_id, artisan_profile_id, cover_letter, proposed_rate,
	status, applied_date, updated_at`

func scanApplication(row interface{ Scan(...any) error }) (*models.JobApplication, error) {
	var a models.JobApplication
	err := row.Scan(
		&a.ID, &a.JobID, &a.ArtisanProfileID, &a.CoverLetter, &a.ProposedRate,
		&a.Status, &a.AppliedDate, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepository) Create(ctx context.Context, app *models.JobApplication) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO job_applications (id, job_id, artisan_profile_id, cover_letter, proposed_rate, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING applied_date, updated_at
	`, app.ID, app.JobID, app.ArtisanProfileID, app.CoverLetter, app.ProposedRate, app.Status,
	).Scan(&app.AppliedDate, &app.UpdatedAt)

	if isUniqueViolation(err) {
		return appErrors.ErrApplicationExists
	}
	return err
}

func (r *applicationRepository) FindByID(ctx context.Context, id string) (*models.JobApplication, error) {
	a, err := scanApplication(r.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, appErrors.ErrApplicationNotFound
	}
	return a, err
}

func (r *applicationRepository) ListByArtisan(ctx context.Context, artisanProfileID string, status *models.ApplicationStatus) ([]models.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE artisan_profile_id = $1`
	args := []any{artisanProfileID}
	if status != nil {
		args = append(args, *status)
		query += ` AND status = $2`
	}
	query += ` ORDER BY applied_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.JobApplication
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE job_id = $1 ORDER BY applied_date DESC`,
		jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.JobApplication
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) List(ctx context.Context, criteria ApplicationCriteria) ([]models.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE 1=1`
	args := []any{}

	if criteria.Status != nil {
		args = append(args, *criteria.Status)
		query += ` AND status = $` + itoa(len(args))
	}
	if criteria.JobID != "" {
		args = append(args, criteria.JobID)
		query += ` AND job_id = $` + itoa(len(args))
	}

	query += ` ORDER BY applied_date DESC`
	if criteria.Limit > 0 {
		args = append(args, criteria.Limit)
		query += ` LIMIT $` + itoa(len(args))
	}
	if criteria.Offset > 0 {
		args = append(args, criteria.Offset)
		query += ` OFFSET $` + itoa(len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.JobApplication
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) DecideIfPending(ctx context.Context, id string, status models.ApplicationStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE job_applications SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, status, id, models.ApplicationStatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *applicationRepository) WithdrawIfPending(ctx context.Context, id, artisanProfileID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE job_applications SET status = $1, updated_at = now()
		WHERE id = $2 AND artisan_profile_id = $3 AND status = $4
	`, models.ApplicationStatusWithdrawn, id, artisanProfileID, models.ApplicationStatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
