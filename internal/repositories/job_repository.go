package repositories

import (
	"context"
	"database/sql"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/models"

	"github.com/google/uuid"
)

type JobCriteria struct {
	Status   *models.JobStatus
	State    string
	Category string
	Search   string
	Limit    int
	Offset   int
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context, criteria JobCriteria) ([]models.Job, error)
	ListByEmployer(ctx context.Context, employerProfileID string) ([]models.Job, error)
	// UpdateStatus переводит вакансию из from в to; обновление условное,
	// false означает что строка не в ожидаемом статусе или не принадлежит работодателю.
	UpdateStatus(ctx context.Context, jobID, employerProfileID string, from, to models.JobStatus) (bool, error)
}

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, employer_profile_id, title, description, category, location, state,
	budget_min, budget_max, required_skills, experience_level, status,
	posted_date, deadline, created_at, updated_at`

func scanJob(row interface{ Scan(...any) error }) (*models.Job, error) {
	var j models.Job
	var skills []byte
	err := row.Scan(
		&j.ID, &j.EmployerProfileID, &j.Title, &j.Description, &j.Category,
		&j.Location, &j.State, &j.BudgetMin, &j.BudgetMax, &skills,
		&j.ExperienceLevel, &j.Status, &j.PostedDate, &j.Deadline,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.RequiredSkills = skills
	return &j, nil
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	skills := []byte(job.RequiredSkills)
	if len(skills) == 0 {
		skills = []byte(`[]`)
	}

	return r.db.QueryRowContext(ctx, `
		INSERT INTO jobs (
			id, employer_profile_id, title, description, category, location, state,
			budget_min, budget_max, required_skills, experience_level, status, deadline
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING posted_date, created_at, updated_at
	`,
		job.ID, job.EmployerProfileID, job.Title, job.Description, job.Category,
		job.Location, job.State, job.BudgetMin, job.BudgetMax, skills,
		job.ExperienceLevel, job.Status, job.Deadline,
	).Scan(&job.PostedDate, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	j, err := scanJob(r.db.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, appErrors.ErrJobNotFound
	}
	return j, err
}

func (r *jobRepository) List(ctx context.Context, criteria JobCriteria) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	args := []any{}

	if criteria.Status != nil {
		args = append(args, *criteria.Status)
		query += ` AND status = $` + itoa(len(args))
	}
	if criteria.State != "" {
		args = append(args, criteria.State)
		query += ` AND state = $` + itoa(len(args))
	}
	if criteria.Category != "" {
		args = append(args, criteria.Category)
		query += ` AND category = $` + itoa(len(args))
	}
	if criteria.Search != "" {
		args = append(args, "%"+criteria.Search+"%")
		n := itoa(len(args))
		query += ` AND (title ILIKE $` + n + ` OR description ILIKE $` + n + `)`
	}

	query += ` ORDER BY posted_date DESC`
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

	var jobs []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) ListByEmployer(ctx context.Context, employerProfileID string) ([]models.Job, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE employer_profile_id = $1 ORDER BY posted_date DESC`,
		employerProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) UpdateStatus(ctx context.Context, jobID, employerProfileID string, from, to models.JobStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE jobs SET status = $1, updated_at = now()
		WHERE id = $2 AND employer_profile_id = $3 AND status = $4
	`, to, jobID, employerProfileID, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
