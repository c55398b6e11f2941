package repositories

import (
	"context"
	"database/sql"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/models"
)

type ProfileRepository interface {
	FindArtisanByUserID(ctx context.Context, userID string) (*models.ArtisanProfile, error)
	FindArtisanByID(ctx context.Context, id string) (*models.ArtisanProfile, error)
	FindEmployerByUserID(ctx context.Context, userID string) (*models.EmployerProfile, error)
	FindEmployerByID(ctx context.Context, id string) (*models.EmployerProfile, error)
	UpdateArtisan(ctx context.Context, p *models.ArtisanProfile) error
	UpdateEmployer(ctx context.Context, p *models.EmployerProfile) error
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

const artisanColumns = `id, user_id, bio, skills, hourly_rate, years_experience,
	state, city, verification_status, created_at, updated_at`

func scanArtisan(row interface{ Scan(...any) error }) (*models.ArtisanProfile, error) {
	var p models.ArtisanProfile
	var skills []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.Bio, &skills, &p.HourlyRate, &p.YearsExperience,
		&p.State, &p.City, &p.VerificationStatus, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}

func (r *profileRepository) FindArtisanByUserID(ctx context.Context, userID string) (*models.ArtisanProfile, error) {
	p, err := scanArtisan(r.db.QueryRowContext(ctx,
		`SELECT `+artisanColumns+` FROM artisan_profiles WHERE user_id = $1`, userID))
	if err == sql.ErrNoRows {
		return nil, appErrors.ErrProfileNotFound
	}
	return p, err
}

func (r *profileRepository) FindArtisanByID(ctx context.Context, id string) (*models.ArtisanProfile, error) {
	p, err := scanArtisan(r.db.QueryRowContext(ctx,
		`SELECT `+artisanColumns+` FROM artisan_profiles WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, appErrors.ErrProfileNotFound
	}
	return p, err
}

const employerColumns = `id, user_id, company_name, industry, description,
	state, city, verification_status, created_at, updated_at`

func scanEmployer(row interface{ Scan(...any) error }) (*models.EmployerProfile, error) {
	var p models.EmployerProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Industry, &p.Description,
		&p.State, &p.City, &p.VerificationStatus, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) FindEmployerByUserID(ctx context.Context, userID string) (*models.EmployerProfile, error) {
	p, err := scanEmployer(r.db.QueryRowContext(ctx,
		`SELECT `+employerColumns+` FROM employer_profiles WHERE user_id = $1`, userID))
	if err == sql.ErrNoRows {
		return nil, appErrors.ErrProfileNotFound
	}
	return p, err
}

func (r *profileRepository) FindEmployerByID(ctx context.Context, id string) (*models.EmployerProfile, error) {
	p, err := scanEmployer(r.db.QueryRowContext(ctx,
		`SELECT `+employerColumns+` FROM employer_profiles WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, appErrors.ErrProfileNotFound
	}
	return p, err
}

func (r *profileRepository) UpdateArtisan(ctx context.Context, p *models.ArtisanProfile) error {
	// verification_status меняется только workflow-ом верификации
	res, err := r.db.ExecContext(ctx, `
		UPDATE artisan_profiles
		SET bio = $1, skills = $2, hourly_rate = $3, years_experience = $4,
		    state = $5, city = $6, updated_at = now()
		WHERE id = $7
	`, p.Bio, []byte(p.Skills), p.HourlyRate, p.YearsExperience, p.State, p.City, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) UpdateEmployer(ctx context.Context, p *models.EmployerProfile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employer_profiles
		SET company_name = $1, industry = $2, description = $3,
		    state = $4, city = $5, updated_at = now()
		WHERE id = $6
	`, p.CompanyName, p.Industry, p.Description, p.State, p.City, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrProfileNotFound
	}
	return nil
}
