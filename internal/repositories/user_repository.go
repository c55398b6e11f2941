package repositories

import (
	"context"
	"database/sql"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/models"

	"github.com/google/uuid"
)

type UserCriteria struct {
	Role   *models.UserRole
	Status *models.UserStatus
	Search string
	Limit  int
	Offset int
}

type UserRepository interface {
	// CreateWithProfile создает пользователя, его профиль и первичную
	// pending-запись верификации в одной транзакции.
	CreateWithProfile(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, criteria UserCriteria) ([]models.User, error)
	// UpdateAccount меняет контактные поля аккаунта; email и роль неизменяемы.
	UpdateAccount(ctx context.Context, id, firstName, lastName, phone string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateStatus(ctx context.Context, id string, status models.UserStatus) error
	SetProfileVerified(ctx context.Context, id string, verified bool) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, phone, role, status,
	email_verified, profile_verified, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone,
		&u.Role, &u.Status, &u.EmailVerified, &u.ProfileVerified,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) CreateWithProfile(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO users (id, email, password_hash, first_name, last_name, phone, role, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at, updated_at
		`, user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
			user.Phone, user.Role, user.Status,
		).Scan(&user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return err
		}

		// Текстовые поля профиля заполняются позже через settings,
		// поэтому при регистрации пишем пустые строки, а не NULL.
		switch user.Role {
		case models.UserRoleArtisan:
			_, err = tx.ExecContext(ctx, `
				INSERT INTO artisan_profiles (id, user_id, bio, skills, state, city, verification_status)
				VALUES ($1, $2, '', '[]'::jsonb, '', '', $3)
			`, uuid.NewString(), user.ID, models.ProfileVerificationPending)
		case models.UserRoleEmployer:
			_, err = tx.ExecContext(ctx, `
				INSERT INTO employer_profiles (id, user_id, company_name, industry, description, state, city, verification_status)
				VALUES ($1, $2, '', '', '', '', '', $3)
			`, uuid.NewString(), user.ID, models.ProfileVerificationPending)
		}
		if err != nil {
			return err
		}

		// Первичный цикл верификации открывается сразу при регистрации
		if user.Role != models.UserRoleAdmin {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO verification_logs (id, user_id, verification_type, status, comments)
				VALUES ($1, $2, $3, $4, '')
			`, uuid.NewString(), user.ID, models.VerificationTypeProfile, models.VerificationStatusPending)
		}
		return err
	})

	if isUniqueViolation(err) {
		return appErrors.ErrEmailAlreadyExists
	}
	return err
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, appErrors.ErrUserNotFound
	}
	return u, err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err == sql.ErrNoRows {
		return nil, appErrors.ErrUserNotFound
	}
	return u, err
}

func (r *userRepository) List(ctx context.Context, criteria UserCriteria) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	args := []any{}

	if criteria.Role != nil {
		args = append(args, *criteria.Role)
		query += ` AND role = $` + itoa(len(args))
	}
	if criteria.Status != nil {
		args = append(args, *criteria.Status)
		query += ` AND status = $` + itoa(len(args))
	}
	if criteria.Search != "" {
		args = append(args, "%"+criteria.Search+"%")
		n := itoa(len(args))
		query += ` AND (first_name ILIKE $` + n + ` OR last_name ILIKE $` + n + ` OR email ILIKE $` + n + `)`
	}

	query += ` ORDER BY created_at DESC`
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

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepository) UpdateAccount(ctx context.Context, id, firstName, lastName, phone string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET first_name = $1, last_name = $2, phone = $3, updated_at = now()
		WHERE id = $4
	`, firstName, lastName, phone, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateStatus(ctx context.Context, id string, status models.UserStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) SetProfileVerified(ctx context.Context, id string, verified bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET profile_verified = $1, updated_at = now() WHERE id = $2`, verified, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}
