package repositories

import (
	"context"
	"database/sql"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/models"

	"github.com/google/uuid"
)

type VerificationCriteria struct {
	Status *models.VerificationStatus
	UserID string
	Limit  int
	Offset int
}

type VerificationRepository interface {
	Create(ctx context.Context, log *models.VerificationLog) error
	FindByID(ctx context.Context, id string) (*models.VerificationLog, error)
	HasPending(ctx context.Context, userID string) (bool, error)
	List(ctx context.Context, criteria VerificationCriteria) ([]models.VerificationLog, error)
	CountByStatus(ctx context.Context) (map[models.VerificationStatus]int64, error)
	// Decide атомарно завершает pending-цикл верификации: переводит запись
	// в approved/rejected, проставляет verification_status связанного профиля
	// и (при approve) флаг profile_verified пользователя. Обновление записи
	// условное по status='pending', поэтому повторное решение (в том числе
	// гонка двух админов) получает ErrVerificationNotPending и не производит
	// побочных эффектов.
	Decide(ctx context.Context, logID, adminID string, status models.VerificationStatus, comments string) (*models.VerificationLog, error)
}

type verificationRepository struct {
	db *sql.DB
}

func NewVerificationRepository(db *sql.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

const verificationColumns = `id, user_id, admin_id, verification_type, status, comments,
	created_at, updated_at`

func scanVerification(row interface{ Scan(...any) error }) (*models.VerificationLog, error) {
	var v models.VerificationLog
	err := row.Scan(
		&v.ID, &v.UserID, &v.AdminID, &v.VerificationType, &v.Status, &v.Comments,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *verificationRepository) Create(ctx context.Context, log *models.VerificationLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	return r.db.QueryRowContext(ctx, `
		INSERT INTO verification_logs (id, user_id, verification_type, status, comments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, log.ID, log.UserID, log.VerificationType, log.Status, log.Comments,
	).Scan(&log.CreatedAt, &log.UpdatedAt)
}

func (r *verificationRepository) FindByID(ctx context.Context, id string) (*models.VerificationLog, error) {
	v, err := scanVerification(r.db.QueryRowContext(ctx,
		`SELECT `+verificationColumns+` FROM verification_logs WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, appErrors.ErrVerificationNotFound
	}
	return v, err
}

func (r *verificationRepository) HasPending(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM verification_logs WHERE user_id = $1 AND status = $2
		)
	`, userID, models.VerificationStatusPending).Scan(&exists)
	return exists, err
}

func (r *verificationRepository) List(ctx context.Context, criteria VerificationCriteria) ([]models.VerificationLog, error) {
	query := `SELECT ` + verificationColumns + ` FROM verification_logs WHERE 1=1`
	args := []any{}

	if criteria.Status != nil {
		args = append(args, *criteria.Status)
		query += ` AND status = $` + itoa(len(args))
	}
	if criteria.UserID != "" {
		args = append(args, criteria.UserID)
		query += ` AND user_id = $` + itoa(len(args))
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

	var logs []models.VerificationLog
	for rows.Next() {
		v, err := scanVerification(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *v)
	}
	return logs, rows.Err()
}

func (r *verificationRepository) CountByStatus(ctx context.Context) (map[models.VerificationStatus]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM verification_logs GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.VerificationStatus]int64)
	for rows.Next() {
		var status models.VerificationStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *verificationRepository) Decide(ctx context.Context, logID, adminID string, status models.VerificationStatus, comments string) (*models.VerificationLog, error) {
	var decided *models.VerificationLog

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE verification_logs
			SET status = $1, admin_id = $2, comments = $3, updated_at = now()
			WHERE id = $4 AND status = $5
		`, status, adminID, comments, logID, models.VerificationStatusPending)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			var current models.VerificationStatus
			err := tx.QueryRowContext(ctx,
				`SELECT status FROM verification_logs WHERE id = $1`, logID).Scan(&current)
			if err == sql.ErrNoRows {
				return appErrors.ErrVerificationNotFound
			}
			if err != nil {
				return err
			}
			return appErrors.ErrVerificationNotPending
		}

		v, err := scanVerification(tx.QueryRowContext(ctx,
			`SELECT `+verificationColumns+` FROM verification_logs WHERE id = $1`, logID))
		if err != nil {
			return err
		}

		var role models.UserRole
		if err := tx.QueryRowContext(ctx,
			`SELECT role FROM users WHERE id = $1`, v.UserID).Scan(&role); err != nil {
			if err == sql.ErrNoRows {
				return appErrors.ErrUserNotFound
			}
			return err
		}

		profileStatus := models.ProfileVerificationRejected
		if status == models.VerificationStatusApproved {
			profileStatus = models.ProfileVerificationVerified
		}

		var profileTable string
		switch role {
		case models.UserRoleArtisan:
			profileTable = "artisan_profiles"
		case models.UserRoleEmployer:
			profileTable = "employer_profiles"
		default:
			return appErrors.ErrProfileNotFound
		}

		res, err = tx.ExecContext(ctx,
			`UPDATE `+profileTable+` SET verification_status = $1, updated_at = now() WHERE user_id = $2`,
			profileStatus, v.UserID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			// Профиль отсутствует — откатываем весь переход
			return appErrors.ErrProfileNotFound
		}

		if status == models.VerificationStatusApproved {
			if _, err := tx.ExecContext(ctx,
				`UPDATE users SET profile_verified = TRUE, updated_at = now() WHERE id = $1`,
				v.UserID); err != nil {
				return err
			}
		}

		decided = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}
