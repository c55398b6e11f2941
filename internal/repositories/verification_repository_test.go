package repositories

import (
	"context"
	"testing"
	"time"

	"craftlink_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var verificationColumnNames = []string{
	"id", "user_id", "admin_id", "verification_type", "status", "comments",
	"created_at", "updated_at",
}

func TestVerificationRepository_FindByID(t *testing.T) {
	now := time.Now()

	t.Run("undecided registration cycle scans cleanly", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		// admin_id до решения отсутствует
		mock.ExpectQuery("SELECT (.+) FROM verification_logs WHERE id").
			WithArgs("log-1").
			WillReturnRows(sqlmock.NewRows(verificationColumnNames).
				AddRow("log-1", "user-1", nil, models.VerificationTypeProfile, "pending", "", now, now))

		repo := NewVerificationRepository(db)
		log, err := repo.FindByID(context.Background(), "log-1")

		require.NoError(t, err)
		assert.Nil(t, log.AdminID)
		assert.Empty(t, log.Comments)
		assert.Equal(t, models.VerificationStatusPending, log.Status)
	})
}

func TestVerificationRepository_List(t *testing.T) {
	now := time.Now()

	t.Run("result set mixing decided and undecided cycles scans cleanly", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		adminID := "admin-1"
		mock.ExpectQuery("SELECT (.+) FROM verification_logs WHERE 1=1").
			WillReturnRows(sqlmock.NewRows(verificationColumnNames).
				AddRow("log-2", "user-2", adminID, models.VerificationTypeProfile, "approved", "documents ok", now, now).
				AddRow("log-1", "user-1", nil, models.VerificationTypeProfile, "pending", "", now, now))

		repo := NewVerificationRepository(db)
		logs, err := repo.List(context.Background(), VerificationCriteria{})

		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, &adminID, logs[0].AdminID)
		assert.Nil(t, logs[1].AdminID)
	})
}
