package auth

import "craftlink_backend/internal/models"

// Actor - текущий пользователь, явно передается в каждый вызов workflow.
// Никакого глобального состояния сессии.
type Actor struct {
	ID   string
	Role models.UserRole
}

// CanReview - проверку верификации может выполнять только админ
func CanReview(actor Actor) bool {
	return actor.Role == models.UserRoleAdmin
}

// CanDecideApplication - решение по отклику принимает владелец
// профиля работодателя, которому принадлежит вакансия
func CanDecideApplication(actor Actor, job *models.Job, employer *models.EmployerProfile) bool {
	if job == nil || employer == nil {
		return false
	}
	return actor.Role == models.UserRoleEmployer &&
		employer.UserID == actor.ID &&
		job.EmployerProfileID == employer.ID
}

// OwnsApplication - отклик принадлежит профилю мастера этого пользователя
func OwnsApplication(actor Actor, app *models.JobApplication, artisan *models.ArtisanProfile) bool {
	if app == nil || artisan == nil {
		return false
	}
	return actor.Role == models.UserRoleArtisan &&
		artisan.UserID == actor.ID &&
		app.ArtisanProfileID == artisan.ID
}

// CanWithdraw - отозвать отклик может его владелец, пока отклик pending
func CanWithdraw(actor Actor, app *models.JobApplication, artisan *models.ArtisanProfile) bool {
	return OwnsApplication(actor, app, artisan) &&
		app.Status == models.ApplicationStatusPending
}

// IsAdmin проверяет является ли пользователь администратором
func IsAdmin(actor Actor) bool {
	return actor.Role == models.UserRoleAdmin
}
