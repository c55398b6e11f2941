package models

type UserRole string
type UserStatus string
type ProfileVerificationStatus string
type VerificationStatus string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleArtisan  UserRole = "artisan"
	UserRoleEmployer UserRole = "employer"
	UserRoleAdmin    UserRole = "admin"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusInactive  UserStatus = "inactive"

	ProfileVerificationPending  ProfileVerificationStatus = "pending"
	ProfileVerificationVerified ProfileVerificationStatus = "verified"
	ProfileVerificationRejected ProfileVerificationStatus = "rejected"

	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"

	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusClosed     JobStatus = "closed"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// IsRegisterable проверяет допустимость роли при регистрации (admin создается только сидом)
func (r UserRole) IsRegisterable() bool {
	return r == UserRoleArtisan || r == UserRoleEmployer
}

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusSuspended, UserStatusInactive:
		return true
	}
	return false
}

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusClosed:
		return true
	}
	return false
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}
