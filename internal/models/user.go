package models

type User struct {
	BaseModel
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string     `gorm:"not null" json:"-"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Phone           string     `json:"phone"`
	Role            UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status          UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	EmailVerified   bool       `gorm:"default:false" json:"email_verified"`
	ProfileVerified bool       `gorm:"default:false" json:"profile_verified"`

	// Relations
	ArtisanProfile  *ArtisanProfile  `gorm:"foreignKey:UserID" json:"artisan_profile,omitempty"`
	EmployerProfile *EmployerProfile `gorm:"foreignKey:UserID" json:"employer_profile,omitempty"`
}
