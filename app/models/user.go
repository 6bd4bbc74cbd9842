package models

// User's password is stored verbatim, matching the reference deployment.
// It is never serialized into a response, see dto.UserResponse.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;size:191;not null"`
	Password string `gorm:"size:255;not null"`
}
