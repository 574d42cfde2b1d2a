package db_models

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type Account struct {
	BaseModel
	FirstName    string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:member"`
}
