package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an authentication identity with a role
type User struct {
	ID           int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username     string     `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	PasswordHash string     `gorm:"size:255;not null;column:password_hash" json:"-"`
	FirstName    string     `gorm:"size:100;column:first_name" json:"first_name"`
	LastName     string     `gorm:"size:100;column:last_name" json:"last_name"`
	Email        string     `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Role         string     `gorm:"size:20;not null;default:staff;check:role IN ('admin', 'dentist', 'hygienist', 'receptionist', 'staff');column:role" json:"role"`
	IsActive     bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// SeedUser is a first-run default identity. Seeding only happens when the
// users table is empty; the fixed credentials are a documented development
// bootstrap, not a security feature.
type SeedUser struct {
	Username string
	Password string
	Role     string
}

// DefaultSeedUsers mirrors the pair of identities the clinic ships with so
// the first login is possible on a fresh store.
var DefaultSeedUsers = []SeedUser{
	{Username: "dentist", Password: "dentist123", Role: "dentist"},
	{Username: "receptionist", Password: "recep123", Role: "receptionist"},
}

// SeedUsers inserts the default identities when the users table is empty.
// hash turns a plaintext password into its stored form.
func SeedUsers(db *gorm.DB, hash func(string) (string, error)) error {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, seed := range DefaultSeedUsers {
			hashed, err := hash(seed.Password)
			if err != nil {
				return err
			}
			user := User{
				Username:     seed.Username,
				PasswordHash: hashed,
				Email:        seed.Username + "@clinic.local",
				Role:         seed.Role,
				IsActive:     true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
