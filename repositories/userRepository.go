package repositories

import (
	"context"
	"time"

	"DentalDesk/database"
	"DentalDesk/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// UserRepository is the account store's data access contract.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetDentists(ctx context.Context) ([]models.User, error)
	UpdatePassword(ctx context.Context, username, hashedPassword string) error
	UpdateRole(ctx context.Context, username, role string) error
	SetActive(ctx context.Context, username string, active bool) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, username string) error
}

type userRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewUserRepository(db *gorm.DB, log zerolog.Logger) UserRepository {
	return &userRepository{db: db, log: log.With().Str("repository", "users").Logger()}
}

// Create inserts a new identity. Duplicate usernames or emails are detected
// by the store's uniqueness constraints, not a pre-check, so the operation
// is safe under races.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.log.Error().Err(err).Str("username", user.Username).Msg("failed to create user")
		return database.TranslateError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("last_name, first_name").Find(&users).Error; err != nil {
		r.log.Error().Err(err).Msg("failed to list users")
		return nil, database.TranslateError(err)
	}
	return users, nil
}

func (r *userRepository) GetDentists(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", "dentist", true).
		Order("last_name, first_name").
		Find(&users).Error
	if err != nil {
		r.log.Error().Err(err).Msg("failed to list dentists")
		return nil, database.TranslateError(err)
	}
	return users, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, username, hashedPassword string) error {
	return r.updateByUsername(ctx, username, map[string]interface{}{"password_hash": hashedPassword})
}

func (r *userRepository) UpdateRole(ctx context.Context, username, role string) error {
	return r.updateByUsername(ctx, username, map[string]interface{}{"role": role})
}

func (r *userRepository) SetActive(ctx context.Context, username string, active bool) error {
	return r.updateByUsername(ctx, username, map[string]interface{}{"is_active": active})
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("last_login", at)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}

func (r *userRepository) Delete(ctx context.Context, username string) error {
	result := r.db.WithContext(ctx).Where("username = ?", username).Delete(&models.User{})
	if result.Error != nil {
		r.log.Error().Err(result.Error).Str("username", username).Msg("failed to delete user")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}

func (r *userRepository) updateByUsername(ctx context.Context, username string, values map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Updates(values)
	if result.Error != nil {
		r.log.Error().Err(result.Error).Str("username", username).Msg("failed to update user")
		return database.TranslateError(result.Error)
	}
	return rowsAffected(result)
}
