package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/husnabot/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByTelegramID returns a user by Telegram ID, or nil when unknown
func (r *UserRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	query := DB.Rebind(`
		SELECT telegram_id, username, first_name, last_name, is_admin,
		       notification_enabled, notification_hour, session_minutes,
		       created_at, updated_at
		FROM users WHERE telegram_id = ?
	`)
	err := DB.Get(&user, query, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}

// GetOrCreate returns the stored user, registering them on first contact
func (r *UserRepository) GetOrCreate(user *models.User) (*models.User, error) {
	existing, err := r.GetByTelegramID(user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	query := DB.Rebind(`
		INSERT INTO users (telegram_id, username, first_name, last_name, is_admin)
		VALUES (?, ?, ?, ?, ?)
	`)
	_, err = DB.Exec(query, user.ID, user.Username, user.FirstName, user.LastName, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}
	return r.GetByTelegramID(user.ID)
}

// UpdateSettings stores the user's notification and session preferences
func (r *UserRepository) UpdateSettings(user *models.User) error {
	query := DB.Rebind(`
		UPDATE users SET
			notification_enabled = ?,
			notification_hour = ?,
			session_minutes = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE telegram_id = ?
	`)
	result, err := DB.Exec(query,
		user.NotificationEnabled,
		user.NotificationHour,
		user.SessionMinutes,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user settings: %v", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %d not found", user.ID)
	}
	return nil
}

// GetUsersForNotification returns users who want a reminder at the given hour
func (r *UserRepository) GetUsersForNotification(hour int) ([]models.User, error) {
	var users []models.User
	query := DB.Rebind(`
		SELECT telegram_id, username, first_name, last_name, is_admin,
		       notification_enabled, notification_hour, session_minutes,
		       created_at, updated_at
		FROM users
		WHERE notification_enabled = true AND notification_hour = ?
	`)
	if err := DB.Select(&users, query, hour); err != nil {
		return nil, fmt.Errorf("failed to get users for notification: %v", err)
	}
	return users, nil
}
