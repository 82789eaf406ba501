package database

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Indrani-08/recosave-backend/models"
)

var (
	// ErrNotFound is returned when a referenced record does not exist
	// or credentials do not match any user.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUser is returned when the username is already taken.
	ErrDuplicateUser = errors.New("username already exists")
)

// CreateUser saves a new user record. The username uniqueness is checked
// up front; the unique index backstops concurrent registrations.
func CreateUser(user *models.User) error {
	var existing models.User
	if err := DB.Where("username = ?", user.Username).First(&existing).Error; err == nil {
		return ErrDuplicateUser
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// AuthenticateUser resolves a username+password pair to the user record.
// An unknown username and a wrong password both come back as ErrNotFound
// so the two cases are indistinguishable to the caller.
func AuthenticateUser(username, password string) (*models.User, error) {
	var user models.User
	if err := DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByID fetches the full profile for a user id.
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile overwrites the four mutable profile fields.
func UpdateUserProfile(id uint, salary, age *int, gender, goal *string) error {
	return DB.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"salary":          salary,
		"age":             age,
		"gender":          gender,
		"investment_goal": goal,
	}).Error
}

// UpdateUserPassword stores a new password hash for an existing user.
func UpdateUserPassword(id uint, passwordHash string) error {
	if _, err := GetUserByID(id); err != nil {
		return err
	}
	return DB.Model(&models.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}
