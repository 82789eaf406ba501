package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Indrani-08/recosave-backend/models"
)

// ErrDuplicateEnrollment is returned when the user is already enrolled
// in the named scheme.
var ErrDuplicateEnrollment = errors.New("scheme already enrolled")

// CreateEnrollment saves a scheme enrollment for a user. Duplicates are
// checked up front; the composite unique index on (user_id, scheme_name)
// backstops concurrent enrollments of the same pair.
func CreateEnrollment(enrollment *models.Enrollment) error {
	var existing models.Enrollment
	err := DB.Where("user_id = ? AND scheme_name = ?", enrollment.UserID, enrollment.SchemeName).
		First(&existing).Error
	if err == nil {
		return ErrDuplicateEnrollment
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := DB.Create(enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEnrollment
		}
		return err
	}
	return nil
}

// ListEnrollments returns all enrollments for a user, newest first.
func ListEnrollments(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&enrollments).Error
	return enrollments, err
}
