package models

import (
	"gorm.io/gorm"
)

// Enrollment records that a user has selected a scheme. Schemes are
// keyed by their catalog display name, not a numeric id. A user cannot
// enroll in the same named scheme twice.
type Enrollment struct {
	gorm.Model
	UserID     uint   `gorm:"not null;uniqueIndex:idx_user_scheme" json:"user_id"`
	SchemeName string `gorm:"not null;uniqueIndex:idx_user_scheme" json:"scheme_name"`
}
