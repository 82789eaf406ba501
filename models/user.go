package models

import (
	"gorm.io/gorm"
)

// User represents a registered account and the profile data used to
// drive scheme recommendations.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// Profile fields are optional at registration and filled in later
	// through /salary_input. Pointers so an unset field stays NULL
	// instead of collapsing to a zero value.
	Salary         *int    `json:"salary"`
	Age            *int    `json:"age"`
	Gender         *string `gorm:"size:20" json:"gender"`
	InvestmentGoal *string `json:"investment_goal"`
}

// HasCompleteProfile reports whether the fields required for an AI
// consultation (salary, age, investment goal) are all present.
func (u *User) HasCompleteProfile() bool {
	return u.Salary != nil && u.Age != nil && u.InvestmentGoal != nil
}
