package models

import (
	"time"
)

// Registration is one gym-member enrollment. Email is stored lowercased and
// the unique index on it enforces one registration per member.
//
// gorm.Model is deliberately not embedded: its DeletedAt would turn deletes
// into soft deletes and keep a deleted email occupying the unique index.
type Registration struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `json:"name"`
	Email      string    `json:"email" gorm:"uniqueIndex"`
	Phone      string    `json:"phone"`
	Age        int       `json:"age"`
	Health     string    `json:"health"`
	Membership string    `json:"membership"`
	Trainer    string    `json:"trainer"`
}
