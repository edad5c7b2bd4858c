package post

import (
	"time"
	"weblog/internal/core/user"

	"github.com/gofrs/uuid"
)

type Post struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title     string    `gorm:"not null"`
	Body      string    `gorm:"type:text"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;index"`
	Author    user.User `gorm:"foreignkey:AuthorID"` // joined for the author's username
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
