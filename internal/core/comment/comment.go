package comment

import (
	"weblog/internal/core/user"

	"github.com/gofrs/uuid"
)

type Comment struct {
	ID     uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID uuid.UUID `gorm:"type:char(36);not null;index"`
	UserID uuid.UUID `gorm:"type:char(36);not null"`
	User   user.User `gorm:"foreignkey:UserID"` // the commenter
	Body   string    `gorm:"type:text"`
}
