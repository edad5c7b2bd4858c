package like

import (
	"time"

	"github.com/gofrs/uuid"
)

// Like is a bare (user, post) relation. It has no surrogate id and no
// unique index: the same user can record the same like more than once,
// and unlike removes every matching row.
type Like struct {
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
