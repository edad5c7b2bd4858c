package feedqueue

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// FeedQueue rows are written when a post is created and drained by the
// feed worker into the Redis recent-posts set.
type FeedQueue struct {
	ID          uuid.UUID  `gorm:"primary_key;type:char(36)"`
	PostID      uuid.UUID  `gorm:"type:char(36);not null"`
	Status      string     `gorm:"type:varchar(20);not null"` // pending, done
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	ProcessedAt *time.Time `gorm:"index"`
}
