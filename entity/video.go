package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is the persisted metadata for one uploaded media asset. The media
// bytes themselves live with the external processor and are addressed by
// PublicID only.
type Video struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string    `json:"title" gorm:"type:varchar(255);not null"`
	Description    string    `json:"description" gorm:"type:text"`
	PublicID       string    `json:"publicId" gorm:"type:varchar(255);not null;uniqueIndex"`
	OriginalSize   int64     `json:"originalSize" gorm:"not null"` // client-reported, advisory only
	CompressedSize int64     `json:"compressedSize" gorm:"not null"`
	Duration       float64   `json:"duration" gorm:"not null;default:0"` // seconds, 0 for still images
	CreatedAt      time.Time `json:"createdAt" gorm:"not null;autoCreateTime;index"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
