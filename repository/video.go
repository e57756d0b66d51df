package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/davitran/clipshare/entity"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(video *entity.Video) error {
	return r.db.Create(video).Error
}

func (r *VideoRepository) FindByID(id uuid.UUID) (*entity.Video, error) {
	var video entity.Video
	err := r.db.Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// FindAllNewestFirst returns every video ordered by creation time descending.
// The result is never nil so an empty store serializes as an empty array.
func (r *VideoRepository) FindAllNewestFirst() ([]entity.Video, error) {
	videos := make([]entity.Video, 0)
	err := r.db.Order("created_at DESC").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}
