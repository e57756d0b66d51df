package repository

import (
	"github.com/davitran/clipshare/infra"
	"gorm.io/gorm"
)

type Repository struct {
	VideoRepo *VideoRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		VideoRepo: NewVideoRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}

func (r *Repository) WithTransaction(tx *gorm.DB) *Repository {
	return &Repository{
		VideoRepo: NewVideoRepository(tx),
	}
}
