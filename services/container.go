package services

import (
	"skizen/repositories"
	"skizen/storage"
)

type Container struct {
	Auth     AuthService
	Gallery  GalleryService
	Curation CurationService
}

func NewContainer(repos repositories.Container, store storage.Store, thumbnailer Thumbnailer, tempDir string) *Container {
	return &Container{
		Auth:     NewAuthService(repos.Users),
		Gallery:  NewGalleryService(repos.Works),
		Curation: NewCurationService(repos.Works, store, thumbnailer, tempDir),
	}
}
