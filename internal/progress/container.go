package progress

import "github.com/brunohenrs/northstar/internal/storage"

type Container struct {
	Handler *Handler
	Repo    Repository
}

func NewContainer(store *storage.Provider) *Container {
	repo := NewRepository(store)
	handler := NewHandler(repo)

	return &Container{
		Handler: handler,
		Repo:    repo,
	}
}
