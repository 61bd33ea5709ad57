package goal

import "github.com/brunohenrs/northstar/internal/storage"

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(store *storage.Provider) *Container {
	repo := NewRepository(store)
	service := NewService(repo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
