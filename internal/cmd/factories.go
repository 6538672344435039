package cmd

import (
	adapterstorage "doer/internal/adapters/storage"
	"doer/internal/config"
	"doer/internal/ports"
	"doer/internal/services"
	"doer/version"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ContextService   *services.ContextService
	DayService       *services.DayService
	MigrationService *services.MigrationService

	// Internal - for cleanup only
	dayRepo ports.DayRepository
}

// NewContainer creates a new Container with all dependencies wired for the
// given context
func NewContainer(settings *config.Settings, contextName string) (*Container, error) {
	root := config.GetDataPath(settings)
	repoFactory := newRepositoryFactory(root)

	dayRepo, err := repoFactory(contextName)
	if err != nil {
		return nil, err
	}

	dayService := services.NewDayService(dayRepo)
	contextService := services.NewContextService(root, contextName, repoFactory, config.FileStore{})
	migrationService := services.NewMigrationService(repoFactory)

	return &Container{
		ContextService:   contextService,
		DayService:       dayService,
		MigrationService: migrationService,
		dayRepo:          dayRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.dayRepo != nil {
		return c.dayRepo.Close()
	}
	return nil
}

// newRepositoryFactory opens JSON repositories under root stamped with the
// current schema version
func newRepositoryFactory(root string) ports.DayRepositoryFactory {
	return func(contextName string) (ports.DayRepository, error) {
		repo, err := adapterstorage.NewJSONRepository(root, contextName, version.SchemaVersion)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}
