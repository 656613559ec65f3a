package di

import (
	"github.com/mergington/activity-registry/internal/domain"
	"github.com/mergington/activity-registry/internal/handler"
	"github.com/mergington/activity-registry/internal/repository"
	"github.com/mergington/activity-registry/internal/service"
)

// Container holds all dependencies for the activity registry service
type Container struct {
	// Repositories
	ActivityRepo repository.ActivityRepository

	// Services
	ActivityService service.ActivityService

	// Handlers
	HealthHandler   *handler.HealthHandler
	ActivityHandler *handler.ActivityHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	// Catalog seeds the registry; nil means the default school catalog
	Catalog map[string]*domain.Activity
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	var catalog map[string]*domain.Activity
	if cfg != nil {
		catalog = cfg.Catalog
	}

	c := &Container{
		ActivityRepo: repository.NewMemoryActivityRepository(catalog),
	}

	// Initialize services
	c.ActivityService = service.NewActivityService(c.ActivityRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler()
	c.ActivityHandler = handler.NewActivityHandler(c.ActivityService)

	return c
}
