package cmd

import (
	adapterclock "github.com/gitcoords/gitcoords/internal/adapters/clock"
	"github.com/gitcoords/gitcoords/internal/config"
	"github.com/gitcoords/gitcoords/internal/logging"
	"github.com/gitcoords/gitcoords/internal/ports"
	"github.com/gitcoords/gitcoords/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	CoordinatesService *services.CoordinatesService
	StampService       *services.StampService
}

// NewContainer creates a new Container with all dependencies wired.
// A nil clock means the system clock.
func NewContainer(settings *config.Settings, clock ports.Clock) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if clock == nil {
		clock = adapterclock.NewSystemClock()
	}

	logging.Logger.Debug("Container initialized", "default_authority", settings.Authority())

	return &Container{
		CoordinatesService: services.NewCoordinatesService(settings),
		StampService:       services.NewStampService(clock, settings),
	}, nil
}
