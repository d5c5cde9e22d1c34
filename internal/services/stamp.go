package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gitcoords/gitcoords/internal/config"
	"github.com/gitcoords/gitcoords/internal/domain"
	"github.com/gitcoords/gitcoords/internal/logging"
	"github.com/gitcoords/gitcoords/internal/ports"
)

// StampService captures identity stamps at the current time
type StampService struct {
	clock    ports.Clock
	settings *config.Settings
}

// NewStampService creates a new StampService
func NewStampService(clock ports.Clock, settings *config.Settings) *StampService {
	if settings == nil {
		settings = &config.Settings{}
	}
	return &StampService{
		clock:    clock,
		settings: settings,
	}
}

// Stamp returns a stamp for now. Name and email are not validated, only defaulted.
func (s *StampService) Stamp(ctx context.Context, params StampParams) (domain.IDStamp, error) {
	name := params.Name
	if name == "" {
		name = s.settings.UserName
	}
	email := params.Email
	if email == "" {
		email = s.settings.UserEmail
	}
	zone := params.TimeZone
	if zone == "" {
		zone = s.settings.TimeZone
	}

	now := s.clock.Now()
	if zone != "" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			logging.Logger.Error("Unknown time zone", "zone", zone, "error", err)
			return domain.IDStamp{}, fmt.Errorf("failed to load time zone %q: %w", zone, err)
		}
		now = now.In(loc)
	}

	stamp := domain.NewIDStamp(name, email, now)
	logging.Logger.Debug("Identity stamp created", "ident", stamp.Ident(), "zone", now.Location().String())
	return stamp, nil
}
