package services

import (
	"context"

	"github.com/gitcoords/gitcoords/internal/config"
	"github.com/gitcoords/gitcoords/internal/domain"
	"github.com/gitcoords/gitcoords/internal/logging"
)

// CoordinatesService builds repository coordinates for the CLI layer
type CoordinatesService struct {
	settings *config.Settings
}

// NewCoordinatesService creates a new CoordinatesService
func NewCoordinatesService(settings *config.Settings) *CoordinatesService {
	return &CoordinatesService{
		settings: settings,
	}
}

// Resolve builds coordinates, falling back to the default authority when none is given.
// Validation errors from the domain are returned unchanged so callers can match them with errors.Is.
func (s *CoordinatesService) Resolve(ctx context.Context, params ResolveParams) (domain.RepositoryCoordinates, error) {
	authority := params.Authority
	if authority == "" {
		authority = s.settings.Authority()
		logging.Logger.Debug("Using default authority", "authority", authority)
	}

	logging.Logger.Debug("Resolving repository coordinates",
		"authority", authority,
		"owner", params.Owner,
		"repo", params.Repo,
	)

	coords, err := domain.NewRepositoryCoordinates(authority, params.Owner, params.Repo)
	if err != nil {
		logging.Logger.Warn("Invalid repository coordinates", "error", err)
		return domain.RepositoryCoordinates{}, err
	}

	logging.Logger.Info("Repository coordinates resolved", "uri", coords.GitURI().String())
	return coords, nil
}
