package service

import (
	"github.com/listingdesk/backoffice/internal/config"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/query"
	"github.com/listingdesk/backoffice/internal/repository"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger    *logger.Logger
	Config    *config.Configuration
	Stores    repository.Stores
	Directory query.Directory
	Clock     query.Clock
	Reporter  query.ErrorReporter
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	stores repository.Stores,
	directory query.Directory,
	clock query.Clock,
	reporter query.ErrorReporter,
) ServiceParams {
	return ServiceParams{
		Logger:    logger,
		Config:    config,
		Stores:    stores,
		Directory: directory,
		Clock:     clock,
		Reporter:  reporter,
	}
}
