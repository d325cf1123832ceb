package service

import (
	"fmt"

	"github.com/Tristano1/friend-library-system/internal/config"
	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/store"
	"github.com/Tristano1/friend-library-system/internal/validators"
)

type Services struct {
	IdentityService IdentityService
	CatalogService  CatalogService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewLibraryValidator()

	identityService, err := NewIdentityService(storages.UserRepository, validator, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating identity service: %w", err)
	}

	return &Services{
		IdentityService: identityService,
		CatalogService:  NewCatalogService(storages.ItemRepository, validator, logger),
	}, nil
}
