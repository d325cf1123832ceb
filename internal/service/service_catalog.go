package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/store"
	"github.com/Tristano1/friend-library-system/internal/validators"
	"github.com/Tristano1/friend-library-system/models"
)

// catalogService is the concrete implementation of CatalogService.
type catalogService struct {
	itemRepository store.ItemRepository
	validator      validators.Validator

	now func() time.Time

	logger *logger.Logger
}

// NewCatalogService constructs a CatalogService backed by itemRepository.
func NewCatalogService(itemRepository store.ItemRepository, validator validators.Validator, logger *logger.Logger) CatalogService {
	return &catalogService{
		itemRepository: itemRepository,
		validator:      validator,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// AddItem stores a new item owned by owner.
//
// A nil owner, or one without a store id, yields ErrUnauthenticated. A blank
// name or a non-positive override yields ErrValidation. When no override is
// given the item follows the owner's default at read time.
func (s *catalogService) AddItem(ctx context.Context, owner *models.User, newItem models.NewItem) (models.Item, error) {
	log := logger.FromContext(ctx)

	if owner == nil || owner.UserID == 0 {
		return models.Item{}, ErrUnauthenticated
	}

	if err := s.validator.Validate(ctx, newItem); err != nil {
		log.Debug().Err(err).Str("owner", owner.GUID).Msg("item rejected by validation")
		return models.Item{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	item, err := s.itemRepository.CreateItem(ctx, models.NewOwnedItem(*owner, newItem.Name, newItem.LoanLengthDays, s.now()))
	if errors.Is(err, store.ErrOwnerNotFound) {
		log.Warn().Str("owner", owner.GUID).Msg("item owner does not exist")
		return models.Item{}, ErrReferentialIntegrity
	}
	if err != nil {
		log.Err(err).Str("owner", owner.GUID).Msg("error creating item")
		return models.Item{}, fmt.Errorf("error creating item: %w", err)
	}

	log.Info().Str("owner", owner.GUID).Str("item", item.GUID).Msg("item added")
	return item, nil
}

// ListItems returns every item of owner, oldest first, each with its
// effective loan length resolved against the owner's current default.
func (s *catalogService) ListItems(ctx context.Context, owner *models.User) ([]models.Item, error) {
	if owner == nil || owner.UserID == 0 {
		return nil, ErrUnauthenticated
	}

	items, err := s.itemRepository.ListItemsByOwner(ctx, owner.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner", owner.GUID).Msg("error listing items")
		return nil, fmt.Errorf("error listing items: %w", err)
	}

	return items, nil
}
