package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, validator validators.Validator, logger *logger.Logger) ItemService {
	logger.Debug().Msg("creating item service")
	return &itemService{
		itemRepository: itemRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateItem stores a new item with no defective units. The name is trimmed
// and must not match an existing item ignoring case.
func (s *itemService) CreateItem(ctx context.Context, name string, category models.Category, quantity int) (models.Item, error) {
	log := logger.FromContext(ctx)

	candidate := models.Item{Name: strings.TrimSpace(name), Category: category, Quantity: quantity}
	if err := s.validator.Validate(ctx, candidate, validators.FieldName, validators.FieldCategory, validators.FieldQuantity); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	item, err := models.NewItem(0, candidate.Name, candidate.Category, candidate.Quantity, 0)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	existing, err := s.itemRepository.GetItemByName(ctx, item.Name)
	if err != nil {
		return models.Item{}, err
	}
	if existing != nil {
		return models.Item{}, ErrItemAlreadyExists
	}

	id, err := s.itemRepository.AddItem(ctx, item)
	if err != nil {
		log.Err(err).Str("func", "itemService.CreateItem").Str("name", item.Name).Msg("failed to add item")
		return models.Item{}, err
	}
	item.ID = id

	log.Info().
		Str("func", "itemService.CreateItem").
		Int64("item_id", id).
		Str("name", item.Name).
		Str("category", item.Category.String()).
		Int("quantity", item.Quantity).
		Msg("item created")

	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	return s.itemRepository.GetItem(ctx, id)
}

func (s *itemService) FindItemByName(ctx context.Context, name string) (*models.Item, error) {
	return s.itemRepository.GetItemByName(ctx, strings.TrimSpace(name))
}

func (s *itemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return s.itemRepository.GetAllItems(ctx)
}

func (s *itemService) IncreaseQuantity(ctx context.Context, item models.Item, amount int) (models.Item, error) {
	return s.apply(ctx, "increase_quantity", item, amount, (*models.Item).IncreaseQuantity)
}

func (s *itemService) DecreaseQuantity(ctx context.Context, item models.Item, amount int) (models.Item, error) {
	return s.apply(ctx, "decrease_quantity", item, amount, (*models.Item).DecreaseQuantity)
}

func (s *itemService) MarkDefective(ctx context.Context, item models.Item, amount int) (models.Item, error) {
	return s.apply(ctx, "mark_defective", item, amount, (*models.Item).MarkDefective)
}

func (s *itemService) RepairDefective(ctx context.Context, item models.Item, amount int) (models.Item, error) {
	return s.apply(ctx, "repair_defective", item, amount, (*models.Item).RepairDefective)
}

// apply runs mutate on item (already a copy) and persists the result. An
// item without a store id or a rejected mutation is returned without touching
// the store.
func (s *itemService) apply(ctx context.Context, op string, item models.Item, amount int, mutate func(*models.Item, int) error) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, item, validators.FieldItemID); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := mutate(&item, amount); err != nil {
		log.Debug().Err(err).Str("func", "itemService."+op).Int64("item_id", item.ID).Int("amount", amount).Msg("rejected")
		return models.Item{}, err
	}

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "itemService."+op).Int64("item_id", item.ID).Msg("failed to persist item")
		return models.Item{}, err
	}

	log.Info().
		Str("func", "itemService."+op).
		Int64("item_id", item.ID).
		Int("amount", amount).
		Int("quantity", item.Quantity).
		Int("defective_quantity", item.DefectiveQuantity).
		Msg("item updated")

	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.Item{ID: id}, validators.FieldItemID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		log.Err(err).Str("func", "itemService.DeleteItem").Int64("item_id", id).Msg("failed to delete item")
		return err
	}

	log.Info().Str("func", "itemService.DeleteItem").Int64("item_id", id).Msg("item deleted")
	return nil
}
