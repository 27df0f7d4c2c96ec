package service

import (
	"context"
	"errors"
	"fmt"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
	"pos-backend/internal/validation"

	"gorm.io/gorm"
)

// PriceOverrideRequest sets or replaces one product override on a list.
type PriceOverrideRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Price     string `json:"price" binding:"required"`
}

type PriceListService interface {
	CreatePriceList(ctx context.Context, in validation.PriceListInput) (*model.PriceList, error)
	UpdatePriceList(ctx context.Context, id uint, in validation.PriceListInput) (*model.PriceList, error)
	DeletePriceList(ctx context.Context, id uint) error
	GetPriceList(ctx context.Context, id uint) (*model.PriceList, error)
	ListPriceLists(ctx context.Context, storeCode string) ([]model.PriceList, error)
	SetOverride(ctx context.Context, listID uint, req PriceOverrideRequest) (*model.PriceListItem, error)
	RemoveOverride(ctx context.Context, listID, productID uint) error
}

type priceListService struct {
	priceListRepo repository.PriceListRepository
	productRepo   repository.ProductRepository
	txManager     repository.TransactionManager
}

func NewPriceListService(
	priceListRepo repository.PriceListRepository,
	productRepo repository.ProductRepository,
	txManager repository.TransactionManager,
) PriceListService {
	return &priceListService{priceListRepo: priceListRepo, productRepo: productRepo, txManager: txManager}
}

func (s *priceListService) CreatePriceList(ctx context.Context, in validation.PriceListInput) (*model.PriceList, error) {
	list, verrs := validation.ValidatePriceList(in)
	if verrs != nil {
		return nil, verrs
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if list.IsDefault {
			if err := s.demoteCurrentDefault(txCtx, list.StoreCode, 0); err != nil {
				return err
			}
		}
		return s.priceListRepo.Create(txCtx, &list)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create price list: %w", err)
	}
	return &list, nil
}

func (s *priceListService) UpdatePriceList(ctx context.Context, id uint, in validation.PriceListInput) (*model.PriceList, error) {
	existing, err := s.priceListRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("price list not found: %w", err)
	}

	normalized, verrs := validation.ValidatePriceList(in)
	if verrs != nil {
		return nil, verrs
	}

	existing.Name = normalized.Name
	existing.ValidFrom = normalized.ValidFrom
	existing.ValidTo = normalized.ValidTo

	txErr := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if normalized.IsDefault && !existing.IsDefault {
			if err := s.demoteCurrentDefault(txCtx, existing.StoreCode, existing.ID); err != nil {
				return err
			}
		}
		existing.IsDefault = normalized.IsDefault
		return s.priceListRepo.Update(txCtx, existing)
	})
	if txErr != nil {
		return nil, fmt.Errorf("failed to update price list: %w", txErr)
	}
	return existing, nil
}

func (s *priceListService) DeletePriceList(ctx context.Context, id uint) error {
	list, err := s.priceListRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("price list not found: %w", err)
	}
	if list.IsDefault {
		return fmt.Errorf("cannot delete the default price list")
	}
	return s.priceListRepo.Delete(ctx, id)
}

func (s *priceListService) GetPriceList(ctx context.Context, id uint) (*model.PriceList, error) {
	return s.priceListRepo.FindByID(ctx, id)
}

func (s *priceListService) ListPriceLists(ctx context.Context, storeCode string) ([]model.PriceList, error) {
	return s.priceListRepo.List(ctx, storeCode)
}

func (s *priceListService) SetOverride(ctx context.Context, listID uint, req PriceOverrideRequest) (*model.PriceListItem, error) {
	normalized, verrs := validation.ValidatePriceListItem(validation.PriceListItemInput{
		ProductID: req.ProductID,
		Price:     req.Price,
	})
	if verrs != nil {
		return nil, verrs
	}

	if _, err := s.priceListRepo.FindByID(ctx, listID); err != nil {
		return nil, fmt.Errorf("price list not found: %w", err)
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	existing, err := s.priceListRepo.FindItem(ctx, listID, req.ProductID)
	switch {
	case err == nil:
		existing.Price = normalized.Price
		if saveErr := s.priceListRepo.SaveItem(ctx, existing); saveErr != nil {
			return nil, fmt.Errorf("failed to update override: %w", saveErr)
		}
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		normalized.PriceListID = listID
		if saveErr := s.priceListRepo.SaveItem(ctx, &normalized); saveErr != nil {
			return nil, fmt.Errorf("failed to create override: %w", saveErr)
		}
		return &normalized, nil
	default:
		return nil, fmt.Errorf("failed to look up override: %w", err)
	}
}

func (s *priceListService) RemoveOverride(ctx context.Context, listID, productID uint) error {
	item, err := s.priceListRepo.FindItem(ctx, listID, productID)
	if err != nil {
		return fmt.Errorf("override not found: %w", err)
	}
	return s.priceListRepo.DeleteItem(ctx, item.ID)
}

// demoteCurrentDefault clears the default flag on the store's current
// default list so only one default exists per store.
func (s *priceListService) demoteCurrentDefault(ctx context.Context, storeCode string, keepID uint) error {
	current, err := s.priceListRepo.FindDefaultForStore(ctx, storeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up default price list: %w", err)
	}
	if current.ID == keepID {
		return nil
	}
	current.IsDefault = false
	return s.priceListRepo.Update(ctx, current)
}
