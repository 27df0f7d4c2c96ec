package service

import (
	"context"
	"fmt"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
	"pos-backend/internal/validation"
)

type TableService interface {
	CreateTable(ctx context.Context, in validation.TableInput) (*model.DiningTable, error)
	UpdateTable(ctx context.Context, id uint, in validation.TableInput) (*model.DiningTable, error)
	DeleteTable(ctx context.Context, id uint) error
	GetTable(ctx context.Context, id uint) (*model.DiningTable, error)
	ListTables(ctx context.Context, storeCode, status string) ([]model.DiningTable, error)
	SetStatus(ctx context.Context, id uint, status string) (*model.DiningTable, error)
}

type tableService struct {
	tableRepo repository.TableRepository
	orderRepo repository.OrderRepository
}

func NewTableService(tableRepo repository.TableRepository, orderRepo repository.OrderRepository) TableService {
	return &tableService{tableRepo: tableRepo, orderRepo: orderRepo}
}

func (s *tableService) CreateTable(ctx context.Context, in validation.TableInput) (*model.DiningTable, error) {
	table, verrs := validation.ValidateTable(in)
	if verrs != nil {
		return nil, verrs
	}
	if err := s.tableRepo.Create(ctx, &table); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return &table, nil
}

func (s *tableService) UpdateTable(ctx context.Context, id uint, in validation.TableInput) (*model.DiningTable, error) {
	existing, err := s.tableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("table not found: %w", err)
	}

	normalized, verrs := validation.ValidateTable(in)
	if verrs != nil {
		return nil, verrs
	}
	normalized.ID = existing.ID
	normalized.CreatedAt = existing.CreatedAt
	// Occupancy changes only via SetStatus and the order lifecycle.
	normalized.Status = existing.Status

	if err := s.tableRepo.Update(ctx, &normalized); err != nil {
		return nil, fmt.Errorf("failed to update table: %w", err)
	}
	return &normalized, nil
}

// DeleteTable refuses while an open order still points at the table.
func (s *tableService) DeleteTable(ctx context.Context, id uint) error {
	table, err := s.tableRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("table not found: %w", err)
	}
	if table.Status == model.TableStatusOccupied {
		return fmt.Errorf("table %s is occupied", table.Number)
	}
	return s.tableRepo.Delete(ctx, id)
}

func (s *tableService) GetTable(ctx context.Context, id uint) (*model.DiningTable, error) {
	return s.tableRepo.FindByID(ctx, id)
}

func (s *tableService) ListTables(ctx context.Context, storeCode, status string) ([]model.DiningTable, error) {
	return s.tableRepo.List(ctx, storeCode, status)
}

func (s *tableService) SetStatus(ctx context.Context, id uint, status string) (*model.DiningTable, error) {
	valid := false
	for _, st := range model.AllowedTableStatuses {
		if status == st {
			valid = true
			break
		}
	}
	if !valid {
		return nil, validation.Errors{{
			Field:   "status",
			Code:    validation.CodeInvalidEnum,
			Message: fmt.Sprintf("invalid table status %q", status),
		}}
	}

	if err := s.tableRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update table status: %w", err)
	}
	return s.tableRepo.FindByID(ctx, id)
}
