package service

import (
	"context"
	"fmt"
	"strings"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
)

// CategoryRequest creates or updates a product grouping.
type CategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
	StoreCode string `json:"store_code"`
}

type CategoryService interface {
	CreateCategory(ctx context.Context, req CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uint, req CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
	GetCategory(ctx context.Context, id uint) (*model.Category, error)
	ListCategories(ctx context.Context, storeCode string) ([]model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req CategoryRequest) (*model.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := model.Category{
		Name:      name,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
		StoreCode: strings.TrimSpace(req.StoreCode),
	}
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, req CategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category not found: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	category.Name = name
	category.SortOrder = req.SortOrder
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory refuses to remove a grouping that still has active
// products; reassign them first.
func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.categoryRepo.FindByIDWithProducts(ctx, id)
	if err != nil {
		return fmt.Errorf("category not found: %w", err)
	}
	if len(category.Products) > 0 {
		return fmt.Errorf("category %s still has %d active products", category.Name, len(category.Products))
	}
	return s.categoryRepo.Delete(ctx, id)
}

func (s *categoryService) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	return s.categoryRepo.FindByIDWithProducts(ctx, id)
}

func (s *categoryService) ListCategories(ctx context.Context, storeCode string) ([]model.Category, error) {
	return s.categoryRepo.List(ctx, storeCode)
}
