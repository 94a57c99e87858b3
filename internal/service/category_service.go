package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zerobudget/backend/internal/apperror"
	"github.com/zerobudget/backend/internal/model"
)

// CategoryRepoInterface defines the contract for category data access.
type CategoryRepoInterface interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id string) error
	NextSortOrder(ctx context.Context) (int, error)
}

// CategoryService handles business logic for spending categories.
type CategoryService struct {
	repo CategoryRepoInterface
}

// NewCategoryService creates a new CategoryService with the given repository.
func NewCategoryService(repo CategoryRepoInterface) *CategoryService {
	return &CategoryService{repo: repo}
}

type CreateCategoryInput struct {
	Name        string          `json:"name"`
	BudgetLimit decimal.Decimal `json:"budgetLimit"`
	Color       string          `json:"color"`
}

type UpdateCategoryInput struct {
	Name        *string          `json:"name,omitempty"`
	BudgetLimit *decimal.Decimal `json:"budgetLimit,omitempty"`
	Color       *string          `json:"color,omitempty"`
	Order       *int             `json:"order,omitempty"`
}

// Create adds a category at the end of the list. When no color is given,
// one is picked from the palette by rotating over the current count.
func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.ValidationError("name", "must not be empty")
	}
	if input.BudgetLimit.IsNegative() {
		return nil, apperror.ValidationError("budgetLimit", "must not be negative")
	}

	sortOrder, err := s.repo.NextSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing sort order: %w", err)
	}

	color := input.Color
	if color == "" {
		color = model.CategoryPalette[sortOrder%len(model.CategoryPalette)]
	} else if !model.IsPaletteColor(color) {
		return nil, apperror.ValidationError("color", "must be a palette color")
	}

	category := &model.Category{
		Name:        name,
		BudgetLimit: input.BudgetLimit,
		Color:       color,
		SortOrder:   sortOrder,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return category, nil
}

// Get retrieves a category by its ID.
func (s *CategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting category %s: %w", id, err)
	}
	return category, nil
}

// List retrieves all categories in display order.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// Update applies the provided fields, leaving absent ones untouched.
func (s *CategoryService) Update(ctx context.Context, id string, input UpdateCategoryInput) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching category %s for update: %w", id, err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.ValidationError("name", "must not be empty")
		}
		category.Name = name
	}
	if input.BudgetLimit != nil {
		if input.BudgetLimit.IsNegative() {
			return nil, apperror.ValidationError("budgetLimit", "must not be negative")
		}
		category.BudgetLimit = *input.BudgetLimit
	}
	if input.Color != nil {
		if !model.IsPaletteColor(*input.Color) {
			return nil, apperror.ValidationError("color", "must be a palette color")
		}
		category.Color = *input.Color
	}
	if input.Order != nil {
		category.SortOrder = *input.Order
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("updating category %s: %w", id, err)
	}

	return category, nil
}

// Delete removes a category and all of its expenses across every month.
// Deleting an absent id is not an error.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting category %s: %w", id, err)
	}
	return nil
}
