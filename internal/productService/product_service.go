package product

import (
	"context"
	"errors"
	"fmt"

	"listing-service/internal/authorization"
	"listing-service/internal/listingerrors"
	"listing-service/internal/models"
	"listing-service/internal/repository"
	"listing-service/internal/validation"
)

// ProductService defines the business logic for creating, replacing and
// removing listings
type ProductService struct {
	repo      repository.ProductStore
	validator *validation.ProductValidator
}

// NewProductService creates a new ProductService instance
func NewProductService(repo repository.ProductStore) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: validation.NewProductValidator(),
	}
}

// CreateProduct validates the payload and stores a new product sold by the caller
func (s *ProductService) CreateProduct(ctx context.Context, caller *models.AuthContext, in models.ProductInput) (models.Product, error) {
	if caller == nil {
		return models.Product{}, fmt.Errorf("service: create product: %w", listingerrors.ErrUnauthenticated)
	}

	if err := s.validator.Validate(in); err != nil {
		return models.Product{}, fmt.Errorf("service: create product for user %d: %w", caller.ID, err)
	}

	product := models.Product{
		Name:          in.Name,
		Description:   in.Description,
		PictureURL:    in.PictureURL,
		OriginalPrice: in.OriginalPrice,
		Category:      in.Category,
		EndDate:       in.EndDate,
		SellerID:      caller.ID,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		// the caller's account vanished after it was resolved
		if errors.Is(err, listingerrors.ErrUserNotFound) {
			return models.Product{}, fmt.Errorf("service: create product for user %d: %w", caller.ID, listingerrors.ErrUnauthenticated)
		}
		return models.Product{}, fmt.Errorf("service: failed to create product for user %d: %w", caller.ID, err)
	}

	return created, nil
}

// UpdateProduct replaces all six mutable fields of a product owned by the
// caller, or of any product when the caller is an admin
func (s *ProductService) UpdateProduct(ctx context.Context, caller *models.AuthContext, id int64, in models.ProductInput) (models.Product, error) {
	if _, err := s.loadAuthorized(ctx, caller, id); err != nil {
		return models.Product{}, fmt.Errorf("service: update product %d: %w", id, err)
	}

	if err := s.validator.Validate(in); err != nil {
		return models.Product{}, fmt.Errorf("service: update product %d: %w", id, err)
	}

	updated, err := s.repo.ReplaceFields(ctx, id, in)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to update product %d: %w", id, err)
	}

	return updated, nil
}

// DeleteProduct removes a product owned by the caller, or any product when
// the caller is an admin. Bids on the product are kept.
func (s *ProductService) DeleteProduct(ctx context.Context, caller *models.AuthContext, id int64) error {
	if _, err := s.loadAuthorized(ctx, caller, id); err != nil {
		return fmt.Errorf("service: delete product %d: %w", id, err)
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete product %d: %w", id, err)
	}

	return nil
}

// loadAuthorized rejects anonymous callers, then loads the product and runs
// the ownership check
func (s *ProductService) loadAuthorized(ctx context.Context, caller *models.AuthContext, id int64) (models.Product, error) {
	if caller == nil {
		return models.Product{}, listingerrors.ErrUnauthenticated
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	if err := authorization.Authorize(caller, product); err != nil {
		return models.Product{}, err
	}

	return product, nil
}
