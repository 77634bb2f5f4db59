package catalog

import (
	"context"
	"fmt"

	"listing-service/internal/models"
	"listing-service/internal/repository"
)

// CatalogService serves the public, read-only views of listings
type CatalogService struct {
	repo repository.ProductStore
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.ProductStore) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts returns every product with its seller and bid history. An
// empty catalog yields an empty, non-nil slice.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.ProductView, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}

	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toView(p))
	}
	return views, nil
}

// GetProduct returns one product with its seller and bid history
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (models.ProductView, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.ProductView{}, fmt.Errorf("service: failed to get product %d: %w", id, err)
	}
	return toView(product), nil
}

// toView keeps only id and username of the seller and of each bidder
func toView(p models.Product) models.ProductView {
	bids := make([]models.BidView, 0, len(p.Bids))
	for _, b := range p.Bids {
		bids = append(bids, models.BidView{
			ID:     b.ID,
			Price:  b.Price,
			Date:   b.Date,
			Bidder: summarize(b.Bidder),
		})
	}

	return models.ProductView{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PictureURL:    p.PictureURL,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		EndDate:       p.EndDate,
		Seller:        summarize(p.Seller),
		Bids:          bids,
	}
}

func summarize(u models.User) models.UserSummary {
	return models.UserSummary{ID: u.ID, Username: u.Username}
}
