package helpers

import (
	"time"

	"listing-service/internal/models"
)

// Request/Response DTOs
type ProductRequest struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PictureURL    string    `json:"pictureUrl"`
	Category      string    `json:"category"`
	OriginalPrice float64   `json:"originalPrice"`
	EndDate       time.Time `json:"endDate"`
}

// ToInput converts the request body to the service payload
func (r ProductRequest) ToInput() models.ProductInput {
	return models.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		PictureURL:    r.PictureURL,
		Category:      r.Category,
		OriginalPrice: r.OriginalPrice,
		EndDate:       r.EndDate,
	}
}

type ProductResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PictureURL    string    `json:"pictureUrl"`
	Category      string    `json:"category"`
	OriginalPrice float64   `json:"originalPrice"`
	EndDate       time.Time `json:"endDate"`
	SellerID      int64     `json:"sellerId"`
}

// NewProductResponse renders a stored product the same way reads render it
func NewProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PictureURL:    p.PictureURL,
		Category:      p.Category,
		OriginalPrice: p.OriginalPrice,
		EndDate:       p.EndDate,
		SellerID:      p.SellerID,
	}
}
