package authorization

import (
	"fmt"

	"listing-service/internal/listingerrors"
	"listing-service/internal/models"
)

// IsAuthorized reports whether caller may mutate product: admins may mutate
// any product, everybody else only the products they sell.
func IsAuthorized(caller models.AuthContext, product models.Product) bool {
	return caller.IsAdmin || caller.ID == product.SellerID
}

// Authorize returns ErrUnauthenticated for an anonymous caller and
// ErrForbidden when IsAuthorized fails.
func Authorize(caller *models.AuthContext, product models.Product) error {
	if caller == nil {
		return listingerrors.ErrUnauthenticated
	}
	if !IsAuthorized(*caller, product) {
		return fmt.Errorf("user %d on product %d: %w", caller.ID, product.ID, listingerrors.ErrForbidden)
	}
	return nil
}
