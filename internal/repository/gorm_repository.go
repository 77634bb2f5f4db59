package repository

import (
	"context"
	"errors"
	"fmt"

	"listing-service/internal/listingerrors"
	model "listing-service/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepo is a relational implementation of Store
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo creates a repository over an open gorm connection
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

func (r *GormRepo) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Seller").
		Preload("Bids", func(db *gorm.DB) *gorm.DB {
			return db.Order("bids.id ASC")
		}).
		Preload("Bids.Bidder")
}

// FindByID returns a product with its seller and bids
func (r *GormRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var product model.Product
	err := r.withAssociations(ctx).Where("products.id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Product{}, fmt.Errorf("find product %d: %w", id, listingerrors.ErrProductNotFound)
		}
		return model.Product{}, fmt.Errorf("find product %d: %w", id, err)
	}
	return product, nil
}

// FindAll returns every product ordered by id
func (r *GormRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.withAssociations(ctx).Order("products.id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// Insert stores a new product. The seller must exist.
func (r *GormRepo) Insert(ctx context.Context, product model.Product) (model.Product, error) {
	product.ID = 0
	product.Bids = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seller model.User
		if err := tx.First(&seller, product.SellerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("insert product for seller %d: %w", product.SellerID, listingerrors.ErrUserNotFound)
			}
			return fmt.Errorf("insert product for seller %d: %w", product.SellerID, err)
		}

		if err := tx.Omit(clause.Associations).Create(&product).Error; err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		product.Seller = seller
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}

	product.Bids = []model.Bid{}
	return product, nil
}

// ReplaceFields overwrites the six mutable fields of a product. A write that
// matches no row reports ErrProductNotFound.
func (r *GormRepo) ReplaceFields(ctx context.Context, id int64, input model.ProductInput) (model.Product, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":           input.Name,
			"description":    input.Description,
			"picture_url":    input.PictureURL,
			"category":       input.Category,
			"original_price": input.OriginalPrice,
			"end_date":       input.EndDate,
		})
	if res.Error != nil {
		return model.Product{}, fmt.Errorf("replace product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Product{}, fmt.Errorf("replace product %d: %w", id, listingerrors.ErrProductNotFound)
	}

	return r.FindByID(ctx, id)
}

// Remove deletes a product. Its bids are left in place.
func (r *GormRepo) Remove(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("remove product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("remove product %d: %w", id, listingerrors.ErrProductNotFound)
	}
	return nil
}

// FindUserByID returns a user by id
func (r *GormRepo) FindUserByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("find user %d: %w", id, listingerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

// AddUser stores a user, keeping an explicit id when one is set
func (r *GormRepo) AddUser(ctx context.Context, user model.User) (model.User, error) {
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return model.User{}, fmt.Errorf("add user %q: %w", user.Username, err)
	}
	return user, nil
}

// AddBid records a bid placed by the bidding subsystem
func (r *GormRepo) AddBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	bid.ID = 0
	bid.Bidder = model.User{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Product{}).Where("id = ?", bid.ProductID).Count(&count).Error; err != nil {
			return fmt.Errorf("add bid: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("add bid for product %d: %w", bid.ProductID, listingerrors.ErrProductNotFound)
		}

		if err := tx.Model(&model.User{}).Where("id = ?", bid.BidderID).Count(&count).Error; err != nil {
			return fmt.Errorf("add bid: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("add bid for bidder %d: %w", bid.BidderID, listingerrors.ErrUserNotFound)
		}

		return tx.Omit(clause.Associations).Create(&bid).Error
	})
	if err != nil {
		return model.Bid{}, err
	}
	return bid, nil
}
