package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"listing-service/internal/listingerrors"
	model "listing-service/internal/models"
)

// ProductStore is the persistence port for listings. Products returned by
// FindByID and FindAll carry their Seller and their Bids (each with Bidder),
// bids in insertion order.
type ProductStore interface {
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Insert(ctx context.Context, product model.Product) (model.Product, error)
	ReplaceFields(ctx context.Context, id int64, input model.ProductInput) (model.Product, error)
	Remove(ctx context.Context, id int64) error
}

// UserStore resolves user records for caller identity
type UserStore interface {
	FindUserByID(ctx context.Context, id int64) (model.User, error)
}

// Seeder writes the records this service does not own. Intended for demo
// data and tests.
type Seeder interface {
	AddUser(ctx context.Context, user model.User) (model.User, error)
	AddBid(ctx context.Context, bid model.Bid) (model.Bid, error)
}

// Store is everything a storage backend provides
type Store interface {
	ProductStore
	UserStore
	Seeder
}

// MemoryRepo is a concurrency-safe in-memory implementation of Store
type MemoryRepo struct {
	mu       sync.RWMutex
	products map[int64]model.Product // key: productID -> value: product without associations
	bids     map[int64][]model.Bid   // key: productID -> value: bids in insertion order
	users    map[int64]model.User    // key: userID -> value: user

	lastProductID int64
	lastBidID     int64
	lastUserID    int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products: make(map[int64]model.Product),
		bids:     make(map[int64][]model.Bid),
		users:    make(map[int64]model.User),
	}
}

// FindByID returns a product with its seller and bids
func (r *MemoryRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("find product %d: %w", id, listingerrors.ErrProductNotFound)
	}
	return r.decorate(product), nil
}

// FindAll returns every product ordered by id
func (r *MemoryRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, r.decorate(product))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// Insert stores a new product under a fresh id. The seller must exist.
func (r *MemoryRepo) Insert(ctx context.Context, product model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[product.SellerID]; !ok {
		return model.Product{}, fmt.Errorf("insert product for seller %d: %w", product.SellerID, listingerrors.ErrUserNotFound)
	}

	r.lastProductID++
	product.ID = r.lastProductID
	product.Seller = model.User{}
	product.Bids = nil
	r.products[product.ID] = product

	return r.decorate(product), nil
}

// ReplaceFields overwrites the six mutable fields of a product
func (r *MemoryRepo) ReplaceFields(ctx context.Context, id int64, input model.ProductInput) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("replace product %d: %w", id, listingerrors.ErrProductNotFound)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.PictureURL = input.PictureURL
	product.Category = input.Category
	product.OriginalPrice = input.OriginalPrice
	product.EndDate = input.EndDate
	r.products[id] = product

	return r.decorate(product), nil
}

// Remove deletes a product. Its bids are left in place.
func (r *MemoryRepo) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("remove product %d: %w", id, listingerrors.ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}

// FindUserByID returns a user by id
func (r *MemoryRepo) FindUserByID(ctx context.Context, id int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("find user %d: %w", id, listingerrors.ErrUserNotFound)
	}
	return user, nil
}

// AddUser stores a user, assigning an id when none is set
func (r *MemoryRepo) AddUser(ctx context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		r.lastUserID++
		user.ID = r.lastUserID
	} else if user.ID > r.lastUserID {
		r.lastUserID = user.ID
	}
	r.users[user.ID] = user
	return user, nil
}

// AddBid records a bid placed by the bidding subsystem
func (r *MemoryRepo) AddBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[bid.ProductID]; !ok {
		return model.Bid{}, fmt.Errorf("add bid for product %d: %w", bid.ProductID, listingerrors.ErrProductNotFound)
	}
	if _, ok := r.users[bid.BidderID]; !ok {
		return model.Bid{}, fmt.Errorf("add bid for bidder %d: %w", bid.BidderID, listingerrors.ErrUserNotFound)
	}

	r.lastBidID++
	bid.ID = r.lastBidID
	bid.Bidder = model.User{}
	r.bids[bid.ProductID] = append(r.bids[bid.ProductID], bid)
	return bid, nil
}

// decorate attaches seller and bids; callers hold r.mu
func (r *MemoryRepo) decorate(product model.Product) model.Product {
	product.Seller = r.users[product.SellerID]

	stored := r.bids[product.ID]
	product.Bids = make([]model.Bid, 0, len(stored))
	for _, bid := range stored {
		bid.Bidder = r.users[bid.BidderID]
		product.Bids = append(product.Bids, bid)
	}
	return product
}
