package models

import "time"

// User represents a registered account. Users are owned by the identity
// subsystem and only referenced here.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"type:text;not null;uniqueIndex"`
	IsAdmin  bool   `json:"isAdmin" gorm:"column:is_admin;not null;default:false"`
}

func (User) TableName() string { return "users" }

// Product represents an auction listing
type Product struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"type:text;not null"`
	Description   string    `json:"description" gorm:"type:text;not null"`
	PictureURL    string    `json:"pictureUrl" gorm:"column:picture_url;type:text;not null"`
	OriginalPrice float64   `json:"originalPrice" gorm:"column:original_price;not null"`
	Category      string    `json:"category" gorm:"type:text;not null"`
	EndDate       time.Time `json:"endDate" gorm:"column:end_date;not null"`
	SellerID      int64     `json:"sellerId" gorm:"column:seller_id;not null;index"`

	// associations, loaded by the store for read views only
	Seller User  `json:"-" gorm:"foreignKey:SellerID"`
	Bids   []Bid `json:"-" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string { return "products" }

// Bid represents a user's bid on a product. Bids are written by the bidding
// subsystem; this service only reads them.
type Bid struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Price     float64   `json:"price" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	ProductID int64     `json:"productId" gorm:"column:product_id;not null;index"`
	BidderID  int64     `json:"bidderId" gorm:"column:bidder_id;not null;index"`

	Bidder User `json:"-" gorm:"foreignKey:BidderID"`
}

func (Bid) TableName() string { return "bids" }

// ProductInput is the full replacement payload for create and update
type ProductInput struct {
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	PictureURL    string    `json:"pictureUrl" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	OriginalPrice float64   `json:"originalPrice" validate:"required,gt=0"`
	EndDate       time.Time `json:"endDate" validate:"required"`
}

// AuthContext is the resolved identity of the caller. A nil *AuthContext
// means the request is anonymous.
type AuthContext struct {
	ID      int64
	IsAdmin bool
}

// UserSummary is the public projection of a user
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// BidView is a bid decorated with its bidder
type BidView struct {
	ID     int64       `json:"id"`
	Price  float64     `json:"price"`
	Date   time.Time   `json:"date"`
	Bidder UserSummary `json:"bidder"`
}

// ProductView is a product decorated with its seller and bid history
type ProductView struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	PictureURL    string      `json:"pictureUrl"`
	OriginalPrice float64     `json:"originalPrice"`
	Category      string      `json:"category"`
	EndDate       time.Time   `json:"endDate"`
	Seller        UserSummary `json:"seller"`
	Bids          []BidView   `json:"bids"`
}
