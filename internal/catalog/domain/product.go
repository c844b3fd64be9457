package domain

import (
	"context"
	"time"
)

// Product is a priced item on the list
type Product struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string `json:"name" gorm:"not null"`
	Price      int64  `json:"price" gorm:"not null"`
	CategoryID string `json:"categoryId" gorm:"type:varchar(36);index"`

	// CreatedAt is stamped by the catalog on create. Rows written by older clients may lack it,
	// in which case ServerCreatedAt orders them.
	CreatedAt       *time.Time `json:"createdAt,omitempty" gorm:"autoCreateTime:false"`
	ServerCreatedAt time.Time  `json:"serverCreatedAt" gorm:"autoCreateTime"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty" gorm:"autoUpdateTime:false"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// CreationTime returns the client-side creation timestamp, or the server one when absent
func (p Product) CreationTime() time.Time {
	if p.CreatedAt != nil {
		return *p.CreatedAt
	}
	return p.ServerCreatedAt
}

// NewProduct carries the fields accepted by AddProduct
type NewProduct struct {
	Name       string
	Price      int64
	CategoryID string
}

// ProductPatch carries a partial update; nil fields are left unchanged
type ProductPatch struct {
	Name       *string
	Price      *int64
	CategoryID *string
}

// Empty reports whether the patch changes nothing
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.CategoryID == nil
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
