package domain

import "context"

// DefaultCategoryName names the sentinel category hidden from pickers and name lines
const DefaultCategoryName = "Default"

// DefaultIconKey is the icon stored on the sentinel category
const DefaultIconKey = "default"

// Category groups products and carries an icon key
type Category struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"not null"`
	Icon string `json:"icon"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// IsDefault reports whether c is the sentinel category
func (c Category) IsDefault() bool {
	return c.Name == DefaultCategoryName
}

// NewCategory carries the fields accepted by AddCategory
type NewCategory struct {
	Name string
	Icon string
}

// CategoryPatch carries a partial update; nil fields are left unchanged
type CategoryPatch struct {
	Name *string
	Icon *string
}

// Empty reports whether the patch changes nothing
func (p CategoryPatch) Empty() bool {
	return p.Name == nil && p.Icon == nil
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id string) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
}
