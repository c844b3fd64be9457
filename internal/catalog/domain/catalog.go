package domain

import (
	"context"
	"time"
)

// ChangeEntity names what a change touched
type ChangeEntity string

const (
	EntityProduct  ChangeEntity = "product"
	EntityCategory ChangeEntity = "category"
)

// ChangeAction names the mutation kind
type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// Change describes one committed mutation
type Change struct {
	Entity ChangeEntity `json:"entity"`
	Action ChangeAction `json:"action"`
	ID     string       `json:"id"`
	Origin string       `json:"origin"`
	At     time.Time    `json:"at"`
}

// ChangeNotifier propagates committed changes to other replicas
type ChangeNotifier interface {
	NotifyChange(ctx context.Context, change Change) error
}

// Snapshot is one consistent read of the catalog
type Snapshot struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
	Loaded     bool       `json:"loaded"`

	// Version changes on every install and never repeats across processes
	Version string `json:"version,omitempty"`
	Err     error  `json:"-"`
}

// Catalog is the data-access facade: reactive reads plus mutations.
// Every successful mutation is reflected in the next Snapshot and pushed to subscribers.
type Catalog interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	// Subscribe delivers the latest snapshot after every change. The channel holds at most
	// one pending value and is closed when ctx is done.
	Subscribe(ctx context.Context) <-chan Snapshot
	Refresh(ctx context.Context) error

	AddProduct(ctx context.Context, p NewProduct) (*Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error

	AddCategory(ctx context.Context, c NewCategory) (*Category, error)
	UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
