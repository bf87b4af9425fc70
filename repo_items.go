package tokenauth

import (
	"context"

	"github.com/uptrace/bun"
)

// Items persists records created through the protected API.
type Items interface {
	Create(ctx context.Context, item *Item) (*Item, error)
	List(ctx context.Context) ([]*Item, error)
}

type items struct {
	db *bun.DB
}

var _ Items = (*items)(nil)

func NewItemsRepository(db *bun.DB) Items {
	return &items{db: db}
}

func (r *items) Create(ctx context.Context, item *Item) (*Item, error) {
	if _, err := r.db.NewInsert().Model(item).Exec(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *items) List(ctx context.Context) ([]*Item, error) {
	records := []*Item{}
	if err := r.db.NewSelect().Model(&records).Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return records, nil
}
