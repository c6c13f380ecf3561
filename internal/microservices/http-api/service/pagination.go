package service

import (
	"context"

	"gamerental/internal/microservices/http-api/dto"
)

type pagedStore[T any] interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]T, error)
}

// listPage counts the table, clamps page into range and loads that page.
func listPage[T any](ctx context.Context, store pagedStore[T], page, pageSize int) ([]T, dto.Page, error) {
	total, err := store.Count(ctx)
	if err != nil {
		return nil, dto.Page{}, err
	}
	p := dto.Paginate(page, total, pageSize)
	if total == 0 {
		return []T{}, p, nil
	}
	items, err := store.List(ctx, p.Offset(), p.Size)
	if err != nil {
		return nil, dto.Page{}, err
	}
	return items, p, nil
}
