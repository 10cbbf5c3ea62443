package repository

import "time"

// Entity is what a record must expose for the generic stores to manage it.
// Models satisfy it by embedding models.Base.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
	StampCreated(t time.Time)
	StampUpdated(t time.Time)
}

type Predicate[T any] func(T) bool

type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// Repository is the storage contract shared by the relational and the
// flat-file backing. Lookups that find nothing return the zero value, not
// an error; "not found" becomes an error only at the service boundary.
type Repository[T Entity] interface {
	FindAll() ([]T, error)
	FindByID(id string) (T, error)
	Find(pred Predicate[T]) ([]T, error)
	FindOne(pred Predicate[T]) (T, error)
	Create(entity T) (T, error)
	// Update loads the record, applies mutate to it and persists the
	// result with a fresh updatedAt. Returns the zero value if id is
	// unknown.
	Update(id string, mutate func(T)) (T, error)
	Delete(id string) (bool, error)
	Count(pred Predicate[T]) (int, error)
	Paginate(page, limit int, pred Predicate[T]) (Page[T], error)
}

func paginateSlice[T any](items []T, page, limit int) ([]T, int) {
	total := len(items)
	start := (page - 1) * limit
	if start >= total {
		return []T{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], total
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
