package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JSONStore keeps one entity collection as a JSON array in a single file.
// Every mutation rewrites the whole file. The mutex only serialises writers
// within this process; two processes sharing a data dir still race and the
// last writer wins. That matches the deployed behaviour of this system and
// is a documented limitation, not something to paper over here.
type JSONStore[T Entity] struct {
	path string
	mu   sync.Mutex
}

func NewJSONStore[T Entity](path string) *JSONStore[T] {
	return &JSONStore[T]{path: path}
}

func (s *JSONStore[T]) readData() ([]T, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if werr := s.writeData([]T{}); werr != nil {
				return nil, werr
			}
			return []T{}, nil
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *JSONStore[T]) writeData(items []T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *JSONStore[T]) FindAll() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readData()
}

func (s *JSONStore[T]) FindByID(id string) (T, error) {
	var zero T
	items, err := s.FindAll()
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if item.EntityID() == id {
			return item, nil
		}
	}
	return zero, nil
}

func (s *JSONStore[T]) Find(pred Predicate[T]) ([]T, error) {
	items, err := s.FindAll()
	if err != nil {
		return nil, err
	}
	out := []T{}
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *JSONStore[T]) FindOne(pred Predicate[T]) (T, error) {
	var zero T
	matches, err := s.Find(pred)
	if err != nil {
		return zero, err
	}
	if len(matches) == 0 {
		return zero, nil
	}
	return matches[0], nil
}

func (s *JSONStore[T]) Create(entity T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.readData()
	if err != nil {
		return zero, err
	}

	if entity.EntityID() == "" {
		entity.SetEntityID(uuid.NewString())
	}
	entity.StampCreated(time.Now().UTC())

	items = append(items, entity)
	if err := s.writeData(items); err != nil {
		return zero, err
	}
	return entity, nil
}

func (s *JSONStore[T]) Update(id string, mutate func(T)) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.readData()
	if err != nil {
		return zero, err
	}
	for i, item := range items {
		if item.EntityID() != id {
			continue
		}
		mutate(item)
		item.StampUpdated(time.Now().UTC())
		items[i] = item
		if err := s.writeData(items); err != nil {
			return zero, err
		}
		return item, nil
	}
	return zero, nil
}

func (s *JSONStore[T]) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.readData()
	if err != nil {
		return false, err
	}
	for i, item := range items {
		if item.EntityID() == id {
			items = append(items[:i], items[i+1:]...)
			if err := s.writeData(items); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *JSONStore[T]) Count(pred Predicate[T]) (int, error) {
	items, err := s.FindAll()
	if err != nil {
		return 0, err
	}
	if pred == nil {
		return len(items), nil
	}
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n, nil
}

func (s *JSONStore[T]) Paginate(page, limit int, pred Predicate[T]) (Page[T], error) {
	items, err := s.FindAll()
	if err != nil {
		return Page[T]{}, err
	}
	if pred != nil {
		filtered := items[:0:0]
		for _, item := range items {
			if pred(item) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	data, total := paginateSlice(items, page, limit)
	return Page[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}
