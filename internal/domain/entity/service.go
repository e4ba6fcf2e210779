package entity

import "context"

// Store is the slice of the document store the dispatcher needs.
type Store interface {
	Insert(ctx context.Context, collection string, doc map[string]any) (string, error)
	Find(ctx context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error)
}

// Service dispatches generic create/list requests to the schema registry and
// the document store. The store is nil when the database was never
// configured; persistence operations then fail with ErrStoreUnavailable.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates payload against the schema for kind and persists the
// resulting document, returning the store-generated identifier.
func (s *Service) Create(ctx context.Context, kind string, payload map[string]any) (string, error) {
	schema, ok := SchemaFor(kind)
	if !ok {
		return "", ErrUnknownEntity
	}

	doc, err := schema.Validate(payload)
	if err != nil {
		return "", err
	}

	if s.store == nil {
		return "", ErrStoreUnavailable
	}
	return s.store.Insert(ctx, schema.Collection(), doc)
}

// List returns up to limit records of the given kind. Insertion order is not
// guaranteed; each record carries the store identifier as an "id" string.
func (s *Service) List(ctx context.Context, kind string, limit int64) ([]map[string]any, error) {
	schema, ok := SchemaFor(kind)
	if !ok {
		return nil, ErrUnknownEntity
	}

	if s.store == nil {
		return nil, ErrStoreUnavailable
	}

	docs, err := s.store.Find(ctx, schema.Collection(), nil, limit)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []map[string]any{}
	}
	return docs, nil
}
