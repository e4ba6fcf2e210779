// Package storetest provides an in-memory document store for tests. It
// mirrors the real adapter's contract: generated string identifiers exposed
// as "id", equality filters, limited finds.
package storetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type Fake struct {
	mu          sync.Mutex
	next        int
	collections map[string][]map[string]any

	InsertErr error
	FindErr   error
}

func NewFake() *Fake {
	return &Fake{collections: map[string][]map[string]any{}}
}

func (f *Fake) Insert(ctx context.Context, collection string, doc map[string]any) (string, error) {
	if f.InsertErr != nil {
		return "", f.InsertErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	id := fmt.Sprintf("oid%04d", f.next)
	stored := make(map[string]any, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	stored["id"] = id
	f.collections[collection] = append(f.collections[collection], stored)
	return id, nil
}

func (f *Fake) Find(ctx context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []map[string]any
	for _, doc := range f.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		out = append(out, doc)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (f *Fake) FindOne(ctx context.Context, collection string, filter map[string]any) (map[string]any, bool, error) {
	docs, err := f.Find(ctx, collection, filter, 1)
	if err != nil {
		return nil, false, err
	}
	if len(docs) == 0 {
		return nil, false, nil
	}
	return docs[0], true, nil
}

func (f *Fake) CollectionNames(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.collections))
	for name := range f.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Count returns the number of stored documents in a collection.
func (f *Fake) Count(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.collections[collection])
}

// All returns every stored document in a collection.
func (f *Fake) All(collection string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]map[string]any, len(f.collections[collection]))
	copy(out, f.collections[collection])
	return out
}

func matches(doc, filter map[string]any) bool {
	for key, want := range filter {
		if doc[key] != want {
			return false
		}
	}
	return true
}
