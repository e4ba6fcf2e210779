package entity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentops/internal/domain/entity"
	"talentops/internal/platform/store/storetest"
)

func TestCreateAndListRoundTrip(t *testing.T) {
	fake := storetest.NewFake()
	svc := entity.NewService(fake)
	ctx := context.Background()

	id, err := svc.Create(ctx, "user", map[string]any{
		"name":  "Jane Doe",
		"email": "jane@x.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	items, err := svc.List(ctx, "user", 50)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0]["id"])
	assert.Equal(t, "Jane Doe", items[0]["name"])
	assert.Equal(t, "employee", items[0]["role"])
}

func TestCreateUnknownKind(t *testing.T) {
	svc := entity.NewService(storetest.NewFake())

	_, err := svc.Create(context.Background(), "widget", map[string]any{"anything": true})
	assert.ErrorIs(t, err, entity.ErrUnknownEntity)

	_, err = svc.List(context.Background(), "widget", 50)
	assert.ErrorIs(t, err, entity.ErrUnknownEntity)
}

func TestCreateValidationFailureDoesNotPersist(t *testing.T) {
	fake := storetest.NewFake()
	svc := entity.NewService(fake)

	_, err := svc.Create(context.Background(), "timesheet", map[string]any{
		"user_id": "u1",
		"date":    "2025-03-10",
		"hours":   25.0,
	})
	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, fake.Count("timesheet"))
}

func TestStoreUnavailable(t *testing.T) {
	svc := entity.NewService(nil)

	_, err := svc.Create(context.Background(), "job", map[string]any{"title": "Engineer"})
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)

	_, err = svc.List(context.Background(), "job", 50)
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
}

func TestListHonorsLimit(t *testing.T) {
	fake := storetest.NewFake()
	svc := entity.NewService(fake)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, "job", map[string]any{"title": "Engineer"})
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, "job", 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListEmptyCollectionReturnsEmptySlice(t *testing.T) {
	svc := entity.NewService(storetest.NewFake())

	items, err := svc.List(context.Background(), "payroll", 50)
	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}
