package service

import (
	"context"
	"testing"

	"spa_booking/internal/model"
	"spa_booking/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateService_Validation(t *testing.T) {
	spy := newCountingStore()
	svc := NewCatalogService(spy)
	ctx := context.Background()

	cases := []struct {
		name    string
		svcName string
		price   float64
		creator string
	}{
		{"empty name", "", 200000, "Linh"},
		{"empty creator", "Massage", 200000, ""},
		{"zero price", "Massage", 0, "Linh"},
		{"negative price", "Massage", -5, "Linh"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateService(ctx, tc.svcName, tc.price, tc.creator)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Zero(t, spy.calls, "validation failures must not reach the store")
}

func TestCatalogService_CreateThenList_RoundTrip(t *testing.T) {
	st := store.NewMemory()
	svc := NewCatalogService(st)
	ctx := context.Background()

	id, err := svc.CreateService(ctx, "Massage", 200000, "Linh")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	listings, err := svc.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, model.ServiceListing{
		ID:          id,
		ServiceName: "Massage",
		Price:       200000,
		Creator:     "Linh",
	}, listings[0])
}

func TestCatalogService_UpdateService(t *testing.T) {
	st := store.NewMemory()
	svc := NewCatalogService(st)
	ctx := context.Background()

	id, err := svc.CreateService(ctx, "Massage", 200000, "Linh")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateService(ctx, id, "Hot Stone Massage", 250000, "Linh"))

	listings, err := svc.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Hot Stone Massage", listings[0].ServiceName)
	assert.Equal(t, float64(250000), listings[0].Price)
}

func TestCatalogService_UpdateService_Validation(t *testing.T) {
	spy := newCountingStore()
	svc := NewCatalogService(spy)

	err := svc.UpdateService(context.Background(), "some-id", "Massage", -1, "Linh")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, spy.calls)
}

func TestCatalogService_UpdateService_UnknownID(t *testing.T) {
	st := store.NewMemory()
	svc := NewCatalogService(st)
	ctx := context.Background()

	err := svc.UpdateService(ctx, "X", "Massage", 200000, "Linh")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	// The failed update left the catalog untouched
	listings, err := svc.ListServices(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestCatalogService_DeleteService(t *testing.T) {
	st := store.NewMemory()
	svc := NewCatalogService(st)
	ctx := context.Background()

	id, err := svc.CreateService(ctx, "Massage", 200000, "Linh")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteService(ctx, id))

	// Second delete of the same id reports not-found, nothing else
	assert.ErrorIs(t, svc.DeleteService(ctx, id), ErrServiceNotFound)
}

func TestCatalogService_ListServices_Empty(t *testing.T) {
	svc := NewCatalogService(store.NewMemory())

	listings, err := svc.ListServices(context.Background())

	require.NoError(t, err)
	assert.Empty(t, listings)
}
