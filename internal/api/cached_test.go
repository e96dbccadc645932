package api

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/modelgrid/modelgrid/internal/domain/model"
	"github.com/modelgrid/modelgrid/internal/mocks"
)

var testIdentity = model.RouteIdentity{AppName: "dcim", ModelName: "devices"}

func testSchema() model.Schema {
	return model.Schema{
		Properties: model.NewOrderedProperties(
			model.OrderedProperty{Name: "name", Field: model.FieldSchema{Title: "Name"}},
		),
		ListDisplay: []string{"name"},
	}
}

func TestCachedReaderSchemaMissFetchesAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockModelReader(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	key := SchemaRequest{Identity: testIdentity}.CacheKey()
	schema := testSchema()

	cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	inner.EXPECT().GetSchema(gomock.Any(), testIdentity).Return(schema, nil)
	cache.EXPECT().
		Set(gomock.Any(), key, gomock.Any(), 10*time.Minute).
		DoAndReturn(func(_ context.Context, _ string, value []byte, _ time.Duration) error {
			var stored model.Schema
			require.NoError(t, json.Unmarshal(value, &stored))
			assert.Equal(t, schema.ListDisplay, stored.ListDisplay)
			return nil
		})

	reader := NewCachedReader(CachedReaderOptions{
		Inner:     inner,
		Cache:     cache,
		SchemaTTL: 10 * time.Minute,
	})

	got, err := reader.GetSchema(context.Background(), testIdentity)
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, got.Properties.Names())
}

func TestCachedReaderSchemaHitSkipsFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockModelReader(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	key := SchemaRequest{Identity: testIdentity}.CacheKey()
	raw, err := json.Marshal(testSchema())
	require.NoError(t, err)

	cache.EXPECT().Get(gomock.Any(), key).Return(raw, nil)

	reader := NewCachedReader(CachedReaderOptions{
		Inner:     inner,
		Cache:     cache,
		SchemaTTL: 10 * time.Minute,
	})

	got, err := reader.GetSchema(context.Background(), testIdentity)
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, got.Properties.Names())
}

func TestCachedReaderPageKeyedByWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockModelReader(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	first := model.PageQuery{Limit: 25, Offset: 0}
	second := model.PageQuery{Limit: 25, Offset: 25}
	firstKey := PageRequest{Identity: testIdentity, Query: first}.CacheKey()
	secondKey := PageRequest{Identity: testIdentity, Query: second}.CacheKey()
	require.NotEqual(t, firstKey, secondKey)

	page := model.Page{Results: []model.Record{{"name": "a"}}, Count: 37}

	cache.EXPECT().Get(gomock.Any(), firstKey).Return(nil, nil)
	inner.EXPECT().ListRecords(gomock.Any(), testIdentity, first).Return(page, nil)
	cache.EXPECT().Set(gomock.Any(), firstKey, gomock.Any(), 30*time.Second).Return(nil)

	cache.EXPECT().Get(gomock.Any(), secondKey).Return(nil, nil)
	inner.EXPECT().ListRecords(gomock.Any(), testIdentity, second).Return(page, nil)
	cache.EXPECT().Set(gomock.Any(), secondKey, gomock.Any(), 30*time.Second).Return(nil)

	reader := NewCachedReader(CachedReaderOptions{
		Inner:   inner,
		Cache:   cache,
		PageTTL: 30 * time.Second,
	})

	_, err := reader.ListRecords(context.Background(), testIdentity, first)
	require.NoError(t, err)
	_, err = reader.ListRecords(context.Background(), testIdentity, second)
	require.NoError(t, err)
}

func TestCachedReaderCacheErrorsAreBypassed(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockModelReader(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	key := SchemaRequest{Identity: testIdentity}.CacheKey()

	cache.EXPECT().Get(gomock.Any(), key).Return(nil, errors.New("connection refused"))
	inner.EXPECT().GetSchema(gomock.Any(), testIdentity).Return(testSchema(), nil)
	cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), time.Minute).Return(errors.New("connection refused"))

	reader := NewCachedReader(CachedReaderOptions{
		Inner:     inner,
		Cache:     cache,
		SchemaTTL: time.Minute,
	})

	got, err := reader.GetSchema(context.Background(), testIdentity)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Properties.Len())
}

func TestCachedReaderCorruptEntryFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockModelReader(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	key := SchemaRequest{Identity: testIdentity}.CacheKey()

	cache.EXPECT().Get(gomock.Any(), key).Return([]byte("{broken"), nil)
	inner.EXPECT().GetSchema(gomock.Any(), testIdentity).Return(testSchema(), nil)
	cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), time.Minute).Return(nil)

	reader := NewCachedReader(CachedReaderOptions{
		Inner:     inner,
		Cache:     cache,
		SchemaTTL: time.Minute,
	})

	_, err := reader.GetSchema(context.Background(), testIdentity)
	require.NoError(t, err)
}

func TestCachedReaderNilCacheDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockModelReader(ctrl)

	inner.EXPECT().GetSchema(gomock.Any(), testIdentity).Return(testSchema(), nil)

	reader := NewCachedReader(CachedReaderOptions{Inner: inner})
	_, err := reader.GetSchema(context.Background(), testIdentity)
	require.NoError(t, err)
}

func TestCachedReaderFetchErrorIsNotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockModelReader(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	key := PageRequest{Identity: testIdentity, Query: model.PageQuery{}}.CacheKey()
	fetchErr := errors.New("upstream down")

	cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	inner.EXPECT().ListRecords(gomock.Any(), testIdentity, model.PageQuery{}).Return(model.Page{}, fetchErr)

	reader := NewCachedReader(CachedReaderOptions{
		Inner:   inner,
		Cache:   cache,
		PageTTL: time.Minute,
	})

	_, err := reader.ListRecords(context.Background(), testIdentity, model.PageQuery{})
	assert.ErrorIs(t, err, fetchErr)
}
