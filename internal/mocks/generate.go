// Package mocks provides mock implementations for testing modelgrid.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the core ports.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	reader := mocks.NewMockModelReader(ctrl)
//	reader.EXPECT().GetSchema(gomock.Any(), gomock.Any()).Return(schema, nil)
package mocks

// Generate mock for ModelReader interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=model_reader_mock.go github.com/modelgrid/modelgrid/internal/core ModelReader

// Generate mock for CacheRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/modelgrid/modelgrid/internal/core CacheRepository
