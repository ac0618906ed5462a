// Package mocks provides generated mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the interfaces in internal/ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	store := mocks.NewMockRoleStore(ctrl)
//	store.EXPECT().FindByEmail(gomock.Any(), "a@example.com").Return(user, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=role_store_mock.go github.com/savelife/savelife-api/internal/ports RoleStore

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=token_codec_mock.go github.com/savelife/savelife-api/internal/ports TokenCodec

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=payment_intents_mock.go github.com/savelife/savelife-api/internal/ports PaymentIntents

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_mock.go github.com/savelife/savelife-api/internal/ports Cache
