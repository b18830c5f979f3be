// Package kvstore holds whole collections as JSON documents under string keys.
// Reads and writes always move the entire value; there are no partial updates.
package kvstore

import (
	"context"

	"vacation-desk/internal/pkg/errs"
)

//go:generate mockgen -source=store.go -destination=../../../tests/mock/kvstore/store.go -package=kvstoremock

var ErrKeyNotFound = errs.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
