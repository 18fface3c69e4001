package cache

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("not found")
var ErrAlreadyExists = errors.New("already exists")

type PutCondition int

const (
	PutUnconditional PutCondition = iota
	PutIfNoneMatch
)

type PutOptions struct {
	Condition PutCondition
}

func Unconditional() PutOptions {
	return PutOptions{Condition: PutUnconditional}
}

// IfNoneMatch makes Put fail with ErrAlreadyExists when the key is present.
func IfNoneMatch() PutOptions {
	return PutOptions{Condition: PutIfNoneMatch}
}

type Cache interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key, value string, opts PutOptions) error
}

// ListCache can additionally enumerate keys under a prefix.
type ListCache interface {
	Cache
	List(ctx context.Context, prefix string, marker string) ([]string, error)
}
