package cache

import (
	"context"
	"time"
)

// NopCache stores nothing; every read is a miss. Used when CACHE_TYPE=none.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, error) { return nil, ErrCacheMiss }
func (NopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NopCache) Delete(context.Context, string) error { return nil }
func (NopCache) DeletePrefix(context.Context, string) error { return nil }
func (NopCache) Exists(context.Context, string) (bool, error) { return false, nil }
func (NopCache) Clear(context.Context) error { return nil }
func (NopCache) Close() error { return nil }

var _ Cache = NopCache{}
