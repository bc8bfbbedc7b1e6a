// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-aura/lib/common"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultAuthorityCacheSize is the number of authority sets kept by the caching resolver.
const DefaultAuthorityCacheSize = 256

// CachingResolver caches the authority sets resolved by an inner resolver per chain position.
// Failed resolutions are not cached.
type CachingResolver struct {
	inner AuthorityResolver
	cache *lru.Cache
}

// NewCachingResolver wraps the resolver with a cache of the given size.
// A non positive size uses DefaultAuthorityCacheSize.
func NewCachingResolver(inner AuthorityResolver, size int) (*CachingResolver, error) {
	if size <= 0 {
		size = DefaultAuthorityCacheSize
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating authority set cache: %w", err)
	}

	return &CachingResolver{
		inner: inner,
		cache: cache,
	}, nil
}

// Resolve returns the cached set for the position, resolving it on a miss.
func (r *CachingResolver) Resolve(ctx context.Context, position common.Hash) (*AuthoritySet, error) {
	if cached, ok := r.cache.Get(position); ok {
		return cached.(*AuthoritySet), nil
	}

	set, err := r.inner.Resolve(ctx, position)
	if err != nil {
		return nil, err
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("resolving at %s: %w", position, err)
	}

	r.cache.Add(position, set)
	return set, nil
}

func resolve(ctx context.Context, resolver AuthorityResolver, position common.Hash) (*AuthoritySet, error) {
	set, err := resolver.Resolve(ctx, position)
	if err != nil {
		if errors.Is(err, ErrResolution) {
			return nil, err
		}
		return nil, fmt.Errorf("%w at %s: %v", ErrResolution, position.Short(), err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}
