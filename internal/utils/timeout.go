package utils

import (
	"context"
	"time"
)

const (
	DefaultDBTimeout = 5 * time.Second

	// Checkout runs a multi-statement transaction, so it gets more headroom
	// than a single query.
	DefaultCheckoutTimeout = 10 * time.Second
)

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

func WithCheckoutTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultCheckoutTimeout)
}
