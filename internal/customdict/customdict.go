// Package customdict stores a user's personal dictionary in a Redis set.
// Words in the dictionary are never flagged by the HTTP API.
package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const key = "nlprule:custom_dict"

// Dict wraps a Redis client holding the personal dictionary.
type Dict struct {
	client *redis.Client
}

// New connects to the Redis instance at addr.
func New(addr string) *Dict {
	return &Dict{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// NewWithClient wraps an existing client. Used by tests.
func NewWithClient(client *redis.Client) *Dict {
	return &Dict{client: client}
}

// Add inserts a word into the personal dictionary.
func (d *Dict) Add(ctx context.Context, word string) error {
	return d.client.SAdd(ctx, key, word).Err()
}

// Remove deletes a word from the personal dictionary.
func (d *Dict) Remove(ctx context.Context, word string) error {
	return d.client.SRem(ctx, key, word).Err()
}

// Contains reports whether word is in the personal dictionary.
func (d *Dict) Contains(ctx context.Context, word string) (bool, error) {
	return d.client.SIsMember(ctx, key, word).Result()
}

// All returns every word in the personal dictionary.
func (d *Dict) All(ctx context.Context) ([]string, error) {
	return d.client.SMembers(ctx, key).Result()
}

// Close releases the underlying client.
func (d *Dict) Close() error {
	return d.client.Close()
}
