package customdict

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Store keeps operator-maintained domain terms in a Redis hash, word → weight.
// It lets the built-in domain list be extended without rebuilding the binary.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a new Store with the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, key: "domain_terms"}
}

// Add inserts a term with its weight.
func (s *Store) Add(word string, weight float64) error {
	return s.client.HSet(context.Background(), s.key, word, weight).Err()
}

// Remove deletes a term.
func (s *Store) Remove(word string) error {
	return s.client.HDel(context.Background(), s.key, word).Err()
}

// All returns every stored term with its weight.
func (s *Store) All() (map[string]float64, error) {
	raw, err := s.client.HGetAll(context.Background(), s.key).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(raw))
	for word, w := range raw {
		weight, err := strconv.ParseFloat(w, 64)
		if err != nil || weight <= 0 {
			continue
		}
		out[word] = weight
	}
	return out, nil
}

// Name implements dictionary.Source.
func (s *Store) Name() string { return "redis:" + s.key }

// Each implements dictionary.Source.
func (s *Store) Each(fn func(word string, weight float64)) error {
	terms, err := s.All()
	if err != nil {
		return err
	}
	for word, weight := range terms {
		fn(word, weight)
	}
	return nil
}
