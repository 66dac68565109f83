package experiment

import (
	"context"
	"fmt"

	"github.com/hupe1980/fixgo/checkpoint"
	"github.com/hupe1980/fixgo/model"
)

// Suite is a labeled collection of test networks, grouped by size and
// sample index. The ID partitions all checkpoint keys derived from it.
type Suite struct {
	ID       string           `json:"id"`
	Networks []*model.Network `json:"networks"`
}

// Network returns the sample-th network of size n, if present.
func (s *Suite) Network(n, sample int) (*model.Network, bool) {
	for _, net := range s.Networks {
		if net.N == n && net.Sample == sample {
			return net, true
		}
	}
	return nil, false
}

// Validate checks every network of the suite.
func (s *Suite) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("suite has no ID")
	}
	for _, net := range s.Networks {
		if err := net.Validate(); err != nil {
			return fmt.Errorf("suite %s, network N=%d s=%d: %w", s.ID, net.N, net.Sample, err)
		}
	}
	return nil
}

// SaveSuite persists the suite under its suite key.
func SaveSuite(ctx context.Context, store checkpoint.Store, s *Suite) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return store.Put(ctx, SuiteKey(s.ID), s)
}

// LoadSuite loads a previously saved suite by ID.
func LoadSuite(ctx context.Context, store checkpoint.Store, id string) (*Suite, error) {
	var s Suite
	if err := store.Get(ctx, SuiteKey(id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}
