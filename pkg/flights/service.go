package flights

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/structkit/pkg/errors"
)

// Store persists flight numbers.
type Store interface {
	// Add stores number and reports whether it was new.
	Add(ctx context.Context, number string) (bool, error)
	// All returns every stored number in any order.
	All(ctx context.Context) ([]string, error)
}

// Service registers and searches flight numbers.
type Service struct {
	store  Store
	logger *log.Logger
}

// NewService returns a Service backed by store. A nil logger discards output.
func NewService(store Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{store: store, logger: logger}
}

// Register adds number to the registry and reports whether it was not
// already present.
func (s *Service) Register(ctx context.Context, number string) (bool, error) {
	if err := errors.ValidateFlightNumber(number); err != nil {
		return false, err
	}
	added, err := s.store.Add(ctx, number)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "register flight %q", number)
	}
	s.logger.Debug("register flight", "number", number, "added", added)
	return added, nil
}

// Search returns the registered numbers containing query, compared without
// regard to case, in ascending order. An empty query matches everything.
func (s *Service) Search(ctx context.Context, query string) ([]string, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list flights")
	}
	q := strings.ToLower(query)
	out := make([]string, 0, len(all))
	for _, n := range all {
		if strings.Contains(strings.ToLower(n), q) {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	s.logger.Debug("search flights", "query", query, "matches", len(out))
	return out, nil
}
