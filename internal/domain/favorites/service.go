package favorites

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/storage"
	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
)

var ErrItemName = apperror.Validation("favorite_name_required", "menu item name is required")

// Service keeps the list of favorited menu item names
type Service struct {
	repo *storage.Repository
	log  logrus.FieldLogger
	mu   sync.Mutex
}

// NewService creates a new favorites service
func NewService(repo *storage.Repository, log logrus.FieldLogger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// List returns favorites in the order they were added
func (s *Service) List(ctx context.Context) []string {
	names, ok := storage.Load[[]string](ctx, s.repo, storage.KeyFavorites)
	if !ok || names == nil {
		return []string{}
	}
	return names
}

// IsFavorite reports whether name is in the list
func (s *Service) IsFavorite(ctx context.Context, name string) bool {
	return indexOf(s.List(ctx), name) >= 0
}

// Toggle adds name if absent and removes it otherwise. It returns whether
// name is a favorite afterwards.
func (s *Service) Toggle(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrItemName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	names, _, err := storage.Read[[]string](ctx, s.repo, storage.KeyFavorites)
	if err != nil {
		return false, err
	}
	added := false
	if i := indexOf(names, name); i >= 0 {
		names = append(names[:i], names[i+1:]...)
	} else {
		names = append(names, name)
		added = true
	}

	if err := s.repo.Save(ctx, storage.KeyFavorites, names); err != nil {
		return !added, err
	}

	s.log.WithFields(logrus.Fields{
		"item":     name,
		"favorite": added,
	}).Debug("favorite toggled")
	return added, nil
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
