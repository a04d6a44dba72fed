package complaint

import (
	"context"
	"strings"

	"github.com/drishti/clinic/internal/platform/rest"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListOptions(ctx context.Context) ([]*Option, error) {
	return s.repo.ListOptions(ctx)
}

// AddOrTouch registers a vocabulary option. Resubmitting an existing option
// is an idempotent touch, not an error. Returns true when the option is new.
func (s *Service) AddOrTouch(ctx context.Context, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return false, rest.Invalid("Missing required fields")
	}
	return s.repo.AddOrTouch(ctx, text)
}
