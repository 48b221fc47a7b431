package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cptrack/internal/domain"
)

type themeService struct {
	session *Session
}

func NewThemeService(session *Session) ThemeService {
	return &themeService{session: session}
}

func (s *themeService) Current() domain.Theme {
	return s.session.Snapshot().Theme
}

func (s *themeService) Set(ctx context.Context, t domain.Theme) error {
	if t != domain.ThemeLight && t != domain.ThemeDark {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, t)
	}
	return s.session.Mutate(ctx, "theme-set", func(m *Mutation) error {
		m.State.Theme = t
		m.Fields["theme"] = string(t)
		return nil
	})
}

func (s *themeService) Toggle(ctx context.Context) (domain.Theme, error) {
	var out domain.Theme
	err := s.session.Mutate(ctx, "theme-toggle", func(m *Mutation) error {
		m.State.Theme = m.State.Theme.Toggled()
		out = m.State.Theme
		m.Fields["theme"] = string(out)
		return nil
	})
	return out, err
}
