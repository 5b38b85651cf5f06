package services

import (
	"fmt"

	"teamfortasks/internal/fixtures"
	"teamfortasks/internal/view"
)

// Services holds the dependencies shared by the handlers.
type Services struct {
	Catalog *fixtures.Catalog
}

// New loads the fixture catalog, from fixturesFile when set or from the
// embedded document otherwise. Invalid fixtures are reported here so the
// process never starts serving them.
func New(fixturesFile string) (*Services, error) {
	var (
		catalog *fixtures.Catalog
		err     error
	)
	if fixturesFile != "" {
		catalog, err = fixtures.LoadFile(fixturesFile)
	} else {
		catalog, err = fixtures.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	return &Services{Catalog: catalog}, nil
}

// NewPage returns a landing page in its initial state.
func (s *Services) NewPage() (*view.Page, error) {
	return view.NewPage(s.Catalog)
}
