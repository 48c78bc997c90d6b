package repository

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"decisionengine/internal/domain"
)

// ProfileRepository owns persistence of watchlist profiles. The rest of
// the system only ever reads the ticker set off the returned values.
type ProfileRepository interface {
	List() ([]domain.Profile, error)
	Get(id uuid.UUID) (*domain.Profile, error)
	Create(name string) (*domain.Profile, error)
	UpdateTickers(id uuid.UUID, addTickers, removeTickers []string) (*domain.Profile, error)
	Delete(id uuid.UUID) error
}

type profileRepositoryHandler struct {
	store *badgerhold.Store
}

func NewProfileRepository(store *badgerhold.Store) ProfileRepository {
	return &profileRepositoryHandler{store: store}
}

// OpenProfileStore opens (creating if needed) the embedded badger store
// backing profile persistence.
func OpenProfileStore(dir string) (*badgerhold.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile store directory: %w", err)
	}
	options := badgerhold.DefaultOptions
	options.Dir = dir
	options.ValueDir = dir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile store: %w", err)
	}
	return store, nil
}

func (h *profileRepositoryHandler) List() ([]domain.Profile, error) {
	profiles := []domain.Profile{}
	if err := h.store.Find(&profiles, nil); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	// badger iterates in key order; present in creation order instead
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.Before(profiles[j].CreatedAt)
	})
	return profiles, nil
}

func (h *profileRepositoryHandler) Get(id uuid.UUID) (*domain.Profile, error) {
	profile := domain.Profile{}
	err := h.store.Get(id, &profile)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil, domain.NotFoundError{Resource: "profile", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}
	return &profile, nil
}

func (h *profileRepositoryHandler) Create(name string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Unnamed profile"
	}
	profile := domain.Profile{
		ID:        uuid.New(),
		Name:      name,
		Tickers:   []string{},
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Insert(profile.ID, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

func (h *profileRepositoryHandler) UpdateTickers(id uuid.UUID, addTickers, removeTickers []string) (*domain.Profile, error) {
	profile, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	for _, symbol := range addTickers {
		profile.AddTicker(symbol)
	}
	for _, symbol := range removeTickers {
		profile.RemoveTicker(symbol)
	}
	if err := h.store.Update(profile.ID, *profile); err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", id, err)
	}
	return profile, nil
}

func (h *profileRepositoryHandler) Delete(id uuid.UUID) error {
	err := h.store.Delete(id, &domain.Profile{})
	if errors.Is(err, badgerhold.ErrNotFound) {
		return domain.NotFoundError{Resource: "profile", ID: id.String()}
	}
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	return nil
}
