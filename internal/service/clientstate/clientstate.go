package clientstate

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"ordertracker/internal/entities"
)

// Service хранит флаги клиента по объявленной схеме ключей.
// Отсутствующий ключ читается как false.
type Service struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Service) Get(ctx context.Context, username string) (*entities.ClientState, error) {
	if !isValidUsername(username) {
		return nil, ErrInvalidUsername
	}

	entries, err := s.repository.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get client state: %w", err)
	}

	values := lo.SliceToMap(entries, func(e entities.ClientStateEntry) (entities.ClientStateKey, bool) {
		return e.Key, e.Value
	})

	return &entities.ClientState{
		Installed:     values[entities.ClientStateInstalled],
		Authenticated: values[entities.ClientStateAuthenticated],
	}, nil
}

func (s *Service) Set(ctx context.Context, username string, key entities.ClientStateKey, value bool) (*entities.ClientStateEntry, error) {
	if !isValidUsername(username) {
		return nil, ErrInvalidUsername
	}
	if !isValidKey(key) {
		return nil, fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}

	entry, err := s.repository.Upsert(ctx, entities.ClientStateEntry{
		Username: username,
		Key:      key,
		Value:    value,
	})
	if err != nil {
		return nil, fmt.Errorf("set client state %s: %w", key, err)
	}
	return entry, nil
}

// SetMany пишет несколько ключей в одной транзакции: либо все, либо ничего.
func (s *Service) SetMany(ctx context.Context, username string, values map[entities.ClientStateKey]bool) (*entities.ClientState, error) {
	if !isValidUsername(username) {
		return nil, ErrInvalidUsername
	}
	if len(values) == 0 {
		return nil, ErrEmptyUpdate
	}

	keys := lo.Keys(values)
	slices.Sort(keys)
	for _, key := range keys {
		if !isValidKey(key) {
			return nil, fmt.Errorf("%q: %w", key, ErrUnknownKey)
		}
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, key := range keys {
			_, err := s.repository.Upsert(ctx, entities.ClientStateEntry{
				Username: username,
				Key:      key,
				Value:    values[key],
			})
			if err != nil {
				return fmt.Errorf("set client state %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, username)
}
