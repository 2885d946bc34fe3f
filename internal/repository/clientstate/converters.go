package clientstate

import (
	"github.com/samber/lo"
	"ordertracker/internal/entities"
)

func ToDomain(m *ClientStateDB) *entities.ClientStateEntry {
	if m == nil {
		return nil
	}

	return &entities.ClientStateEntry{
		Username:  m.Username,
		Key:       entities.ClientStateKey(m.Key),
		Value:     m.Value,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToDomainList(models []ClientStateDB) []entities.ClientStateEntry {
	if len(models) == 0 {
		return []entities.ClientStateEntry{}
	}

	return lo.Map(models, func(m ClientStateDB, _ int) entities.ClientStateEntry {
		return *ToDomain(&m)
	})
}
