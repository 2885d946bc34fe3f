package clientstate

import (
	"slices"
	"strings"

	"ordertracker/internal/entities"
)

func isValidKey(key entities.ClientStateKey) bool {
	return slices.Contains(entities.ClientStateKeys, key)
}

func isValidUsername(username string) bool {
	return strings.TrimSpace(username) != ""
}
