package entities

import "time"

type ClientStateKey string

const (
	// выставляется клиентом после установки PWA, автоматически не сбрасывается
	ClientStateInstalled ClientStateKey = "installed"
	// выставляется при логине, сбрасывается при логауте
	ClientStateAuthenticated ClientStateKey = "authenticated"
)

func (k ClientStateKey) String() string {
	return string(k)
}

// ClientStateKeys - объявленная схема ключей. Все значения булевы.
var ClientStateKeys = []ClientStateKey{ClientStateInstalled, ClientStateAuthenticated}

type ClientStateEntry struct {
	Username  string
	Key       ClientStateKey
	Value     bool
	UpdatedAt time.Time
}

type ClientState struct {
	Installed     bool
	Authenticated bool
}
