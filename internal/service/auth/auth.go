package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
	"ordertracker/internal/entities"
	"ordertracker/internal/pkg/session"
	"ordertracker/pkg/logger"
)

// Credential - учетная запись из конфигурации. Пароль хранится только как bcrypt-хеш.
type Credential struct {
	Username     string
	PasswordHash string
	Role         entities.Role
}

type Token struct {
	AccessToken string
	Session     session.Session
}

type Service struct {
	log         logger.Logger
	credentials []Credential
	issuer      TokenIssuer
	clientState ClientStateService

	// для неизвестного логина сверяемся с фиктивным хешем той же стоимости,
	// иначе время ответа выдает существующие учетные записи
	dummyHash []byte
	compare   func(hash, password []byte) error
}

func New(log logger.Logger, credentials []Credential, issuer TokenIssuer, clientState ClientStateService) *Service {
	return &Service{
		log:         log.With(logger.NewField("service", "auth")),
		credentials: credentials,
		issuer:      issuer,
		clientState: clientState,
		dummyHash:   dummyHash(credentials),
		compare:     bcrypt.CompareHashAndPassword,
	}
}

func dummyHash(credentials []Credential) []byte {
	cost := bcrypt.DefaultCost
	if len(credentials) > 0 {
		if c, err := bcrypt.Cost([]byte(credentials[0].PasswordHash)); err == nil {
			cost = c
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ordertracker-dummy-password"), cost)
	if err != nil {
		return nil
	}
	return hash
}

// Login проверяет пару логин/пароль и выдает токен сессии с ролью учетной записи.
func (s *Service) Login(ctx context.Context, username, password string) (*Token, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	credential, ok := lo.Find(s.credentials, func(c Credential) bool {
		return c.Username == username
	})
	if !ok {
		_ = s.compare(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := s.compare([]byte(credential.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, sess, err := s.issuer.Issue(credential.Username, credential.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if _, err := s.clientState.Set(ctx, sess.Username, entities.ClientStateAuthenticated, true); err != nil {
		// логин уже состоялся, флаг клиента не критичен
		s.log.Warn("mark client authenticated",
			logger.NewField("username", sess.Username),
			logger.NewField("error", err),
		)
	}

	return &Token{AccessToken: accessToken, Session: sess}, nil
}

func (s *Service) Logout(ctx context.Context, sess session.Session) error {
	if !sess.IsAuthenticated() {
		return ErrUnauthenticated
	}

	if _, err := s.clientState.Set(ctx, sess.Username, entities.ClientStateAuthenticated, false); err != nil {
		return fmt.Errorf("clear authenticated flag: %w", err)
	}
	return nil
}
