package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	config "github.com/ghostwriterhq/scheduler/configs"
	"github.com/ghostwriterhq/scheduler/pkg/utils"
)

// SessionService is the product's mock authentication: any well-formed
// email signs in, the owner id is derived deterministically from it, and
// the session lives in a signed cookie token. Created on sign-in, destroyed
// on sign-out; the owner id is passed explicitly to everything that needs
// it rather than read from ambient state.
type SessionService interface {
	SignIn(email string) (ownerID, token string, err error)
	SessionDuration() time.Duration
}

type sessionService struct {
	cfg config.Config
}

func NewSessionService(cfg config.Config) SessionService {
	return &sessionService{cfg: cfg}
}

const sessionDuration = 7 * 24 * time.Hour

func (s *sessionService) SessionDuration() time.Duration {
	return sessionDuration
}

func (s *sessionService) SignIn(email string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		err = errors.New("a valid email is required to sign in")
		slog.Info(err.Error())
		return "", "", err
	}

	sum := sha256.Sum256([]byte(email))
	ownerID := hex.EncodeToString(sum[:16])

	token, err := utils.GenerateToken(s.cfg.SecretKey, ownerID, sessionDuration)
	if err != nil {
		return "", "", err
	}

	return ownerID, token, nil
}
