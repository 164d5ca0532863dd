package auth

import (
	"time"

	"github.com/agronhq/agron/internal/domain/model"
)

// Strategy issues and verifies auth tokens carrying the acting user and role.
type Strategy interface {
	IssueToken(userID int64, role model.Role) (string, error)
	ParseToken(token string) (model.Actor, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
