package usecase

import (
	domainErrors "github.com/agronhq/agron/internal/domain/errors"
	"github.com/agronhq/agron/internal/domain/model"
)

// requireRole gates an operation on the actor's marketplace role. The switch
// is exhaustive over known roles so that adding a role forces a review here.
func requireRole(actor model.Actor, want model.Role) error {
	switch actor.Role {
	case model.RoleFarmer, model.RoleBuyer, model.RoleTransporter:
		if actor.Role == want {
			return nil
		}
		return domainErrors.ErrUnauthorized
	}
	return domainErrors.ErrInvalidRole
}
