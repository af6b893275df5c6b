package auth

import "adboard/internal/model"

// CanMutate decides whether identity may mutate a resource owned by ownerID.
// Admins may mutate anything; everyone else only what they own. It never
// errors; callers translate a false result into a forbidden outcome.
func CanMutate(identity *model.User, ownerID uint) bool {
	if identity == nil {
		return false
	}
	if identity.Role == model.RoleAdmin {
		return true
	}
	return identity.ID == ownerID
}
