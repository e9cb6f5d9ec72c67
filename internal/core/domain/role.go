package domain

import "strings"

// Role is a named permission tag from a closed enumeration. Roles are seeded
// once at bootstrap and never created per-request.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// SeedRoles is the full role set expected to exist in the role store.
var SeedRoles = []Role{RoleUser, RoleModerator, RoleAdmin}

// ParseRole maps a requested role name to a member of the enumeration.
// Matching is case-insensitive; any unrecognized name falls back to USER.
func ParseRole(name string) Role {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleModerator):
		return RoleModerator
	default:
		return RoleUser
	}
}

// ResolveRoles converts the role names requested at registration into a
// deduplicated role set. A nil or empty request yields exactly {USER}.
func ResolveRoles(names []string) []Role {
	if len(names) == 0 {
		return []Role{RoleUser}
	}
	seen := make(map[Role]struct{}, len(names))
	roles := make([]Role, 0, len(names))
	for _, n := range names {
		r := ParseRole(n)
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}
	return roles
}

// Authority returns the authority string checked by the authorization layer.
// Role names are used verbatim as authority identifiers.
func (r Role) Authority() string {
	return string(r)
}
