package identity

import (
	"fmt"
	"strings"

	"go-gin-event-portal/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// adminRoles are the role names treated as administrators.
var adminRoles = map[string]bool{
	"admin": true,
}

// Claims are the Keycloak access token claims the portal reads.
type Claims struct {
	PreferredUsername string `json:"preferred_username"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	RealmAccess       struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
	ResourceAccess map[string]struct {
		Roles []string `json:"roles"`
	} `json:"resource_access"`
	jwt.RegisteredClaims
}

// ParseClaims decodes a bearer token without verifying its signature. The event
// service verifies every call; the portal only uses the claims to shape its screens.
func ParseClaims(rawToken string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(rawToken), claims)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}

func (c *Claims) AllRoles() []string {
	seen := map[string]bool{}
	var roles []string
	add := func(rs []string) {
		for _, r := range rs {
			if !seen[r] {
				seen[r] = true
				roles = append(roles, r)
			}
		}
	}
	add(c.RealmAccess.Roles)
	for _, access := range c.ResourceAccess {
		add(access.Roles)
	}
	return roles
}

// Role maps the token roles onto the portal roles. Anyone who is not an admin
// is a public user.
func (c *Claims) Role() model.Role {
	for _, r := range c.AllRoles() {
		if adminRoles[strings.ToLower(r)] {
			return model.RoleAdmin
		}
	}
	return model.RolePublicUser
}
