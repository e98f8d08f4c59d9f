// Package permissions maps API routes to the staff roles allowed to call
// them. The mapping is embedded at build time so deployments cannot drift
// from the code that enforces it.
package permissions

import (
	"balai/shared/constant"
	"embed"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionFS embed.FS

type permissionEntry struct {
	Pattern string   `json:"pattern"`
	Method  string   `json:"method"`
	Roles   []string `json:"roles"`
}

type permissionFile struct {
	Permissions []permissionEntry `json:"permissions"`
}

var (
	once    sync.Once
	byRoute map[string]map[string]bool
)

func load() {
	raw, err := permissionFS.ReadFile("permissions.json")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read embedded permissions file")
	}

	var file permissionFile
	if err := json.Unmarshal(raw, &file); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse embedded permissions file")
	}

	byRoute = make(map[string]map[string]bool, len(file.Permissions))
	for _, entry := range file.Permissions {
		key := routeKey(entry.Method, entry.Pattern)
		roles, ok := byRoute[key]
		if !ok {
			roles = make(map[string]bool, len(entry.Roles))
			byRoute[key] = roles
		}
		for _, role := range entry.Roles {
			roles[role] = true
		}
	}

	log.Info().Int("routes", len(byRoute)).Msg("Route permissions loaded")
}

func routeKey(method, pattern string) string {
	return method + " " + pattern
}

// IsAllowed reports whether the given role may call the route identified
// by its HTTP method and chi route pattern. Admins may call every known
// route. Unknown routes are denied for everyone.
func IsAllowed(role, method, pattern string) bool {
	once.Do(load)

	roles, ok := byRoute[routeKey(method, pattern)]
	if !ok {
		return false
	}

	if role == constant.RoleAdmin {
		return true
	}

	return roles[role]
}

// IsKnownRoute reports whether the route has a permission entry at all.
func IsKnownRoute(method, pattern string) bool {
	once.Do(load)

	_, ok := byRoute[routeKey(method, pattern)]
	return ok
}
