package herald

import (
	"log/slog"
	"strings"
)

// ParseRoleIDs splits a comma-separated role list, trimming each entry and
// dropping empty ones.
func ParseRoleIDs(s string) []string {
	return NormalizeRoleIDs(strings.Split(s, ","))
}

// NormalizeRoleIDs trims ids and drops empty entries.
func NormalizeRoleIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// AllowList authorizes actors by role membership. It is read-only after
// construction.
type AllowList struct {
	roles  map[string]struct{}
	logger *slog.Logger
}

// NewAllowList creates an AllowList from role IDs. Blank IDs are ignored.
// A nil logger discards the empty-list warning.
func NewAllowList(roleIDs []string, logger *slog.Logger) AllowList {
	if logger == nil {
		logger = discardLogger()
	}
	roles := make(map[string]struct{})
	for _, id := range NormalizeRoleIDs(roleIDs) {
		roles[id] = struct{}{}
	}
	return AllowList{roles: roles, logger: logger}
}

// Len returns the number of allowed roles.
func (a AllowList) Len() int { return len(a.roles) }

// Permits reports whether any of roles is on the list. An empty list
// permits nobody and warns on every call.
func (a AllowList) Permits(roles []string) bool {
	if len(a.roles) == 0 {
		a.logger.Warn("no allowed role IDs configured, denying command")
		return false
	}
	for _, r := range roles {
		if _, ok := a.roles[r]; ok {
			return true
		}
	}
	return false
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
