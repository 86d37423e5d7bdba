package archive

import (
	"sort"
	"strings"

	"github.com/sbilibin2017/archive-viewer/internal/models"
)

// SearchUsers returns users whose username, full name or name contains query,
// ignoring case. Usernames starting with the query rank first, then
// alphabetically by username. A blank query matches nothing.
func SearchUsers(users []models.User, query string) []models.User {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []models.User{}
	}

	matches := make([]models.User, 0)
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Username), term) ||
			strings.Contains(strings.ToLower(u.FullName), term) ||
			strings.Contains(strings.ToLower(u.Name), term) {
			matches = append(matches, u)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := strings.ToLower(matches[i].Username), strings.ToLower(matches[j].Username)
		aPrefix, bPrefix := strings.HasPrefix(a, term), strings.HasPrefix(b, term)
		if aPrefix != bPrefix {
			return aPrefix
		}
		return a < b
	})
	return matches
}

// SortUsers orders users alphabetically by username, ignoring case.
func SortUsers(users []models.User) {
	sort.SliceStable(users, func(i, j int) bool {
		return strings.ToLower(users[i].Username) < strings.ToLower(users[j].Username)
	})
}

// MatchUsername returns every user whose username, or name as a fallback,
// equals username ignoring case. No other normalization is applied.
func MatchUsername(users []models.User, username string) []models.User {
	var matches []models.User
	for _, u := range users {
		if strings.EqualFold(u.Username, username) || strings.EqualFold(u.Name, username) {
			matches = append(matches, u)
		}
	}
	return matches
}
