package memory

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/Vasu1712/hackmate-backend/internal/models"
)

// GetUser retrieves a user by ID.
func (s *DMStore) GetUser(userID string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := lo.Find(s.users, func(u models.User) bool { return u.ID == userID })
	if !ok {
		return models.User{}, false
	}
	return cloneUser(u), true
}

// DefaultUser returns the first seeded user, the session user when none was chosen.
func (s *DMStore) DefaultUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.users) == 0 {
		return models.User{}, false
	}
	return cloneUser(s.users[0]), true
}

// ListUsers returns all users in seed order.
func (s *DMStore) ListUsers() []models.User {
	return s.FilterUsers(models.UserFilter{})
}

// FilterUsers returns the users matching every non-empty criterion of f.
func (s *DMStore) FilterUsers(f models.UserFilter) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(f.Search)
	result := []models.User{}
	for _, u := range s.users {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Title), search) &&
			!strings.Contains(strings.ToLower(u.Bio), search) {
			continue
		}
		if len(f.Skills) > 0 && !lo.Some(u.Skills, f.Skills) {
			continue
		}
		if len(f.Locations) > 0 && !lo.Contains(f.Locations, u.Location) {
			continue
		}
		if len(f.Hackathons) > 0 && !lo.Some(u.Hackathons, f.Hackathons) {
			continue
		}
		result = append(result, cloneUser(u))
	}
	return result
}

// UpdateUser replaces the stored record with the same ID.
// It returns false if no such user exists.
func (s *DMStore) UpdateUser(user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.users, func(u models.User) bool { return u.ID == user.ID })
	if i < 0 {
		s.log.Debug().Str("user_id", user.ID).Msg("update of unknown user")
		return false
	}
	s.users[i] = cloneUser(user)
	s.log.Debug().Str("user_id", user.ID).Msg("profile replaced")
	return true
}

// Catalog returns the skill, location and hackathon vocabularies.
func (s *DMStore) Catalog() models.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Catalog{
		Skills:     slices.Clone(s.catalog.Skills),
		Locations:  slices.Clone(s.catalog.Locations),
		Hackathons: slices.Clone(s.catalog.Hackathons),
	}
}

func cloneUser(u models.User) models.User {
	u.Skills = slices.Clone(u.Skills)
	u.Hackathons = slices.Clone(u.Hackathons)
	return u
}
