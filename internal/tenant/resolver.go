package tenant

import (
	"context"
	"errors"
	"strconv"

	"metagym/internal/auth"
	"metagym/internal/logger"
	"metagym/internal/user"
)

var ErrGymUnresolved = errors.New("could not resolve a gym for the user")

// ProfileFinder is the slice of the user repository the resolver needs.
type ProfileFinder interface {
	FindByID(ctx context.Context, id int) (*user.User, error)
}

// GymFinder resolves a gym id from its name.
type GymFinder interface {
	FindIDByName(ctx context.Context, name string) (int, error)
}

// Resolver determines which gym a user is operating on. Sources are tried
// in a fixed priority order: the server-side profile row, the gym_id claim
// in the token, a lookup by the profile's gym name, and finally the stored
// selection. The first source that yields a gym wins.
type Resolver struct {
	profiles ProfileFinder
	gyms     GymFinder
	store    Store
}

func NewResolver(profiles ProfileFinder, gyms GymFinder, store Store) *Resolver {
	return &Resolver{
		profiles: profiles,
		gyms:     gyms,
		store:    store,
	}
}

func (r *Resolver) Resolve(ctx context.Context, userID int, claims *auth.JWTClaims) (int, error) {
	profile, err := r.profiles.FindByID(ctx, userID)
	if err != nil {
		logger.Warn("Profile lookup failed during gym resolution", "user_id", userID, "error", err)
		profile = nil
	}

	if profile != nil && profile.GymID > 0 {
		return profile.GymID, nil
	}

	if claims != nil && claims.GymID > 0 {
		return claims.GymID, nil
	}

	if profile != nil && profile.Name != "" {
		if gymID, err := r.gyms.FindIDByName(ctx, profile.Name); err == nil {
			return gymID, nil
		}
	}

	stored, err := r.store.Load(ctx, userID)
	if err == nil {
		if gymID, convErr := strconv.Atoi(stored); convErr == nil && gymID > 0 {
			return gymID, nil
		}
	}

	return 0, ErrGymUnresolved
}

// ResolveAndRefresh resolves the gym and writes the result back to the
// store so later sessions can fall back to it.
func (r *Resolver) ResolveAndRefresh(ctx context.Context, userID int, claims *auth.JWTClaims) (int, error) {
	gymID, err := r.Resolve(ctx, userID, claims)
	if err != nil {
		return 0, err
	}
	if saveErr := r.store.Save(ctx, userID, strconv.Itoa(gymID)); saveErr != nil {
		logger.Warn("Failed to refresh stored gym selection", "user_id", userID, "error", saveErr)
	}
	return gymID, nil
}
