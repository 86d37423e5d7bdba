package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/archive-viewer/internal/archive"
	"github.com/sbilibin2017/archive-viewer/internal/logger"
	"github.com/sbilibin2017/archive-viewer/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=services

// Error variables
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrAmbiguousUsername = errors.New("username matches more than one user")
)

// DocumentReader defines read operations of the document store.
type DocumentReader interface {
	GetAll(ctx context.Context, collection string) ([]models.Document, error)                          // Returns every document of a collection
	Query(ctx context.Context, collection string, filters ...models.Filter) ([]models.Document, error) // Returns documents matching all equality filters
	GetByID(ctx context.Context, collection string, id string) (*models.Document, error)               // Returns a document or nil when missing
}

// UserIDCache caches resolved username lookups.
type UserIDCache interface {
	GetUserID(ctx context.Context, username string) (string, error)      // Returns the cached user id
	SetUserID(ctx context.Context, username string, userID string) error // Caches a user id
}

// UserService resolves and lists users of the user collection.
type UserService struct {
	docs       DocumentReader
	cache      UserIDCache
	collection string
}

// NewUserService creates a new UserService. cache may be nil.
func NewUserService(docs DocumentReader, cache UserIDCache, collection string) *UserService {
	return &UserService{
		docs:       docs,
		cache:      cache,
		collection: collection,
	}
}

// ListUsers returns every user sorted by username.
func (svc *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := svc.allUsers(ctx)
	if err != nil {
		return nil, err
	}
	archive.SortUsers(users)
	return users, nil
}

// SearchUsers returns the users matching query. A blank query returns no users
// without touching the store.
func (svc *UserService) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	if strings.TrimSpace(query) == "" {
		return []models.User{}, nil
	}

	users, err := svc.allUsers(ctx)
	if err != nil {
		return nil, err
	}
	return archive.SearchUsers(users, query), nil
}

// GetUser reads a single user by its internal id.
func (svc *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	doc, err := svc.docs.GetByID(ctx, svc.collection, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if doc == nil {
		return nil, ErrUserNotFound
	}

	user := archive.NormalizeUser(*doc)
	return &user, nil
}

// ResolveUsername finds the user whose username, or name as a fallback, equals
// username ignoring case. The lookup scans the whole user collection, so
// resolved ids are cached.
func (svc *UserService) ResolveUsername(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, ErrUserNotFound
	}

	if user := svc.cachedUser(ctx, username); user != nil {
		return user, nil
	}

	users, err := svc.allUsers(ctx)
	if err != nil {
		return nil, err
	}

	matches := archive.MatchUsername(users, username)
	switch len(matches) {
	case 0:
		return nil, ErrUserNotFound
	case 1:
	default:
		ids := make([]string, 0, len(matches))
		for _, u := range matches {
			ids = append(ids, u.ID)
		}
		logger.Log.Warnw("duplicate username", "username", username, "userIDs", ids)
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousUsername, username)
	}

	user := matches[0]
	if svc.cache != nil {
		if err := svc.cache.SetUserID(ctx, username, user.ID); err != nil {
			logger.Log.Errorw("failed to cache user id", "username", username, "error", err)
		}
	}
	return &user, nil
}

// cachedUser returns the cached user when the cache still points at a
// document matching username. A hit skips the duplicate check, so a second
// user taking the same username is only reported once the entry expires
// (REDIS_EXP_SECOND).
func (svc *UserService) cachedUser(ctx context.Context, username string) *models.User {
	if svc.cache == nil {
		return nil
	}

	userID, err := svc.cache.GetUserID(ctx, username)
	if err != nil {
		logger.Log.Debugw("user id cache miss", "username", username, "error", err)
		return nil
	}

	user, err := svc.GetUser(ctx, userID)
	if err != nil {
		return nil
	}
	if len(archive.MatchUsername([]models.User{*user}, username)) == 0 {
		logger.Log.Infow("stale user id cache entry", "username", username, "userID", userID)
		return nil
	}
	return user
}

func (svc *UserService) allUsers(ctx context.Context) ([]models.User, error) {
	docs, err := svc.docs.GetAll(ctx, svc.collection)
	if err != nil {
		logger.Log.Errorw("failed to get users", "collection", svc.collection, "error", err)
		return nil, err
	}
	return archive.NormalizeUsers(docs), nil
}
