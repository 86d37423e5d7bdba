package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/archive-viewer/internal/archive"
	"github.com/sbilibin2017/archive-viewer/internal/logger"
	"github.com/sbilibin2017/archive-viewer/internal/models"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=archives.go -destination=mock_archives.go -package=services

// ErrUnknownCategory is returned for a category name outside tv, music, podcasts and books.
var ErrUnknownCategory = errors.New("unknown category")

// UserResolver resolves the owner of an archive.
type UserResolver interface {
	ResolveUsername(ctx context.Context, username string) (*models.User, error) // Finds a user by username
	GetUser(ctx context.Context, userID string) (*models.User, error)           // Reads a user by id
}

// ViewEventPublisher publishes archive view events.
type ViewEventPublisher interface {
	PublishViewEvent(ctx context.Context, event models.ViewEvent) error // Publishes a view event
}

// ArchiveService builds profile and category views of a user's archive.
type ArchiveService struct {
	users      UserResolver
	docs       DocumentReader
	events     ViewEventPublisher
	collection string
	loc        *time.Location
}

// NewArchiveService creates a new ArchiveService. events may be nil.
// loc is the time zone used for month grouping.
func NewArchiveService(
	users UserResolver,
	docs DocumentReader,
	events ViewEventPublisher,
	collection string,
	loc *time.Location,
) *ArchiveService {
	if loc == nil {
		loc = time.Local
	}
	return &ArchiveService{
		users:      users,
		docs:       docs,
		events:     events,
		collection: collection,
		loc:        loc,
	}
}

// GetProfile returns the user with their completed entries split into buckets.
// userID is an optional pre-resolved id that skips username resolution.
func (s *ArchiveService) GetProfile(ctx context.Context, username, userID string) (*models.ProfileResponse, error) {
	user, docs, err := s.load(ctx, username, userID)
	if err != nil {
		return nil, err
	}

	entries := archive.FilterCompleted(archive.NormalizeEntries(docs))
	archive.SortByRecency(entries)

	classified := archive.Classify(entries)
	if n := len(classified.Unclassified); n > 0 {
		logger.Log.Warnw("entries with unknown category", "userID", user.ID, "count", n)
	}

	s.publishView(ctx, models.ViewEvent{
		UserID:   user.ID,
		Username: username,
		View:     models.ViewProfile,
	})

	return &models.ProfileResponse{
		User:       *user,
		Categories: classified,
	}, nil
}

// GetCategory returns one category of a user's archive: individual entries
// grouped by month, favorites and the aggregate rail.
func (s *ArchiveService) GetCategory(ctx context.Context, username, category, userID string) (*models.CategoryResponse, error) {
	key, ok := archive.CategoryKey(category)
	if !ok {
		return nil, ErrUnknownCategory
	}
	bucket, _ := archive.BucketOf(key)

	// Stored category names vary in number and casing, so the bucket is
	// selected after normalization rather than by an equality filter.
	user, docs, err := s.load(ctx, username, userID)
	if err != nil {
		return nil, err
	}

	entries := archive.FilterCompleted(archive.InBucket(archive.NormalizeEntries(docs), bucket))
	archive.SortByRecency(entries)
	items, aggregates := archive.SplitAggregates(entries)

	resp := &models.CategoryResponse{
		User:       *user,
		Category:   bucket,
		Months:     archive.GroupByMonth(items, s.loc),
		Favorites:  archive.Favorites(items),
		Aggregates: aggregates,
	}
	if len(aggregates) > 0 {
		resp.AggregateLabel = archive.AggregateLabel(bucket)
	}

	s.publishView(ctx, models.ViewEvent{
		UserID:   user.ID,
		Username: username,
		View:     models.ViewCategory,
		Category: bucket,
	})

	return resp, nil
}

// load resolves the archive owner and queries their entries. With a
// pre-resolved userID both reads run concurrently.
func (s *ArchiveService) load(ctx context.Context, username, userID string) (*models.User, []models.Document, error) {
	if userID != "" {
		user, docs, err := s.loadByID(ctx, userID)
		if err == nil && strings.EqualFold(user.Username, username) {
			return user, docs, nil
		}
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			return nil, nil, err
		}
		logger.Log.Infow("pre-resolved user id does not match username", "username", username, "userID", userID)
	}

	user, err := s.users.ResolveUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	docs, err := s.queryEntries(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, docs, nil
}

func (s *ArchiveService) loadByID(ctx context.Context, userID string) (*models.User, []models.Document, error) {
	var (
		user *models.User
		docs []models.Document
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = s.queryEntries(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return user, docs, nil
}

func (s *ArchiveService) queryEntries(ctx context.Context, userID string) ([]models.Document, error) {
	docs, err := s.docs.Query(ctx, s.collection, models.Filter{Field: "userId", Value: userID})
	if err != nil {
		logger.Log.Errorw("failed to query entries", "userID", userID, "error", err)
		return nil, err
	}
	return docs, nil
}

// publishView publishes a view event. Failures are logged only.
func (s *ArchiveService) publishView(ctx context.Context, event models.ViewEvent) {
	if s.events == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().Unix()

	if err := s.events.PublishViewEvent(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish view event", "event_id", event.EventID, "error", err)
	}
}
