package bookmark

import "context"

// BookmarkStore is the persistence contract the service needs.
type BookmarkStore interface {
	AddFavoriteTrip(ctx context.Context, userID, tripID int64) error
	AddCuratedFavorite(ctx context.Context, userID int64, trip CuratedTrip) error
	RemoveFavoriteTrip(ctx context.Context, userID, tripID int64) error
	RemoveCuratedFavorite(ctx context.Context, userID int64, title, destination string) error
	IsTripFavorited(ctx context.Context, userID, tripID int64) (bool, error)
	Favorites(ctx context.Context, userID int64) (*Favorites, error)
	AddBookmark(ctx context.Context, userID int64, b Bookmark) error
	RemoveBookmark(ctx context.Context, userID int64, kind Kind, name, location string) error
	IsBookmarked(ctx context.Context, userID int64, kind Kind, name, location string) (bool, error)
	Bookmarks(ctx context.Context, userID int64) (*Bookmarks, error)
}

type Service struct {
	store BookmarkStore
}

func NewService(store BookmarkStore) *Service {
	return &Service{store: store}
}

func (s *Service) FavoriteTrip(ctx context.Context, userID, tripID int64) error {
	if tripID == 0 {
		return ErrBadRequest
	}
	return s.store.AddFavoriteTrip(ctx, userID, tripID)
}

func (s *Service) FavoriteCurated(ctx context.Context, userID int64, trip CuratedTrip) error {
	if trip.Title == "" || trip.Destination == "" {
		return ErrBadRequest
	}
	return s.store.AddCuratedFavorite(ctx, userID, trip)
}

func (s *Service) UnfavoriteTrip(ctx context.Context, userID, tripID int64) error {
	return s.store.RemoveFavoriteTrip(ctx, userID, tripID)
}

func (s *Service) UnfavoriteCurated(ctx context.Context, userID int64, title, destination string) error {
	return s.store.RemoveCuratedFavorite(ctx, userID, title, destination)
}

func (s *Service) IsTripFavorited(ctx context.Context, userID, tripID int64) (bool, error) {
	return s.store.IsTripFavorited(ctx, userID, tripID)
}

func (s *Service) Favorites(ctx context.Context, userID int64) (*Favorites, error) {
	return s.store.Favorites(ctx, userID)
}

func (s *Service) Add(ctx context.Context, userID int64, b Bookmark) error {
	if !b.Kind.valid() || b.Name == "" {
		return ErrBadRequest
	}
	return s.store.AddBookmark(ctx, userID, b)
}

func (s *Service) Remove(ctx context.Context, userID int64, kind Kind, name, location string) error {
	if !kind.valid() {
		return ErrBadRequest
	}
	return s.store.RemoveBookmark(ctx, userID, kind, name, location)
}

func (s *Service) IsBookmarked(ctx context.Context, userID int64, kind Kind, name, location string) (bool, error) {
	return s.store.IsBookmarked(ctx, userID, kind, name, location)
}

func (s *Service) All(ctx context.Context, userID int64) (*Bookmarks, error) {
	return s.store.Bookmarks(ctx, userID)
}
