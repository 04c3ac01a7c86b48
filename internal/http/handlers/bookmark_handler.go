package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adiraj90/Ai-trip-planner/internal/modules/bookmark"
)

type BookmarkHandler struct {
	bookmarks *bookmark.Service
}

func NewBookmarkHandler(bookmarks *bookmark.Service) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

func writeBookmarkError(c *gin.Context, err error) {
	if errors.Is(err, bookmark.ErrBadRequest) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}

type favoriteReq struct {
	TripID      int64           `json:"trip_id"`
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	Payload     json.RawMessage `json:"payload"`
}

// AddFavorite handles POST /api/users/:id/favorites. A trip_id favorites a
// saved trip; title plus destination favorites a curated card.
func (h *BookmarkHandler) AddFavorite(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req favoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	var err error
	if req.TripID != 0 {
		err = h.bookmarks.FavoriteTrip(c.Request.Context(), userID, req.TripID)
	} else {
		err = h.bookmarks.FavoriteCurated(c.Request.Context(), userID, bookmark.CuratedTrip{
			Title:       req.Title,
			Destination: req.Destination,
			Payload:     req.Payload,
		})
	}
	if err != nil {
		writeBookmarkError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /api/users/:id/favorites.
func (h *BookmarkHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req favoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	var err error
	if req.TripID != 0 {
		err = h.bookmarks.UnfavoriteTrip(c.Request.Context(), userID, req.TripID)
	} else {
		err = h.bookmarks.UnfavoriteCurated(c.Request.Context(), userID, req.Title, req.Destination)
	}
	if err != nil {
		writeBookmarkError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Favorites handles GET /api/users/:id/favorites.
func (h *BookmarkHandler) Favorites(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	favs, err := h.bookmarks.Favorites(c.Request.Context(), userID)
	if err != nil {
		writeBookmarkError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, favs)
}

type bookmarkReq struct {
	Kind     bookmark.Kind   `json:"item_type"`
	Name     string          `json:"name"`
	Location string          `json:"location"`
	City     string          `json:"city"`
	Country  string          `json:"country"`
	Payload  json.RawMessage `json:"payload"`
}

// AddBookmark handles POST /api/users/:id/bookmarks.
func (h *BookmarkHandler) AddBookmark(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req bookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.bookmarks.Add(c.Request.Context(), userID, bookmark.Bookmark{
		Kind:     req.Kind,
		Name:     req.Name,
		Location: req.Location,
		City:     req.City,
		Country:  req.Country,
		Payload:  req.Payload,
	})
	if err != nil {
		writeBookmarkError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveBookmark handles DELETE /api/users/:id/bookmarks.
func (h *BookmarkHandler) RemoveBookmark(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req bookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.bookmarks.Remove(c.Request.Context(), userID, req.Kind, req.Name, req.Location); err != nil {
		writeBookmarkError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Bookmarks handles GET /api/users/:id/bookmarks.
func (h *BookmarkHandler) Bookmarks(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	marks, err := h.bookmarks.All(c.Request.Context(), userID)
	if err != nil {
		writeBookmarkError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, marks)
}
