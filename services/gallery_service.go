package services

import (
	"context"
	"encoding/json"
	"time"

	"skizen/config"
	"skizen/models"
	"skizen/repositories"
	"skizen/utils"
)

const (
	galleryCachePrefix = "gallery:"
	galleryCacheKeyAll = galleryCachePrefix + "all"

	// CategoryAll is the pseudo-category matching every work.
	CategoryAll = "All"
	// CategoryOther labels works whose category is empty.
	CategoryOther = "Other"
)

// WorkView is the render-ready projection of a DesignWork. Display resolves
// to the thumbnail when one exists, otherwise the primary asset.
type WorkView struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Display  string `json:"display"`
	Src      string `json:"src"`
	Category string `json:"category"`
	Height   string `json:"height"`
	Featured bool   `json:"featured"`
}

// GalleryService is the public read side. It never returns an error: a
// failed read degrades to a fixed fallback set so the gallery page always
// renders something.
type GalleryService interface {
	FetchAll(ctx context.Context) []WorkView
	FetchFeatured(ctx context.Context, limit int) []WorkView
}

type galleryService struct {
	works repositories.WorkRepository
}

func NewGalleryService(works repositories.WorkRepository) GalleryService {
	return &galleryService{works: works}
}

func (s *galleryService) FetchAll(ctx context.Context) []WorkView {
	if b, ok := utils.CacheGetBytes(galleryCacheKeyAll); ok {
		var cached []WorkView
		if err := json.Unmarshal(b, &cached); err == nil {
			return cached
		}
	}

	rows, err := s.works.List(ctx, nil, repositories.ListWorksInput{})
	if err != nil {
		utils.Sugar.Warnf("gallery read failed, serving fallback works: %v", err)
		return fallbackWorks()
	}

	views := toWorkViews(rows)
	utils.CacheSetJSON(galleryCacheKeyAll, views, time.Duration(config.AppConfig.Gallery.CacheTTLSeconds)*time.Second)
	return views
}

func (s *galleryService) FetchFeatured(ctx context.Context, limit int) []WorkView {
	if limit <= 0 {
		limit = config.AppConfig.Gallery.FeaturedLimit
	}

	rows, err := s.works.List(ctx, nil, repositories.ListWorksInput{FeaturedOnly: true, Limit: limit})
	if err != nil {
		utils.Sugar.Warnf("featured read failed, serving fallback works: %v", err)
		fallback := fallbackFeaturedWorks()
		if len(fallback) > limit {
			fallback = fallback[:limit]
		}
		return fallback
	}

	return toWorkViews(rows)
}

// InvalidateGalleryCache drops every cached feed projection. Called after
// each successful admin mutation.
func InvalidateGalleryCache() {
	utils.InvalidateByPrefix(galleryCachePrefix)
}

func toWorkViews(rows []models.DesignWork) []WorkView {
	views := make([]WorkView, 0, len(rows))
	for _, row := range rows {
		display := row.Thumbnail
		if display == "" {
			display = row.Src
		}
		category := row.Category
		if category == "" {
			category = CategoryOther
		}
		views = append(views, WorkView{
			ID:       row.ID,
			Title:    row.Title,
			Type:     row.Type,
			Display:  display,
			Src:      row.Src,
			Category: category,
			Height:   row.Height,
			Featured: row.Featured,
		})
	}
	return views
}

// Categories returns the distinct categories present, in first-appearance
// order, with the "All" pseudo-category prepended.
func Categories(works []WorkView) []string {
	out := []string{CategoryAll}
	seen := map[string]bool{}
	for _, work := range works {
		if work.Category == "" || seen[work.Category] {
			continue
		}
		seen[work.Category] = true
		out = append(out, work.Category)
	}
	return out
}

// FilterByCategory is a pure predicate over an already-fetched set. "All"
// returns the input unchanged, order preserved.
func FilterByCategory(works []WorkView, category string) []WorkView {
	if category == CategoryAll || category == "" {
		return works
	}
	out := make([]WorkView, 0, len(works))
	for _, work := range works {
		if work.Category == category {
			out = append(out, work)
		}
	}
	return out
}
