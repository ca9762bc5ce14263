package services

import (
	"context"
	"errors"
	"testing"

	"skizen/models"
	"skizen/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func seedWorks(t *testing.T, repo *fakeWorkRepo, works ...models.DesignWork) {
	t.Helper()
	for i := range works {
		if err := repo.Create(context.Background(), nil, &works[i]); err != nil {
			t.Fatalf("seed work: %v", err)
		}
	}
}

func TestFetchAllFallbackOnReadFailure(t *testing.T) {
	setTestConfig()
	repo := newFakeWorkRepo()
	repo.listErr = errors.New("connection refused")
	gallery := NewGalleryService(repo)

	views := gallery.FetchAll(context.Background())
	if len(views) != 12 {
		t.Fatalf("expected 12 fallback works, got %d", len(views))
	}
	for _, view := range views {
		if view.Display == "" || view.Category == "" {
			t.Fatalf("fallback view missing fields: %+v", view)
		}
	}
}

func TestFetchFeaturedFallbackRespectsLimit(t *testing.T) {
	setTestConfig()
	repo := newFakeWorkRepo()
	repo.listErr = errors.New("connection refused")
	gallery := NewGalleryService(repo)

	views := gallery.FetchFeatured(context.Background(), 2)
	if len(views) != 2 {
		t.Fatalf("expected fallback trimmed to 2, got %d", len(views))
	}
}

func TestFetchAllViewMapping(t *testing.T) {
	setTestConfig()
	repo := newFakeWorkRepo()
	seedWorks(t, repo,
		models.DesignWork{Title: "Reel", Type: models.WorkTypeVideo, Src: "/media/videos/a.mp4", Thumbnail: "/media/thumbnails/a.jpg", Height: "h-64"},
		models.DesignWork{Title: "Poster", Type: models.WorkTypeImage, Src: "/media/images/b.png", Height: "h-80"},
	)
	gallery := NewGalleryService(repo)

	views := gallery.FetchAll(context.Background())
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	// Newest first.
	if views[0].Title != "Poster" || views[1].Title != "Reel" {
		t.Fatalf("unexpected order: %s, %s", views[0].Title, views[1].Title)
	}
	if views[0].Display != "/media/images/b.png" {
		t.Fatalf("image without thumbnail should display src, got %s", views[0].Display)
	}
	if views[1].Display != "/media/thumbnails/a.jpg" {
		t.Fatalf("video should display its thumbnail, got %s", views[1].Display)
	}
	if views[0].Category != CategoryOther {
		t.Fatalf("empty category should map to %q, got %q", CategoryOther, views[0].Category)
	}
}

func TestFetchAllServesCachedFeed(t *testing.T) {
	setTestConfig()
	mr := miniredis.RunT(t)
	utils.SetRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer utils.SetRedis(nil)

	repo := newFakeWorkRepo()
	seedWorks(t, repo, models.DesignWork{Title: "Poster", Type: models.WorkTypeImage, Src: "/media/images/a.png"})
	gallery := NewGalleryService(repo)

	first := gallery.FetchAll(context.Background())
	if len(first) != 1 {
		t.Fatalf("expected 1 view, got %d", len(first))
	}

	// A later repository failure is invisible while the cache holds the feed.
	repo.listErr = errors.New("connection refused")
	second := gallery.FetchAll(context.Background())
	if len(second) != 1 || second[0].Title != "Poster" {
		t.Fatalf("expected cached feed, got %+v", second)
	}

	InvalidateGalleryCache()
	third := gallery.FetchAll(context.Background())
	if len(third) != 12 {
		t.Fatalf("expected fallback after invalidation, got %d views", len(third))
	}
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	views := []WorkView{
		{Category: "Poster Design"},
		{Category: "Branding"},
		{Category: "Poster Design"},
		{Category: "Social Media"},
	}
	got := Categories(views)
	want := []string{"All", "Poster Design", "Branding", "Social Media"}
	if len(got) != len(want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories = %v, want %v", got, want)
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	views := []WorkView{
		{ID: 1, Category: "Branding"},
		{ID: 2, Category: "Poster Design"},
		{ID: 3, Category: "Branding"},
	}

	all := FilterByCategory(views, CategoryAll)
	if len(all) != 3 || all[0].ID != 1 || all[2].ID != 3 {
		t.Fatalf("All filter changed the set: %+v", all)
	}

	branding := FilterByCategory(views, "Branding")
	if len(branding) != 2 || branding[0].ID != 1 || branding[1].ID != 3 {
		t.Fatalf("unexpected Branding subset: %+v", branding)
	}

	if got := FilterByCategory(views, "Illustrations"); len(got) != 0 {
		t.Fatalf("absent category should yield empty set, got %+v", got)
	}

	// The input is untouched.
	if len(views) != 3 || views[1].ID != 2 {
		t.Fatalf("filter mutated its input: %+v", views)
	}
}
