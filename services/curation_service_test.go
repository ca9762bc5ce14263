package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"skizen/config"
	"skizen/models"
	"skizen/repositories"

	"gorm.io/gorm"
)

func setTestConfig() {
	config.AppConfig = &config.Config{
		Storage: config.StorageConfig{
			MaxFileSize:   10 * 1024 * 1024,
			PublicBaseURL: "/media",
		},
		Gallery: config.GalleryConfig{
			Heights:         []string{"h-48", "h-64", "h-80", "h-96"},
			CacheTTLSeconds: 60,
			FeaturedLimit:   8,
		},
		Thumbnail: config.ThumbnailConfig{
			SeekSeconds:    1.5,
			TimeoutSeconds: 5,
			Quality:        85,
		},
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpireHours: 1,
		},
	}
}

type fakeWorkRepo struct {
	works  map[uint]models.DesignWork
	order  []uint
	nextID uint

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls   int
	createCalls int
	getCalls    int
	updateCalls int
	deleteCalls int
}

func newFakeWorkRepo() *fakeWorkRepo {
	return &fakeWorkRepo{works: map[uint]models.DesignWork{}, nextID: 1}
}

func (r *fakeWorkRepo) List(_ context.Context, _ *gorm.DB, in repositories.ListWorksInput) ([]models.DesignWork, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.DesignWork, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		work := r.works[r.order[i]]
		if in.FeaturedOnly && !work.Featured {
			continue
		}
		out = append(out, work)
		if in.Limit > 0 && len(out) == in.Limit {
			break
		}
	}
	return out, nil
}

func (r *fakeWorkRepo) GetByID(_ context.Context, _ *gorm.DB, workID uint) (models.DesignWork, error) {
	r.getCalls++
	work, ok := r.works[workID]
	if !ok {
		return models.DesignWork{}, gorm.ErrRecordNotFound
	}
	return work, nil
}

func (r *fakeWorkRepo) Create(_ context.Context, _ *gorm.DB, work *models.DesignWork) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	if work.ID == 0 {
		work.ID = r.nextID
		r.nextID++
	}
	work.CreatedAt = time.Now()
	r.works[work.ID] = *work
	r.order = append(r.order, work.ID)
	return nil
}

func (r *fakeWorkRepo) UpdateByID(_ context.Context, _ *gorm.DB, workID uint, updates map[string]interface{}) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	work, ok := r.works[workID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["title"]; ok {
		work.Title = v.(string)
	}
	if v, ok := updates["category"]; ok {
		work.Category = v.(string)
	}
	if v, ok := updates["height"]; ok {
		work.Height = v.(string)
	}
	if v, ok := updates["featured"]; ok {
		work.Featured = v.(bool)
	}
	if v, ok := updates["src"]; ok {
		work.Src = v.(string)
	}
	if v, ok := updates["src_path"]; ok {
		work.SrcPath = v.(string)
	}
	if v, ok := updates["thumbnail"]; ok {
		work.Thumbnail = v.(string)
	}
	if v, ok := updates["thumb_path"]; ok {
		work.ThumbPath = v.(string)
	}
	r.works[workID] = work
	return nil
}

func (r *fakeWorkRepo) DeleteByID(_ context.Context, _ *gorm.DB, workID uint) error {
	r.deleteCalls++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.works, workID)
	for i, id := range r.order {
		if id == workID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeStore struct {
	uploads   []string
	removed   []string
	uploadErr error
	removeErr error
}

func (s *fakeStore) Upload(_ context.Context, path string, _ io.Reader, _ string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploads = append(s.uploads, path)
	return s.PublicURL(path), nil
}

func (s *fakeStore) PublicURL(path string) string {
	return "https://cdn.test/" + path
}

func (s *fakeStore) Remove(_ context.Context, path string) error {
	s.removed = append(s.removed, path)
	return s.removeErr
}

func (s *fakeStore) removeCount(path string) int {
	count := 0
	for _, p := range s.removed {
		if p == path {
			count++
		}
	}
	return count
}

type fakeThumbnailer struct {
	data  []byte
	err   error
	calls int
}

func (t *fakeThumbnailer) FromVideo(context.Context, string) ([]byte, error) {
	t.calls++
	if t.err != nil {
		return nil, t.err
	}
	return t.data, nil
}

func newCurationFixture(t *testing.T) (*curationService, *fakeWorkRepo, *fakeStore, *fakeThumbnailer) {
	t.Helper()
	setTestConfig()
	works := newFakeWorkRepo()
	store := &fakeStore{}
	thumbs := &fakeThumbnailer{data: []byte("jpeg-bytes")}
	svc := NewCurationService(works, store, thumbs, t.TempDir()).(*curationService)
	return svc, works, store, thumbs
}

func TestUploadImageThenFeaturedList(t *testing.T) {
	svc, works, _, _ := newCurationFixture(t)

	work, err := svc.Upload(context.Background(), 1, UploadInput{
		Title:    "Naveen Reddy",
		Type:     models.WorkTypeImage,
		Category: "Portrait Design",
		Height:   "h-64",
		Featured: true,
		FileName: "naveen.png",
		File:     bytes.NewReader([]byte("png-bytes")),
		Size:     9,
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if work.Thumbnail != work.Src {
		t.Fatalf("image thumbnail should equal src, got thumbnail=%q src=%q", work.Thumbnail, work.Src)
	}
	if !strings.HasPrefix(work.SrcPath, "images/") {
		t.Fatalf("expected asset under images/, got %s", work.SrcPath)
	}
	if !strings.HasSuffix(work.SrcPath, ".png") {
		t.Fatalf("expected original extension kept, got %s", work.SrcPath)
	}

	gallery := NewGalleryService(works)
	featured := gallery.FetchFeatured(context.Background(), 5)
	if len(featured) != 1 {
		t.Fatalf("expected 1 featured work, got %d", len(featured))
	}
	got := featured[0]
	if got.Title != "Naveen Reddy" || got.Category != "Portrait Design" {
		t.Fatalf("unexpected featured view: %+v", got)
	}
	if got.Display != work.Src {
		t.Fatalf("expected display %q, got %q", work.Src, got.Display)
	}
}

func TestUploadVideoThumbnailFallback(t *testing.T) {
	svc, works, store, thumbs := newCurationFixture(t)
	thumbs.err = errors.New("seek never resolved")

	work, err := svc.Upload(context.Background(), 1, UploadInput{
		Title:    "Showreel",
		Type:     models.WorkTypeVideo,
		Category: "Poster Design",
		FileName: "reel.mp4",
		File:     bytes.NewReader([]byte("mp4-bytes")),
		Size:     9,
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if work.Thumbnail != "" || work.ThumbPath != "" {
		t.Fatalf("expected no thumbnail after generation failure, got %q", work.Thumbnail)
	}
	if works.createCalls != 1 {
		t.Fatalf("expected row insert despite thumbnail failure, got %d creates", works.createCalls)
	}
	if len(store.uploads) != 1 {
		t.Fatalf("expected only the asset upload, got %v", store.uploads)
	}
}

func TestUploadVideoStoresGeneratedThumbnail(t *testing.T) {
	svc, _, store, thumbs := newCurationFixture(t)

	work, err := svc.Upload(context.Background(), 1, UploadInput{
		Title:    "Showreel",
		Type:     models.WorkTypeVideo,
		FileName: "reel.mp4",
		File:     bytes.NewReader([]byte("mp4-bytes")),
		Size:     9,
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if thumbs.calls != 1 {
		t.Fatalf("expected one thumbnail generation, got %d", thumbs.calls)
	}
	if !strings.HasPrefix(work.ThumbPath, "thumbnails/") || !strings.HasSuffix(work.ThumbPath, ".jpg") {
		t.Fatalf("unexpected thumbnail path %s", work.ThumbPath)
	}
	if len(store.uploads) != 2 {
		t.Fatalf("expected asset + thumbnail uploads, got %v", store.uploads)
	}
}

func TestUploadStorageFailureAbortsInsert(t *testing.T) {
	svc, works, store, _ := newCurationFixture(t)
	store.uploadErr = errors.New("quota exceeded")

	_, err := svc.Upload(context.Background(), 1, UploadInput{
		Title:    "Poster",
		Type:     models.WorkTypeImage,
		FileName: "poster.jpg",
		File:     bytes.NewReader([]byte("jpg-bytes")),
		Size:     9,
	})
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind != KindStorage {
		t.Fatalf("expected storage failure, got %v", err)
	}
	if works.createCalls != 0 {
		t.Fatalf("expected no insert after upload failure, got %d creates", works.createCalls)
	}
}

func TestDeleteToleratesRemoveFailure(t *testing.T) {
	svc, works, store, _ := newCurationFixture(t)

	work, err := svc.Upload(context.Background(), 1, UploadInput{
		Title:    "Poster",
		Type:     models.WorkTypeImage,
		FileName: "poster.jpg",
		File:     bytes.NewReader([]byte("jpg-bytes")),
		Size:     9,
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	store.removeErr = errors.New("permission denied")
	if err := svc.Delete(context.Background(), 1, work.ID, true); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	gallery := NewGalleryService(works)
	for _, view := range gallery.FetchAll(context.Background()) {
		if view.ID == work.ID {
			t.Fatalf("deleted work %d still listed", work.ID)
		}
	}
}

func TestEditReplaceFileSwapsAsset(t *testing.T) {
	svc, _, store, _ := newCurationFixture(t)

	work, err := svc.Upload(context.Background(), 1, UploadInput{
		Title:    "Poster",
		Type:     models.WorkTypeImage,
		FileName: "poster.jpg",
		File:     bytes.NewReader([]byte("jpg-bytes")),
		Size:     9,
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	oldSrc := work.Src
	oldPath := work.SrcPath

	updated, err := svc.Edit(context.Background(), 1, work.ID, EditInput{
		FileName: "replacement.png",
		File:     bytes.NewReader([]byte("new-bytes")),
		Size:     9,
	})
	if err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}
	if updated.Src == oldSrc {
		t.Fatalf("expected replacement to change src, still %s", updated.Src)
	}
	if updated.Type != models.WorkTypeImage {
		t.Fatalf("replace must not change type, got %s", updated.Type)
	}
	if count := store.removeCount(oldPath); count != 1 {
		t.Fatalf("expected exactly one removal of %s, got %d", oldPath, count)
	}
}

func TestEditMetadataOnly(t *testing.T) {
	svc, _, store, _ := newCurationFixture(t)

	work, err := svc.Upload(context.Background(), 1, UploadInput{
		Title:    "Poster",
		Type:     models.WorkTypeImage,
		Category: "Poster Design",
		FileName: "poster.jpg",
		File:     bytes.NewReader([]byte("jpg-bytes")),
		Size:     9,
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	title := "Poster v2"
	featured := true
	updated, err := svc.Edit(context.Background(), 1, work.ID, EditInput{Title: &title, Featured: &featured})
	if err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}
	if updated.Title != "Poster v2" || !updated.Featured {
		t.Fatalf("metadata not applied: %+v", updated)
	}
	if updated.Src != work.Src {
		t.Fatalf("metadata edit must not touch the asset, src changed to %s", updated.Src)
	}
	if len(store.removed) != 0 {
		t.Fatalf("metadata edit must not remove objects, removed %v", store.removed)
	}
}

func TestUnauthenticatedGate(t *testing.T) {
	svc, works, store, _ := newCurationFixture(t)

	if _, err := svc.Upload(context.Background(), 0, UploadInput{
		Title:    "Poster",
		Type:     models.WorkTypeImage,
		FileName: "poster.jpg",
		File:     bytes.NewReader([]byte("jpg-bytes")),
	}); err == nil {
		t.Fatal("expected upload rejection without session")
	}
	if _, err := svc.Edit(context.Background(), 0, 1, EditInput{}); err == nil {
		t.Fatal("expected edit rejection without session")
	}
	if err := svc.Delete(context.Background(), 0, 1, true); err == nil {
		t.Fatal("expected delete rejection without session")
	}

	if works.createCalls != 0 || works.getCalls != 0 || works.updateCalls != 0 || works.deleteCalls != 0 {
		t.Fatalf("repository touched without session: %+v", works)
	}
	if len(store.uploads) != 0 || len(store.removed) != 0 {
		t.Fatal("storage touched without session")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	svc, works, store, _ := newCurationFixture(t)

	err := svc.Delete(context.Background(), 1, 42, false)
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind != KindValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if works.getCalls != 0 || works.deleteCalls != 0 || len(store.removed) != 0 {
		t.Fatal("delete side effects before confirmation")
	}
}

func TestBusyWorkflowRejectsSecondOperation(t *testing.T) {
	svc, works, _, _ := newCurationFixture(t)

	svc.state.Store(stateUpload)
	defer svc.state.Store(stateIdle)

	err := svc.Delete(context.Background(), 1, 42, true)
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind != KindConflict {
		t.Fatalf("expected conflict while busy, got %v", err)
	}
	if works.deleteCalls != 0 {
		t.Fatal("busy workflow still reached the repository")
	}
}

func TestUploadRejectsMismatchedFile(t *testing.T) {
	svc, works, _, _ := newCurationFixture(t)

	_, err := svc.Upload(context.Background(), 1, UploadInput{
		Title:    "Poster",
		Type:     models.WorkTypeImage,
		FileName: "clip.mp4",
		File:     bytes.NewReader([]byte("mp4-bytes")),
		Size:     9,
	})
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind != KindValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if works.createCalls != 0 {
		t.Fatal("mismatched upload reached the repository")
	}
}
