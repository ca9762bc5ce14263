package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"skizen/config"
	"skizen/models"
	"skizen/repositories"
	"skizen/storage"
	"skizen/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workflow op states. Exactly one admin operation may be in flight; a call
// while busy is rejected outright instead of relying on the UI to disable
// its buttons.
const (
	stateIdle int32 = iota
	stateUpload
	stateEdit
	stateDelete
)

const defaultExt = "bin"

type UploadInput struct {
	Title       string
	Type        string
	Category    string
	Height      string
	Featured    bool
	FileName    string
	File        io.Reader
	Size        int64
	ContentType string
}

type EditInput struct {
	Title    *string
	Category *string
	Height   *string
	Featured *bool

	// Optional replacement asset. The record's type never changes; the
	// replacement is stored under the same kind namespace.
	FileName    string
	File        io.Reader
	Size        int64
	ContentType string
}

// CurationService orchestrates the admin media lifecycle: upload, edit with
// optional file replacement, and confirmed delete. Primary-path failures
// surface to the caller; thumbnail generation and superseded-asset cleanup
// are best-effort and never abort the operation.
type CurationService interface {
	Upload(ctx context.Context, actorID uint, in UploadInput) (models.DesignWork, error)
	Edit(ctx context.Context, actorID uint, workID uint, in EditInput) (models.DesignWork, error)
	Delete(ctx context.Context, actorID uint, workID uint, confirmed bool) error
	RecentUploads(ctx context.Context) ([]models.DesignWork, error)
}

type curationService struct {
	works       repositories.WorkRepository
	store       storage.Store
	thumbnailer Thumbnailer
	tempDir     string
	state       atomic.Int32
}

func NewCurationService(works repositories.WorkRepository, store storage.Store, thumbnailer Thumbnailer, tempDir string) CurationService {
	return &curationService{works: works, store: store, thumbnailer: thumbnailer, tempDir: tempDir}
}

func (s *curationService) begin(op int32) error {
	if !s.state.CompareAndSwap(stateIdle, op) {
		return newAppError(KindConflict, http.StatusConflict, "another operation is in progress", nil)
	}
	return nil
}

func (s *curationService) end() {
	s.state.Store(stateIdle)
}

func requireActor(actorID uint) error {
	if actorID == 0 {
		return newAppError(KindAuth, http.StatusUnauthorized, "authentication required", nil)
	}
	return nil
}

func (s *curationService) Upload(ctx context.Context, actorID uint, in UploadInput) (models.DesignWork, error) {
	if err := requireActor(actorID); err != nil {
		return models.DesignWork{}, err
	}
	if err := s.begin(stateUpload); err != nil {
		return models.DesignWork{}, err
	}
	defer s.end()

	title := utils.Sanitize(in.Title)
	if title == "" {
		return models.DesignWork{}, newAppError(KindValidation, http.StatusBadRequest, "title is required", nil)
	}
	if in.File == nil {
		return models.DesignWork{}, newAppError(KindValidation, http.StatusBadRequest, "please select a file", nil)
	}
	if in.Type != models.WorkTypeImage && in.Type != models.WorkTypeVideo {
		return models.DesignWork{}, newAppError(KindValidation, http.StatusBadRequest, "type must be image or video", nil)
	}
	height, err := normalizeHeight(in.Height)
	if err != nil {
		return models.DesignWork{}, err
	}
	if err := checkTypeMatchesFile(in.Type, in.FileName); err != nil {
		return models.DesignWork{}, err
	}
	if err := checkFileSize(in.Size); err != nil {
		return models.DesignWork{}, err
	}

	assetPath := freshAssetPath(in.Type, in.FileName)

	tempPath, err := s.spoolTemp(in.File)
	if err != nil {
		return models.DesignWork{}, newAppError(KindStorage, http.StatusInternalServerError, "failed to read upload", err)
	}
	defer os.Remove(tempPath)

	src, err := s.uploadFromTemp(ctx, assetPath, tempPath, in.ContentType)
	if err != nil {
		return models.DesignWork{}, newAppError(KindStorage, http.StatusInternalServerError, "file upload failed", err)
	}

	thumbnail, thumbPath := s.resolveThumbnail(ctx, in.Type, src, tempPath)

	work := models.DesignWork{
		Title:     title,
		Type:      in.Type,
		Src:       src,
		SrcPath:   assetPath,
		Thumbnail: thumbnail,
		ThumbPath: thumbPath,
		Height:    height,
		Category:  utils.Sanitize(in.Category),
		Featured:  in.Featured,
	}
	if err := s.works.Create(ctx, nil, &work); err != nil {
		// The asset already uploaded is now orphaned; accepted, not rolled back.
		utils.Sugar.Warnf("insert failed after upload, asset orphaned path=%s err=%v", assetPath, err)
		return models.DesignWork{}, newAppError(KindPersistence, http.StatusInternalServerError, "failed to save record", err)
	}

	InvalidateGalleryCache()
	return work, nil
}

func (s *curationService) Edit(ctx context.Context, actorID uint, workID uint, in EditInput) (models.DesignWork, error) {
	if err := requireActor(actorID); err != nil {
		return models.DesignWork{}, err
	}
	if err := s.begin(stateEdit); err != nil {
		return models.DesignWork{}, err
	}
	defer s.end()

	work, err := s.works.GetByID(ctx, nil, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DesignWork{}, newAppError(KindPersistence, http.StatusNotFound, "work not found", nil)
		}
		return models.DesignWork{}, newAppError(KindPersistence, http.StatusInternalServerError, "failed to load work", err)
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		title := utils.Sanitize(*in.Title)
		if title == "" {
			return models.DesignWork{}, newAppError(KindValidation, http.StatusBadRequest, "title is required", nil)
		}
		updates["title"] = title
	}
	if in.Category != nil {
		updates["category"] = utils.Sanitize(*in.Category)
	}
	if in.Height != nil {
		height, err := normalizeHeight(*in.Height)
		if err != nil {
			return models.DesignWork{}, err
		}
		updates["height"] = height
	}
	if in.Featured != nil {
		updates["featured"] = *in.Featured
	}

	if in.File != nil {
		if err := checkTypeMatchesFile(work.Type, in.FileName); err != nil {
			return models.DesignWork{}, err
		}
		if err := checkFileSize(in.Size); err != nil {
			return models.DesignWork{}, err
		}

		assetPath := freshAssetPath(work.Type, in.FileName)

		tempPath, err := s.spoolTemp(in.File)
		if err != nil {
			return models.DesignWork{}, newAppError(KindStorage, http.StatusInternalServerError, "failed to read upload", err)
		}
		defer os.Remove(tempPath)

		src, err := s.uploadFromTemp(ctx, assetPath, tempPath, in.ContentType)
		if err != nil {
			return models.DesignWork{}, newAppError(KindStorage, http.StatusInternalServerError, "file upload failed", err)
		}

		thumbnail, thumbPath := s.resolveThumbnail(ctx, work.Type, src, tempPath)

		s.removeObject(ctx, work.SrcPath, "superseded asset")
		if work.ThumbPath != "" {
			s.removeObject(ctx, work.ThumbPath, "superseded thumbnail")
		}

		updates["src"] = src
		updates["src_path"] = assetPath
		updates["thumbnail"] = thumbnail
		updates["thumb_path"] = thumbPath
	}

	if len(updates) > 0 {
		if err := s.works.UpdateByID(ctx, nil, workID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.DesignWork{}, newAppError(KindPersistence, http.StatusNotFound, "work not found", nil)
			}
			return models.DesignWork{}, newAppError(KindPersistence, http.StatusInternalServerError, "failed to save record", err)
		}
	}

	updated, err := s.works.GetByID(ctx, nil, workID)
	if err != nil {
		return models.DesignWork{}, newAppError(KindPersistence, http.StatusInternalServerError, "failed to reload work", err)
	}

	InvalidateGalleryCache()
	return updated, nil
}

func (s *curationService) Delete(ctx context.Context, actorID uint, workID uint, confirmed bool) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	if !confirmed {
		return newAppError(KindValidation, http.StatusBadRequest, "deletion requires confirmation", nil)
	}
	if err := s.begin(stateDelete); err != nil {
		return err
	}
	defer s.end()

	work, err := s.works.GetByID(ctx, nil, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(KindPersistence, http.StatusNotFound, "work not found", nil)
		}
		return newAppError(KindPersistence, http.StatusInternalServerError, "failed to load work", err)
	}

	// Asset first, row second; a failed object removal leaves an accepted
	// orphan and never blocks the row delete.
	s.removeObject(ctx, work.SrcPath, "deleted asset")
	if work.ThumbPath != "" {
		s.removeObject(ctx, work.ThumbPath, "deleted thumbnail")
	}

	if err := s.works.DeleteByID(ctx, nil, workID); err != nil {
		return newAppError(KindPersistence, http.StatusInternalServerError, "failed to delete record", err)
	}

	InvalidateGalleryCache()
	return nil
}

func (s *curationService) RecentUploads(ctx context.Context) ([]models.DesignWork, error) {
	works, err := s.works.List(ctx, nil, repositories.ListWorksInput{})
	if err != nil {
		return nil, newAppError(KindPersistence, http.StatusInternalServerError, "failed to list works", err)
	}
	return works, nil
}

// resolveThumbnail applies the per-type thumbnail policy: images reuse the
// primary asset URL, videos get a best-effort frame capture. Every failure
// on the video path degrades to "no thumbnail".
func (s *curationService) resolveThumbnail(ctx context.Context, workType, src, tempPath string) (string, string) {
	if workType == models.WorkTypeImage {
		return src, ""
	}

	data, err := s.thumbnailer.FromVideo(ctx, tempPath)
	if err != nil {
		utils.Sugar.Warnf("video thumbnail generation failed: %v", err)
		return "", ""
	}

	thumbPath := fmt.Sprintf("thumbnails/%s.jpg", uuid.NewString())
	thumbURL, err := s.store.Upload(ctx, thumbPath, bytes.NewReader(data), "image/jpeg")
	if err != nil {
		utils.Sugar.Warnf("video thumbnail upload failed: %v", err)
		return "", ""
	}
	return thumbURL, thumbPath
}

// removeObject is the best-effort storage cleanup: the result is inspected
// and deliberately discarded after logging.
func (s *curationService) removeObject(ctx context.Context, path, reason string) {
	if err := s.store.Remove(ctx, path); err != nil {
		utils.Sugar.Warnf("failed to remove %s path=%s err=%v", reason, path, err)
	}
}

func (s *curationService) spoolTemp(r io.Reader) (string, error) {
	f, err := os.CreateTemp(s.tempDir, "upload-*")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func (s *curationService) uploadFromTemp(ctx context.Context, assetPath, tempPath, contentType string) (string, error) {
	f, err := os.Open(tempPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.store.Upload(ctx, assetPath, f, contentType)
}

// freshAssetPath derives a collision-resistant storage path namespaced by
// kind, keeping the original file extension when present.
func freshAssetPath(workType, fileName string) string {
	dir := "images"
	if workType == models.WorkTypeVideo {
		dir = "videos"
	}
	return fmt.Sprintf("%s/%s.%s", dir, uuid.NewString(), fileExt(fileName))
}

func fileExt(fileName string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "" {
		return defaultExt
	}
	return ext
}

func normalizeHeight(height string) (string, error) {
	if height == "" {
		return "h-64", nil
	}
	for _, allowed := range config.AppConfig.Gallery.Heights {
		if height == allowed {
			return height, nil
		}
	}
	return "", newAppError(KindValidation, http.StatusBadRequest, "invalid height bucket", nil)
}

// checkTypeMatchesFile rejects the one clearly wrong combination: a file
// whose extension belongs to the other media kind. Unknown extensions pass.
func checkTypeMatchesFile(workType, fileName string) error {
	if workType == models.WorkTypeImage && IsVideoFile(fileName) {
		return newAppError(KindValidation, http.StatusBadRequest, "file does not match the selected type", nil)
	}
	if workType == models.WorkTypeVideo && IsImageFile(fileName) {
		return newAppError(KindValidation, http.StatusBadRequest, "file does not match the selected type", nil)
	}
	return nil
}

func checkFileSize(size int64) error {
	if size > config.AppConfig.Storage.MaxFileSize {
		return newAppError(KindValidation, http.StatusBadRequest, "file size exceeds the limit", nil)
	}
	return nil
}
