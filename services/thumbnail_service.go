package services

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"skizen/config"

	"github.com/disintegration/imaging"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".bmp": true, ".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true,
	".mkv": true, ".avi": true, ".m4v": true,
}

func IsImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return imageExtensions[ext]
}

func IsVideoFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return videoExtensions[ext]
}

// seekEpsilon keeps the seek target strictly before end-of-stream on clips
// shorter than the desired capture point.
const seekEpsilon = 0.05

// seekTarget picks the frame-capture timestamp: the desired point, clamped
// into the clip when the duration is known, the desired point as-is when it
// is not.
func seekTarget(duration, desired float64) float64 {
	if duration > 0 {
		clamped := duration - seekEpsilon
		if clamped < 0 {
			clamped = 0
		}
		if desired < clamped {
			return desired
		}
		return clamped
	}
	return desired
}

// FrameGrabber extracts a single still frame from a video file. The
// production implementation shells out to ffmpeg; tests substitute fakes.
type FrameGrabber interface {
	Duration(ctx context.Context, videoPath string) (float64, error)
	GrabFrame(ctx context.Context, videoPath string, atSeconds float64) ([]byte, error)
}

// Thumbnailer turns an uploaded video into a JPEG still. Any failure is a
// thumbnail failure: callers fall back to "no thumbnail" and proceed.
type Thumbnailer interface {
	FromVideo(ctx context.Context, videoPath string) ([]byte, error)
}

type thumbnailer struct {
	grabber FrameGrabber
}

func NewThumbnailer(grabber FrameGrabber) Thumbnailer {
	return &thumbnailer{grabber: grabber}
}

func (t *thumbnailer) FromVideo(ctx context.Context, videoPath string) ([]byte, error) {
	cfg := config.AppConfig

	// A hung probe or grab must not leave the workflow busy forever.
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Thumbnail.TimeoutSeconds)*time.Second)
	defer cancel()

	duration, err := t.grabber.Duration(ctx, videoPath)
	if err != nil {
		// Unknown duration falls back to the desired seek point.
		duration = 0
	}

	raw, err := t.grabber.GrabFrame(ctx, videoPath, seekTarget(duration, cfg.Thumbnail.SeekSeconds))
	if err != nil {
		return nil, newAppError(KindThumbnail, 0, "frame capture failed", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, newAppError(KindThumbnail, 0, "frame decode failed", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(cfg.Thumbnail.Quality)); err != nil {
		return nil, newAppError(KindThumbnail, 0, "thumbnail encode failed", err)
	}
	if buf.Len() == 0 {
		return nil, newAppError(KindThumbnail, 0, "thumbnail encode produced no data", nil)
	}

	return buf.Bytes(), nil
}

// FFmpegGrabber implements FrameGrabber with the ffmpeg/ffprobe binaries.
type FFmpegGrabber struct {
	FFmpegPath  string
	FFprobePath string
}

func NewFFmpegGrabber(cfg config.ThumbnailConfig) *FFmpegGrabber {
	return &FFmpegGrabber{FFmpegPath: cfg.FFmpegPath, FFprobePath: cfg.FFprobePath}
}

func (g *FFmpegGrabber) Duration(ctx context.Context, videoPath string) (float64, error) {
	out, err := exec.CommandContext(ctx, g.FFprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration failed: %w", err)
	}
	return duration, nil
}

func (g *FFmpegGrabber) GrabFrame(ctx context.Context, videoPath string, atSeconds float64) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, g.FFmpegPath,
		"-v", "error",
		"-ss", strconv.FormatFloat(atSeconds, 'f', 3, 64),
		"-i", videoPath,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("ffmpeg produced no frame")
	}
	return stdout.Bytes(), nil
}
