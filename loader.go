package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bodgit/sevenzip"
	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nwaples/rardecode"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	// GIF delays are in centiseconds; browsers treat 0 as ~100ms and so do we,
	// which also keeps the playback catch-up loop finite.
	defaultFrameDuration = 100 * time.Millisecond
)

// DecodeError reports that a path could not be turned into displayable frames.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func isArchiveExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".rar", ".7z":
		return true
	default:
		return false
	}
}

func isSupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".bmp", ".gif":
		return true
	default:
		return false
	}
}

// splitArchivePath splits the archive:entry encoding, e.g.
// "comics/vol1.zip:page01.png" -> ("comics/vol1.zip", "page01.png", true).
func splitArchivePath(path string) (archive, entry string, ok bool) {
	for _, ext := range []string{".zip:", ".rar:", ".7z:"} {
		if i := strings.Index(strings.ToLower(path), ext); i >= 0 {
			cut := i + len(ext) - 1
			return path[:cut], path[cut+1:], true
		}
	}
	return "", "", false
}

// listArchiveEntries returns the image entries of an archive in the
// archive:entry path encoding.
func listArchiveEntries(archivePath string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(archivePath)) {
	case ".zip":
		return listZipEntries(archivePath)
	case ".rar":
		return listRarEntries(archivePath)
	case ".7z":
		return list7zEntries(archivePath)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", filepath.Ext(archivePath))
	}
}

func listZipEntries(archivePath string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var entries []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			entries = append(entries, archivePath+":"+f.Name)
		}
	}
	return entries, nil
}

func listRarEntries(archivePath string) ([]string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	var entries []string
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !header.IsDir && isSupportedExt(header.Name) {
			entries = append(entries, archivePath+":"+header.Name)
		}
	}
	return entries, nil
}

func list7zEntries(archivePath string) ([]string, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var entries []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			entries = append(entries, archivePath+":"+f.Name)
		}
	}
	return entries, nil
}

// readImageBytes fetches the raw bytes behind a path, resolving the
// archive:entry encoding when present.
func readImageBytes(path string) ([]byte, error) {
	archive, entry, ok := splitArchivePath(path)
	if !ok {
		return os.ReadFile(path)
	}
	switch strings.ToLower(filepath.Ext(archive)) {
	case ".zip":
		return readZipEntry(archive, entry)
	case ".rar":
		return readRarEntry(archive, entry)
	case ".7z":
		return read7zEntry(archive, entry)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", filepath.Ext(archive))
	}
}

func readZipEntry(archivePath, entryPath string) ([]byte, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func readRarEntry(archivePath, entryPath string) ([]byte, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.Name == entryPath {
			return io.ReadAll(r)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func read7zEntry(archivePath, entryPath string) ([]byte, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

// Frame is one displayable bitmap with its playback duration. Static images
// decode to a single frame with zero duration.
type Frame struct {
	Image    *ebiten.Image
	Duration time.Duration
}

// Loader is the decoder collaborator. It turns a path into a sequence of
// frames and keeps an LRU cache of decoded results keyed by path so that
// revisiting a recently shown image is free. Failures are never cached.
type Loader struct {
	cache *lru.Cache[string, []Frame]
}

// NewLoader creates a Loader with the given cache capacity.
func NewLoader(cacheSize int) *Loader {
	cache, err := lru.New[string, []Frame](cacheSize)
	if err != nil {
		cache, _ = lru.New[string, []Frame](16)
	}
	return &Loader{cache: cache}
}

// Load decodes path into frames, consulting the cache first. A failure is
// reported as *DecodeError and leaves the cache untouched.
func (l *Loader) Load(path string) ([]Frame, error) {
	if frames, ok := l.cache.Get(path); ok {
		return frames, nil
	}

	data, err := readImageBytes(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	var frames []Frame
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		frames, err = decodeGIFFrames(data)
	} else {
		frames, err = decodeStaticFrame(data)
	}
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	l.cache.Add(path, frames)
	return frames, nil
}

func decodeStaticFrame(data []byte) ([]Frame, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return []Frame{{Image: ebiten.NewImageFromImage(img)}}, nil
}

// decodeGIFFrames composites every GIF frame onto the logical canvas,
// honouring per-frame disposal, so all returned frames share the display
// dimensions even when the raw frame bitmaps differ in size.
func decodeGIFFrames(data []byte) ([]Frame, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}
	bounds := image.Rect(0, 0, w, h)
	canvas := image.NewRGBA(bounds)

	frames := make([]Frame, 0, len(g.Image))
	for i, src := range g.Image {
		var before *image.RGBA
		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalPrevious {
			before = image.NewRGBA(bounds)
			copy(before.Pix, canvas.Pix)
		}

		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)

		shown := image.NewRGBA(bounds)
		copy(shown.Pix, canvas.Pix)

		d := defaultFrameDuration
		if i < len(g.Delay) && g.Delay[i] > 0 {
			d = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		frames = append(frames, Frame{Image: ebiten.NewImageFromImage(shown), Duration: d})

		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				draw.Draw(canvas, src.Bounds(), image.Transparent, image.Point{}, draw.Src)
			case gif.DisposalPrevious:
				copy(canvas.Pix, before.Pix)
			}
		}
	}
	return frames, nil
}
