package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"

	"github.com/disintegration/imaging"
)

var _ output.ArtifactStore = (*FileStore)(nil)

var ErrEmptyScreenshot = errors.New("screenshot has no data")

// FileStore writes screenshots as PNG files named <name>_<20060102_150405>.png.
type FileStore struct {
	dir string
	now func() time.Time

	mu sync.Mutex
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = filepath.Join("test-output", "screenshots")
	}
	return &FileStore{dir: dir, now: time.Now}
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) SaveScreenshot(name string, shot *entity.Screenshot) (string, error) {
	if shot == nil || len(shot.Data) == 0 {
		return "", ErrEmptyScreenshot
	}

	img, err := imaging.Decode(bytes.NewReader(shot.Data))
	if err != nil {
		return "", fmt.Errorf("decode screenshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}

	path := s.uniquePath(fmt.Sprintf("%s_%s", fileName(name), s.now().Format("20060102_150405")))
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("save screenshot: %w", err)
	}
	return path, nil
}

// uniquePath appends a counter when two captures land in the same second.
func (s *FileStore) uniquePath(base string) string {
	path := filepath.Join(s.dir, base+".png")
	for i := 1; ; i++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path
		}
		path = filepath.Join(s.dir, fmt.Sprintf("%s_%d.png", base, i))
	}
}

func fileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "screenshot"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
