// internal/assets/image_manager.go
package assets

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"pixel-war/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// ImageManager загружает, масштабирует и кэширует изображения.
// Недоступный файл заменяется прозрачной заглушкой нужного размера.
type ImageManager struct {
	root    string
	images  map[string]*ebiten.Image
	sheets  map[string][]*ebiten.Image
	missing map[string]bool
	log     zerolog.Logger
}

// NewImageManager создает менеджер с каталогом ассетов root.
func NewImageManager(root string) *ImageManager {
	return &ImageManager{
		root:    root,
		images:  make(map[string]*ebiten.Image),
		sheets:  make(map[string][]*ebiten.Image),
		missing: make(map[string]bool),
		log:     logging.For("assets"),
	}
}

// Path строит путь к ассету; пути, уже начинающиеся с корня, не меняются.
func (m *ImageManager) Path(name string) string {
	clean := filepath.Clean(name)
	if m.root == "" || strings.HasPrefix(clean, filepath.Clean(m.root)+string(filepath.Separator)) {
		return clean
	}
	return filepath.Join(m.root, clean)
}

// Image возвращает изображение размером w×h.
func (m *ImageManager) Image(name string, w, h int) *ebiten.Image {
	key := fmt.Sprintf("%s@%dx%d", name, w, h)
	if img, ok := m.images[key]; ok {
		return img
	}
	img := m.load(name, w, h)
	m.images[key] = img
	return img
}

// SpriteSheet режет горизонтальную полосу на n кадров fw×fh.
func (m *ImageManager) SpriteSheet(name string, fw, fh, n int) []*ebiten.Image {
	key := fmt.Sprintf("%s#%dx%dx%d", name, fw, fh, n)
	if frames, ok := m.sheets[key]; ok {
		return frames
	}
	frames := make([]*ebiten.Image, 0, n)
	sheet, ok := m.read(name)
	if ok && sheet.Bounds().Dx() < fw*n {
		m.log.Warn().Str("path", name).Int("width", sheet.Bounds().Dx()).Int("frames", n).Msg("sprite sheet too narrow")
		ok = false
	}
	for i := 0; i < n; i++ {
		if !ok {
			frames = append(frames, ebiten.NewImage(fw, fh))
			continue
		}
		frames = append(frames, sheet.SubImage(image.Rect(i*fw, 0, (i+1)*fw, fh)).(*ebiten.Image))
	}
	m.sheets[key] = frames
	return frames
}

// Missing сообщает, что файл не загрузился и используется заглушка.
func (m *ImageManager) Missing(name string) bool {
	return m.missing[name]
}

func (m *ImageManager) load(name string, w, h int) *ebiten.Image {
	src, ok := m.read(name)
	if !ok {
		return ebiten.NewImage(w, h)
	}
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw == w && sh == h {
		return src
	}
	m.log.Debug().Str("path", name).Int("from_w", sw).Int("from_h", sh).Int("to_w", w).Int("to_h", h).Msg("scaling image")
	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

func (m *ImageManager) read(name string) (*ebiten.Image, bool) {
	if m.missing[name] {
		return nil, false
	}
	img, _, err := ebitenutil.NewImageFromFile(m.Path(name))
	if err != nil {
		m.log.Warn().Err(err).Str("path", name).Msg("image not loaded, using placeholder")
		m.missing[name] = true
		return nil, false
	}
	return img, true
}
