// internal/assets/sprites.go
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNotFound возвращается, когда файла спрайта нет на диске.
// Прочие сбои (битый PNG и т.п.) приходят как обычные ошибки декодирования.
var ErrNotFound = errors.New("assets: sprite file not found")

// SpriteManager управляет загрузкой и кэшированием спрайтов.
type SpriteManager struct {
	sprites map[string]*ebiten.Image
}

// NewSpriteManager создает новый экземпляр SpriteManager.
func NewSpriteManager() *SpriteManager {
	return &SpriteManager{
		sprites: make(map[string]*ebiten.Image),
	}
}

// Load декодирует PNG по указанному пути и кэширует результат.
func (m *SpriteManager) Load(path string) (*ebiten.Image, error) {
	if img, ok := m.sprites[path]; ok {
		return img, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("assets: open sprite %s: %w", path, err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("assets: decode sprite %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	m.sprites[path] = img
	return img, nil
}

// LoadOrPlaceholder возвращает спрайт либо одноцветный квадрат, если
// спрайта нет. Отсутствующий арт не должен ронять игру.
func (m *SpriteManager) LoadOrPlaceholder(path string, size int, fill color.Color) *ebiten.Image {
	if path != "" {
		img, err := m.Load(path)
		if err == nil {
			return img
		}
		log.Printf("sprite %s unavailable: %v", path, err)
	}

	key := fmt.Sprintf("placeholder:%d:%v", size, fill)
	if img, ok := m.sprites[key]; ok {
		return img
	}
	img := ebiten.NewImage(size, size)
	img.Fill(fill)
	m.sprites[key] = img
	return img
}
