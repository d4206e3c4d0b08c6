// pkg/render/font.go
package render

import (
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFace загружает TTF-шрифт с диска. Если файл отсутствует или
// повреждён, возвращается встроенный basicfont, чтобы игра оставалась
// работоспособной без каталога assets.
func LoadFace(path string, size float64) font.Face {
	fontData, err := os.ReadFile(path)
	if err != nil {
		log.Printf("font %s not available (%v), falling back to basicfont", path, err)
		return basicfont.Face7x13
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		log.Printf("failed to parse font %s: %v, falling back to basicfont", path, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("failed to build font face %s: %v, falling back to basicfont", path, err)
		return basicfont.Face7x13
	}
	return face
}
