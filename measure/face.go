package measure

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/agiangrant/hashtags/internal/debug"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face measures text with real glyph metrics. Families "sans", "bold" and
// "mono" are preloaded with the Go fonts; others can be registered from TTF
// or OTF data. Unknown families fall back to "sans".
//
// Measuring is safe from several goroutines. The font.Face values returned
// by Face are not; drawing goroutines should each own a Face.
type Face struct {
	mu    sync.Mutex
	dpi   float64
	fonts map[string]*opentype.Font
	faces map[Font]font.Face
}

// NewFace creates a Face measurer at 72 DPI, so one point is one unit.
func NewFace() *Face {
	f := &Face{
		dpi:   72,
		fonts: make(map[string]*opentype.Font),
		faces: make(map[Font]font.Face),
	}
	// The bundled Go fonts are known-good; a parse failure is a build problem.
	for family, data := range map[string][]byte{
		"sans": goregular.TTF,
		"bold": gobold.TTF,
		"mono": gomono.TTF,
	} {
		if err := f.Register(family, data); err != nil {
			panic(fmt.Sprintf("measure: bundled font %s: %v", family, err))
		}
	}
	return f
}

var (
	defaultFace     *Face
	defaultFaceOnce sync.Once
)

// DefaultFace returns a process-wide Face with only the bundled fonts.
func DefaultFace() *Face {
	defaultFaceOnce.Do(func() {
		defaultFace = NewFace()
	})
	return defaultFace
}

// Register parses font data and makes it available as family.
// Registering an existing family replaces it.
func (f *Face) Register(family string, data []byte) error {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font %q: %w", family, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.fonts[family] = parsed
	for key, face := range f.faces {
		if key.Family == family {
			face.Close()
			delete(f.faces, key)
		}
	}
	return nil
}

// RegisterFile loads a font file and registers it as family.
func (f *Face) RegisterFile(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font %s: %w", path, err)
	}
	return f.Register(family, data)
}

// Clone returns a Face sharing the parsed fonts but with its own glyph
// faces, for a goroutine that draws.
func (f *Face) Clone() *Face {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &Face{
		dpi:   f.dpi,
		fonts: make(map[string]*opentype.Font, len(f.fonts)),
		faces: make(map[Font]font.Face),
	}
	for family, parsed := range f.fonts {
		c.fonts[family] = parsed
	}
	return c
}

// Families returns the registered family names.
func (f *Face) Families() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.fonts))
	for name := range f.fonts {
		names = append(names, name)
	}
	return names
}

// Face returns the font.Face for font, creating and caching it on first use.
func (f *Face) Face(ft Font) font.Face {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faceLocked(ft)
}

func (f *Face) faceLocked(ft Font) font.Face {
	if ft.Size <= 0 {
		ft.Size = DefaultFont.Size
	}
	if _, ok := f.fonts[ft.Family]; !ok {
		ft.Family = "sans"
	}
	if face, ok := f.faces[ft]; ok {
		return face
	}

	face, err := opentype.NewFace(f.fonts[ft.Family], &opentype.FaceOptions{
		Size:    float64(ft.Size),
		DPI:     f.dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		// Only reachable with a nonsensical size
		debug.Logf("measure: face %s: %v, using basic font", ft, err)
		return basicfont.Face7x13
	}
	f.faces[ft] = face
	return face
}

func toFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func (f *Face) lineHeight(face font.Face) float32 {
	return toFloat(face.Metrics().Height)
}

// MeasureSingleLine implements Measurer.
func (f *Face) MeasureSingleLine(text string, ft Font) (width, height float32) {
	f.mu.Lock()
	defer f.mu.Unlock()

	face := f.faceLocked(ft)
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if w := toFloat(font.MeasureString(face, line)); w > width {
			width = w
		}
	}
	return width, float32(len(lines)) * f.lineHeight(face)
}

// MeasureWrapped implements Measurer.
func (f *Face) MeasureWrapped(text string, ft Font, maxWidth float32) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	face := f.faceLocked(ft)
	lines := Wrap(text, maxWidth, func(s string) float32 {
		return toFloat(font.MeasureString(face, s))
	})
	return float32(len(lines)) * f.lineHeight(face)
}

// WrapLines wraps text the same way MeasureWrapped does and returns the lines,
// for renderers that need to draw what was measured.
func (f *Face) WrapLines(text string, ft Font, maxWidth float32) []Line {
	f.mu.Lock()
	defer f.mu.Unlock()

	face := f.faceLocked(ft)
	return Wrap(text, maxWidth, func(s string) float32 {
		return toFloat(font.MeasureString(face, s))
	})
}
