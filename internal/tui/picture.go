package tui

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"thaqu/internal/viewport"
)

// picture is a decoded image plus its fit-to-canvas renditions, keyed by
// canvas size in micro-pixels.
type picture struct {
	src image.Image
	fit map[[2]int]fitted
}

type fitted struct {
	gray      *image.Gray
	threshold uint8
}

type pictureLoadedMsg struct {
	path string
	pic  *picture
	err  error
}

func newPicture(src image.Image) *picture {
	return &picture{src: src, fit: map[[2]int]fitted{}}
}

// loadPicture decodes path off the event loop.
func loadPicture(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return pictureLoadedMsg{path: path, err: err}
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return pictureLoadedMsg{path: path, err: fmt.Errorf("decode %s: %w", path, err)}
		}
		return pictureLoadedMsg{path: path, pic: newPicture(img)}
	}
}

// fitGray scales src into the largest w×h grayscale image that keeps its
// aspect ratio.
func fitGray(src image.Image, w, h int) *image.Gray {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || w <= 0 || h <= 0 {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}
	scale := math.Min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	fw := max(1, int(float64(b.Dx())*scale))
	fh := max(1, int(float64(b.Dy())*scale))
	dst := image.NewGray(image.Rect(0, 0, fw, fh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func meanLuma(g *image.Gray) uint8 {
	if len(g.Pix) == 0 {
		return 0
	}
	var sum int
	for _, p := range g.Pix {
		sum += int(p)
	}
	return uint8(sum / len(g.Pix))
}

func (p *picture) fitted(w, h int) fitted {
	k := [2]int{w, h}
	if f, ok := p.fit[k]; ok {
		return f
	}
	g := fitGray(p.src, w, h)
	f := fitted{gray: g, threshold: meanLuma(g)}
	p.fit[k] = f
	return f
}

// render draws the picture into a w×h cell braille canvas. At fit the
// image is centred; t zooms about the canvas centre and pans in cells.
// Dots mark pixels darker than the image mean.
func (p *picture) render(w, h int, t viewport.Transform) []string {
	buf := newBrailleBuf(w, h)
	mw, mh := w*2, h*4
	f := p.fitted(mw, mh)
	gw, gh := f.gray.Rect.Dx(), f.gray.Rect.Dy()
	ox, oy := (mw-gw)/2, (mh-gh)/2

	c := viewport.Point{X: float64(mw) / 2, Y: float64(mh) / 2}
	mt := t.Scaled(2, 4)
	r := coverage(mt, image.Rect(ox, oy, ox+gw, oy+gh), c, image.Rect(0, 0, mw, mh))
	for my := r.Min.Y; my < r.Max.Y; my++ {
		for mx := r.Min.X; mx < r.Max.X; mx++ {
			src := mt.Invert(viewport.Point{X: float64(mx) + 0.5, Y: float64(my) + 0.5}, c)
			ix := int(math.Floor(src.X)) - ox
			iy := int(math.Floor(src.Y)) - oy
			if ix < 0 || iy < 0 || ix >= gw || iy >= gh {
				continue
			}
			if f.gray.GrayAt(ix, iy).Y < f.threshold {
				buf.setPixel(mx, my)
			}
		}
	}
	return buf.toLines()
}

// coverage is the part of canvas that img occupies once t is applied about
// c. Pixels outside it are never inked.
func coverage(t viewport.Transform, img image.Rectangle, c viewport.Point, canvas image.Rectangle) image.Rectangle {
	lo := t.Apply(viewport.Point{X: float64(img.Min.X), Y: float64(img.Min.Y)}, c)
	hi := t.Apply(viewport.Point{X: float64(img.Max.X), Y: float64(img.Max.Y)}, c)
	r := image.Rect(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)),
	)
	return r.Intersect(canvas)
}
