package codegen

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/jafarshop/stockroom/pkg/errors"
)

const (
	idAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength       = 9
	digitAlphabet  = "0123456789"
	barcodeLength  = 12
	skuSegmentSize = 3
	orderIDPrefix  = "ORD-"
)

// RandomFunc draws size characters from alphabet.
type RandomFunc func(alphabet string, size int) (string, error)

// Generator mints record ids, order ids, SKUs and barcodes
type Generator struct {
	now    func() time.Time
	random RandomFunc
}

// Option configures a Generator
type Option func(*Generator)

// WithClock overrides the clock used for order ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithRandom overrides the random source.
func WithRandom(random RandomFunc) Option {
	return func(g *Generator) {
		g.random = random
	}
}

// NewGenerator creates a generator backed by nanoid and the wall clock
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now:    time.Now,
		random: gonanoid.Generate,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Now returns the generator's current time.
func (g *Generator) Now() time.Time {
	return g.now()
}

// NewID returns a short opaque id, unique with high probability.
func (g *Generator) NewID() (string, error) {
	id, err := g.random(idAlphabet, idLength)
	if err != nil {
		return "", &errors.ErrGeneration{What: "id", Err: err}
	}
	return id, nil
}

// NewOrderID returns "ORD-" followed by the current epoch milliseconds.
// Two orders minted within the same millisecond share an id.
func (g *Generator) NewOrderID() string {
	return fmt.Sprintf("%s%d", orderIDPrefix, g.now().UnixMilli())
}

// NewBarcode returns a 12 digit numeric string. No checksum is applied.
func (g *Generator) NewBarcode() (string, error) {
	code, err := g.random(digitAlphabet, barcodeLength)
	if err != nil {
		return "", &errors.ErrGeneration{What: "barcode", Err: err}
	}
	if len(code) != barcodeLength {
		return "", &errors.ErrGeneration{What: "barcode", Err: fmt.Errorf("got %d digits", len(code))}
	}
	return code, nil
}

// ComputeSKU builds BRD-PRO-COL-SIZE from the first three characters of
// brand, product name and color, uppercased. Size is appended verbatim.
func ComputeSKU(brand, productName, color, size string) string {
	return strings.Join([]string{
		skuSegment(brand),
		skuSegment(productName),
		skuSegment(color),
		size,
	}, "-")
}

func skuSegment(s string) string {
	runes := []rune(s)
	if len(runes) > skuSegmentSize {
		runes = runes[:skuSegmentSize]
	}
	return strings.ToUpper(string(runes))
}
