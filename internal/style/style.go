// Package style gives canvas objects a CSS-like style surface.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Props maps style property names to string or numeric values.
type Props map[string]any

// Styled is anything that exposes a style surface.
type Styled interface {
	Style() *Declaration
	Refresh()
}

// Assign writes every entry of props onto the target's style surface,
// replacing any previous value for the same property. Properties that are not
// named keep their current value.
func Assign(target Styled, props Props) {
	d := target.Style()
	for name, value := range props {
		d.Set(name, formatValue(value))
	}
	target.Refresh()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// Declaration holds the raw property values of one element.
type Declaration struct {
	mu     sync.RWMutex
	values map[string]string
}

// Set stores a single property.
func (d *Declaration) Set(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.values == nil {
		d.values = make(map[string]string)
	}
	d.values[normalize(name)] = value
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Get returns the raw value of a property, or "" when it was never set.
func (d *Declaration) Get(name string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.values[normalize(name)]
}

// Len returns the number of properties set.
func (d *Declaration) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.values)
}

// Length reads a property as a length in device independent pixels.
func (d *Declaration) Length(name string) (float32, bool) {
	return ParseLength(d.Get(name))
}

// Color reads a property as a colour.
func (d *Declaration) Color(name string) (color.Color, bool) {
	return ParseColor(d.Get(name))
}

// Edges reads a 1 to 4 value shorthand such as margin.
func (d *Declaration) Edges(name string) (Edges, bool) {
	return ParseEdges(d.Get(name))
}

// Edges holds per-side lengths in top, right, bottom, left order.
type Edges struct {
	Top, Right, Bottom, Left float32
}

// ParseLength accepts unitless numbers and px values.
func ParseLength(s string) (float32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// ParseEdges follows the CSS shorthand rules for 1, 2, 3 or 4 lengths.
func ParseEdges(s string) (Edges, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Edges{}, false
	}
	v := make([]float32, len(fields))
	for i, f := range fields {
		l, ok := ParseLength(f)
		if !ok {
			return Edges{}, false
		}
		v[i] = l
	}
	switch len(v) {
	case 1:
		return Edges{v[0], v[0], v[0], v[0]}, true
	case 2:
		return Edges{v[0], v[1], v[0], v[1]}, true
	case 3:
		return Edges{v[0], v[1], v[2], v[1]}, true
	default:
		return Edges{v[0], v[1], v[2], v[3]}, true
	}
}

// ParseColor understands #rgb, #rrggbb and the CSS colour keywords.
func ParseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, false
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, false
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	if s == "transparent" {
		return color.Transparent, true
	}
	c, ok := colornames.Map[s]
	if !ok {
		return nil, false
	}
	return c, true
}

// HexString formats a colour as #rrggbb, dropping alpha.
func HexString(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
