// This file is part of emuscript.
//
// emuscript is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emuscript is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emuscript.  If not, see <https://www.gnu.org/licenses/>.

package colour

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/jetsetilly/emuscript/curated"
)

// Sentinal errors.
const (
	UnknownColour = "unknown colour %s"
	InvalidColour = "invalid colour"
)

// Kind is the type of value a Literal holds.
type Kind int

// List of valid Kind values.
const (
	KindNone Kind = iota
	KindString
	KindNumber
)

// Literal is a colour value as given by a script, before resolution.
type Literal struct {
	Kind   Kind
	String string
	Number uint32
}

// None is the Literal for a missing or unsupported value.
var None = Literal{}

// FromString creates a string Literal.
func FromString(s string) Literal {
	return Literal{Kind: KindString, String: s}
}

// FromNumber creates a numeric Literal. The number is in RRGGBBAA order.
func FromNumber(n uint32) Literal {
	return Literal{Kind: KindNumber, Number: n}
}

var names = map[string]uint32{
	"white":      0xffffffff,
	"black":      0x000000ff,
	"clear":      0x00000000,
	"gray":       0x7f7f7fff,
	"grey":       0x7f7f7fff,
	"red":        0xff0000ff,
	"orange":     0xff7f00ff,
	"yellow":     0xffff00ff,
	"chartreuse": 0x7fff00ff,
	"green":      0x00ff00ff,
	"teal":       0x00ff7fff,
	"cyan":       0x00ffffff,
	"blue":       0x0000ffff,
	"purple":     0x7f00ffff,
	"magenta":    0xff00ffff,
}

// Rand is the source of random colours.
type Rand interface {
	Uint32() uint32
}

// Resolver turns Literals into colours.
type Resolver struct {
	rnd Rand

	// alpha of every resolved colour is multiplied by modifier/255
	modifier int
}

// NewResolver is the preferred method of initialisation for the Resolver type.
func NewResolver(rnd Rand) *Resolver {
	return &Resolver{
		rnd:      rnd,
		modifier: 255,
	}
}

// Reset the opacity modifier to fully opaque.
func (r *Resolver) Reset() {
	r.modifier = 255
}

// Modifier returns the current opacity modifier. The value is never
// negative and may be greater than 255.
func (r *Resolver) Modifier() int {
	return r.modifier
}

// SetOpacity sets the opacity modifier. 0.0 is completely transparent and 1.0
// is opaque. Values greater than 1.0 are meaningful and increase the alpha of
// translucent colours.
func (r *Resolver) SetOpacity(opacity float64) {
	r.modifier = max(0, int(opacity*255))
}

// SetTransparency sets the opacity modifier using a strength value. 0.0 is
// opaque and 4.0 is completely transparent.
func (r *Resolver) SetTransparency(strength float64) {
	r.modifier = max(0, int((4.0-strength)/4.0*255))
}

// parse a string without reference to the opacity modifier.
func (r *Resolver) parse(s string) (uint32, bool) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, false
		}
		missing := max(0, 8-len(hex))
		c := uint32(v) << (missing * 4)
		if missing >= 2 {
			c |= 0xff
		}
		return c, true
	}

	if len(s) >= 4 && strings.EqualFold(s[:4], "rand") {
		if r.rnd == nil {
			return 0xffffffff, true
		}
		return r.rnd.Uint32()&0xffffff00 | 0xff, true
	}

	c, ok := names[strings.ToLower(s)]
	return c, ok
}

// Raw resolves the Literal to a RRGGBBAA value without applying the opacity
// modifier.
func (r *Resolver) Raw(lit Literal) (uint32, error) {
	switch lit.Kind {
	case KindString:
		if c, ok := r.parse(lit.String); ok {
			return c, nil
		}
		return 0, curated.Errorf(UnknownColour, lit.String)
	case KindNumber:
		return lit.Number, nil
	}
	return 0, curated.Errorf(InvalidColour)
}

// apply the opacity modifier and convert to a color.NRGBA.
func (r *Resolver) apply(c uint32) color.NRGBA {
	a := min(255, int(c&0xff)*r.modifier/255)
	return color.NRGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(a),
	}
}

// Resolve the Literal to a colour with the opacity modifier applied. Unknown
// names and literals of KindNone are an error.
func (r *Resolver) Resolve(lit Literal) (color.NRGBA, error) {
	c, err := r.Raw(lit)
	if err != nil {
		return color.NRGBA{}, err
	}
	return r.apply(c), nil
}

// ResolveDefault is like Resolve() except that the default value is used for
// literals that would be an error. The default is in RRGGBBAA order and has
// the opacity modifier applied to it as normal.
func (r *Resolver) ResolveDefault(lit Literal, def uint32) color.NRGBA {
	c, err := r.Raw(lit)
	if err != nil {
		c = def
	}
	return r.apply(c)
}
