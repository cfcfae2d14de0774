package rain

import (
	"fmt"
	"math/rand"
	"sort"
)

// Named symbol sets a strand can draw its characters from.
var charsets = map[string][]rune{
	"matrix":  []rune("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ0123456789"),
	"ascii":   []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"),
	"binary":  []rune("01"),
	"hex":     []rune("0123456789ABCDEF"),
	"greek":   []rune("αβγδεζηθικλμνξοπρστυφχψω"),
	"symbols": []rune("!@#$%^&*()_+-=[]{}|;:,./<>?"),
}

// Charset resolves a named symbol set.
func Charset(name string) ([]rune, error) {
	set, ok := charsets[name]
	if !ok {
		return nil, fmt.Errorf("unknown charset: %s (available: %v)", name, CharsetNames())
	}
	return set, nil
}

// CharsetNames returns the available charset names, sorted.
func CharsetNames() []string {
	names := make([]string, 0, len(charsets))
	for name := range charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SymbolGen produces random symbols from a fixed set.
type SymbolGen struct {
	set []rune
	rng *rand.Rand
}

func NewSymbolGen(set []rune, rng *rand.Rand) (*SymbolGen, error) {
	if len(set) == 0 {
		return nil, fmt.Errorf("symbol set cannot be empty")
	}
	return &SymbolGen{set: set, rng: rng}, nil
}

func (g *SymbolGen) Next() rune {
	return g.set[g.rng.Intn(len(g.set))]
}

// Fill overwrites dst with fresh random symbols.
func (g *SymbolGen) Fill(dst []rune) {
	for i := range dst {
		dst[i] = g.Next()
	}
}
