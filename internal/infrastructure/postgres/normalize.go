package postgres

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSearch lleva un texto a minúsculas sin diacríticos: "José Pérez" →
// "jose perez". Se aplica tanto a la columna search_name de customers como al
// término de búsqueda, de modo que la coincidencia es case- y acento-insensible.
func NormalizeSearch(s string) string {
	// NFD separa letra y diacrítico, Mn elimina las marcas, NFC recompone.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
