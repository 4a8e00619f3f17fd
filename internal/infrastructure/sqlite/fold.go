package sqlite

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone acentos y descarta las marcas diacríticas,
// para que "Azúcar" y "azucar" se encuentren igual en la búsqueda.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold normaliza un texto para comparación: sin acentos y en minúsculas.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// foldContains reporta si haystack contiene needle tras normalizar ambos.
func foldContains(haystack, needle string) bool {
	return strings.Contains(fold(haystack), fold(needle))
}
