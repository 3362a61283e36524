// Copyright (c) 2026 Commdominium. All rights reserved.

// Package textnorm provides accent-insensitive text matching.
//
// Resident and condominium names are Brazilian Portuguese; a search for
// "joao" must match "João". Fold strips diacritics and lowercases so both
// sides of a comparison land in the same space.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold returns the input lowercased with combining marks removed.
//
// On a transform failure the lowercased input is returned unchanged; matching
// degrades to accent-sensitive rather than erroring.
func Fold(input string) string {
	folded, _, err := transform.String(foldChain, input)
	if err != nil {
		return strings.ToLower(input)
	}
	return strings.ToLower(folded)
}

// Contains reports whether haystack contains needle, ignoring case and accents.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
