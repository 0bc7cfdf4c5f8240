package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier to a comparable form:
// CamelCase is split, separators (_, -, space, .) are dropped and
// everything is lower-cased. "psFluxErr", "ps_flux_err" and "PS-FLUX-ERR"
// all normalize to "psfluxerr".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lower-case tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits on separators and case transitions:
//   - "midPointTai" -> ["mid", "Point", "Tai"]
//   - "ps1_objid" -> ["ps1", "objid"]
//   - "MJDObs" -> ["MJD", "Obs"]
func tokenizeCamelCase(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports whether runes[i] begins a new CamelCase token.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "fluxErr": lower to upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "MJDObs": last capital of an acronym followed by lower case
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
