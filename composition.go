package passcheck

import "unicode"

// AnalyzeComposition reports which character classes password uses.
//
// Classification is ASCII oriented: A-Z, a-z and 0-9 are upper, lower and
// digit. Letters and digits outside ASCII, and control characters, belong to
// no class. Any other rune, including space and non-ASCII symbols, is a
// symbol.
func AnalyzeComposition(password string) Composition {
	var c Composition
	for _, r := range password {
		switch classOf(r) {
		case classUpper:
			c.HasUpper = true
		case classLower:
			c.HasLower = true
		case classDigit:
			c.HasDigit = true
		case classSymbol:
			c.HasSymbol = true
		}
	}
	return c
}

type charClass int

const (
	classNone charClass = iota
	classUpper
	classLower
	classDigit
	classSymbol
)

func classOf(r rune) charClass {
	switch {
	case r >= 'A' && r <= 'Z':
		return classUpper
	case r >= 'a' && r <= 'z':
		return classLower
	case r >= '0' && r <= '9':
		return classDigit
	case unicode.IsControl(r), unicode.IsLetter(r), unicode.IsDigit(r):
		return classNone
	default:
		return classSymbol
	}
}
