package persian

import "strings"

// Arabic-variant code points rewritten to their Persian canonical forms.
var canonicalReplacer = strings.NewReplacer(
	"ي", "ی", // arabic yeh -> farsi yeh
	"ك", "ک", // arabic kaf -> keheh
	"ۂ", "ۀ", // heh goal with hamza -> heh with yeh above
)

// Normalize canonicalizes Arabic-script variant characters to Persian
// forms and collapses runs of whitespace to single spaces. Idempotent
// and never fails; empty input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = canonicalReplacer.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}

// ContainsPersianScript reports whether any code point falls in the
// Arabic-script Unicode blocks. The block set covers Arabic-script text
// broadly (Persian, Arabic, and cousins) since source text does not
// distinguish dialect at the code-point level.
func ContainsPersianScript(text string) bool {
	for _, r := range text {
		if isArabicScript(r) {
			return true
		}
	}
	return false
}

// Direction values for DetectDirection.
const (
	DirectionRTL = "rtl"
	DirectionLTR = "ltr"
)

// DetectDirection returns "rtl" iff the text contains Arabic-script
// code points, "ltr" otherwise.
func DetectDirection(text string) string {
	if ContainsPersianScript(text) {
		return DirectionRTL
	}
	return DirectionLTR
}

func isArabicScript(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF:
		return true
	case r >= 0x0750 && r <= 0x077F:
		return true
	case r >= 0xFB50 && r <= 0xFDFF:
		return true
	case r >= 0xFE70 && r <= 0xFEFF:
		return true
	}
	return false
}
