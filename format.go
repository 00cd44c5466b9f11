package axis

import "strconv"

// maxLabelLen is the longest default-formatted label kept verbatim. Longer
// strings are reformatted to labelSigDigits significant digits. This is a
// lossy display rule, not a round-trip-safe serialization.
const (
	maxLabelLen    = 5
	labelSigDigits = 3
)

// FormatLabel converts a tick position value into its display string: the
// shortest decimal representation, truncated to 3 significant digits when
// that representation exceeds 5 characters.
//
//	FormatLabel(7)          == "7"
//	FormatLabel(0.25)       == "0.25"
//	FormatLabel(3.14159265) == "3.14"
func FormatLabel(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if len(s) > maxLabelLen {
		s = strconv.FormatFloat(v, 'g', labelSigDigits, 64)
	}
	return s
}
