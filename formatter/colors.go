package formatter

// ANSI escapes used by the console formatter.
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorRed    = "\033[91m"
)

// ColorFor returns the ANSI color escape for a three-character level
// code. Unknown codes map to the reset sequence; the lookup never
// fails.
func ColorFor(code string) string {
	switch code {
	case "DBG":
		return colorGray
	case "INF":
		return colorGreen
	case "WRN":
		return colorYellow
	case "ERR", "CRT":
		return colorRed
	default:
		return colorReset
	}
}
