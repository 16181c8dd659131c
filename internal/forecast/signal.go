package forecast

// Signal is the ternary classification of a forecast against the last
// known close.
type Signal string

const (
	Bullish Signal = "Bullish"
	Bearish Signal = "Bearish"
	Neutral Signal = "Neutral"
)

// Classify compares a predicted close against the last actual close.
// The comparison is strict: a relative move equal to threshold is Neutral.
func Classify(predClose, lastClose, threshold float64) Signal {
	pct := (predClose - lastClose) / lastClose
	switch {
	case pct > threshold:
		return Bullish
	case pct < -threshold:
		return Bearish
	default:
		return Neutral
	}
}
