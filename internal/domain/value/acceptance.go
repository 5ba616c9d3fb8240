package value

// AcceptanceChance is the likelihood that a seller accepts a counter-offer.
type AcceptanceChance string

const (
	AcceptanceHigh   AcceptanceChance = "High"
	AcceptanceMedium AcceptanceChance = "Medium"
	AcceptanceLow    AcceptanceChance = "Low"
)

func (a AcceptanceChance) String() string {
	return string(a)
}

// Band returns the display band of the chance.
func (a AcceptanceChance) Band() Band {
	switch a {
	case AcceptanceHigh:
		return BandGreen
	case AcceptanceMedium:
		return BandYellow
	default:
		return BandRed
	}
}

type Band string

const (
	BandGreen  Band = "green"
	BandYellow Band = "yellow"
	BandRed    Band = "red"
)

func (b Band) String() string {
	return string(b)
}

const (
	DefaultHighThreshold   = 85.0
	DefaultMediumThreshold = 80.0
)

// Thresholds are lower bounds, in percent of the asking price, of the High and
// Medium acceptance chances. Both bounds are inclusive.
type Thresholds struct {
	High   float64
	Medium float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		High:   DefaultHighThreshold,
		Medium: DefaultMediumThreshold,
	}
}

func (t Thresholds) Classify(percentOfOriginal float64) AcceptanceChance {
	switch {
	case percentOfOriginal >= t.High:
		return AcceptanceHigh
	case percentOfOriginal >= t.Medium:
		return AcceptanceMedium
	default:
		return AcceptanceLow
	}
}
