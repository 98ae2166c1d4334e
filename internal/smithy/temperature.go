package smithy

// Band classifies a temperature relative to a material's working range.
type Band int

const (
	Under Band = iota
	Perfect
	Over
)

func (b Band) String() string {
	switch b {
	case Under:
		return "Under"
	case Perfect:
		return "Perfect"
	case Over:
		return "Over"
	default:
		return "Unknown"
	}
}

// Multiplier is the payout factor applied to anvil points.
// Under never pays; the anvil refuses such items.
func (b Band) Multiplier() float64 {
	switch b {
	case Perfect:
		return 1.5
	case Over:
		return 1.0
	default:
		return 0
	}
}

// Range is the inclusive Perfect band of a material.
type Range struct {
	Low, High int
}

// PerfectRange returns the working range of the material.
func (m Material) PerfectRange() Range {
	switch m {
	case Iron:
		return Range{Low: 2400, High: 2600}
	case Steel:
		return Range{Low: 2100, High: 2300}
	case Bronze:
		return Range{Low: 1100, High: 1300}
	case Silver:
		return Range{Low: 1050, High: 1250}
	case Gold:
		return Range{Low: 1150, High: 1350}
	default:
		return Range{}
	}
}

// Classify places temp into exactly one band for the material.
func Classify(m Material, temp int) Band {
	r := m.PerfectRange()
	switch {
	case temp < r.Low:
		return Under
	case temp > r.High:
		return Over
	default:
		return Perfect
	}
}

// Band classifies the product's current temperature.
func (p Product) Band() Band {
	return Classify(p.Material, p.Temp)
}
