package diag

import "fmt"

// ClassifyInput carries the three classification signals. AnnualRevenue wins
// when positive, then a recognized SizeBand token, then Score.
type ClassifyInput struct {
	Score         int
	AnnualRevenue float64
	SizeBand      string
}

var revenueBreakpoints = []struct {
	below float64
	level int
}{
	{250_000, 1},
	{1_000_000, 2},
	{5_000_000, 3},
	{25_000_000, 4},
}

var scoreBreakpoints = []struct {
	below int
	level int
}{
	{20, 1},
	{40, 2},
	{60, 3},
	{80, 4},
}

// ClassifyGear maps the strongest available signal to one of the five gears.
// The reason always names which signal decided and its value.
func ClassifyGear(in ClassifyInput) Gear {
	if in.AnnualRevenue > 0 {
		level := 5
		for _, bp := range revenueBreakpoints {
			if in.AnnualRevenue < bp.below {
				level = bp.level
				break
			}
		}
		def := GearByLevel(level)
		return Gear{
			Level:  level,
			Label:  def.Label,
			Reason: fmt.Sprintf("classified by annual revenue of $%.0f", in.AnnualRevenue),
		}
	}

	if level, ok := sizeBandGear[in.SizeBand]; ok {
		def := GearByLevel(level)
		return Gear{
			Level:  level,
			Label:  def.Label,
			Reason: fmt.Sprintf("classified by team size band %q", in.SizeBand),
		}
	}

	level := 5
	for _, bp := range scoreBreakpoints {
		if in.Score < bp.below {
			level = bp.level
			break
		}
	}
	def := GearByLevel(level)
	return Gear{
		Level:  level,
		Label:  def.Label,
		Reason: fmt.Sprintf("classified by overall score of %d", in.Score),
	}
}

// CheckGearMismatch compares the actual score to the classified gear's
// expected score band. Advisory only.
func CheckGearMismatch(gear Gear, score int) GearMismatch {
	def := GearByLevel(gear.Level)
	if score < def.ScoreFloor {
		return GearMismatch{
			Status: MismatchUnderperforming,
			Detail: fmt.Sprintf("score %d is below the %d floor expected at %s", score, def.ScoreFloor, def.Label),
		}
	}
	if score > def.ScoreCeiling && gear.Level < 5 {
		return GearMismatch{
			Status: MismatchReadyToAdvance,
			Detail: fmt.Sprintf("score %d is above the %d ceiling expected at %s", score, def.ScoreCeiling, def.Label),
		}
	}
	return GearMismatch{
		Status: MismatchAligned,
		Detail: fmt.Sprintf("score %d sits inside the expected range for %s", score, def.Label),
	}
}
