package adaptation

import (
	"time"

	"github.com/oguzhan/career-compass/internal/types"
)

// periodFraming carries the fixed energy label and activity suggestions for
// one time-of-day period.
type periodFraming struct {
	energy      string
	suggestions []string
}

var periodFramings = map[types.Period]periodFraming{
	types.PeriodMorning: {
		energy: "high",
		suggestions: []string{
			"tackle the hardest learning task of the day first",
			"review yesterday's progress and set one concrete goal",
		},
	},
	types.PeriodAfternoon: {
		energy: "steady",
		suggestions: []string{
			"work through practice exercises or project tasks",
			"schedule conversations, mentoring or study groups",
		},
	},
	types.PeriodEvening: {
		energy: "winding-down",
		suggestions: []string{
			"review notes and consolidate what was learned today",
			"do lighter reading or watch a talk on the field",
		},
	},
	types.PeriodNight: {
		energy: "low",
		suggestions: []string{
			"keep sessions short and low-pressure",
			"plan tomorrow instead of starting new material",
		},
	},
}

var weekendSuggestions = []string{
	"block a longer session for a side project",
	"explore an adjacent topic purely out of curiosity",
}

// periodOf buckets a local hour into the four fixed periods:
// morning 06-12, afternoon 12-17, evening 17-21, night 21-06.
func periodOf(hour int) types.Period {
	switch {
	case hour >= 6 && hour < 12:
		return types.PeriodMorning
	case hour >= 12 && hour < 17:
		return types.PeriodAfternoon
	case hour >= 17 && hour < 21:
		return types.PeriodEvening
	default:
		return types.PeriodNight
	}
}

// isWeekend reports Saturday/Sunday for the timestamp's location.
func isWeekend(now time.Time) bool {
	weekday := now.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
