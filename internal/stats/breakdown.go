package stats

import (
	"sort"
	"strconv"
	"strings"

	"spytracker/internal/models"
)

// Breakdown fields accepted by ByField.
const (
	FieldSetup     = "setup"
	FieldDayType   = "day_type"
	FieldDirection = "direction"
	FieldEmotion   = "emotion"
)

// BucketRow is one row of a grouped breakdown.
type BucketRow struct {
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	Wins     int     `json:"wins"`
	WinRate  float64 `json:"winRate"`
	TotalPnL float64 `json:"totalPnl"`
}

// TimeSlot is a fixed clock-minute window, e.g. 09:30-10:00 is {570, 600}.
type TimeSlot struct {
	Label string `json:"label" mapstructure:"label"`
	Min   int    `json:"min" mapstructure:"min"`
	Max   int    `json:"max" mapstructure:"max"`
}

// DayRow is the per-calendar-day aggregate.
type DayRow struct {
	Date   string  `json:"date"`
	Count  int     `json:"count"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	PnL    float64 `json:"pnl"`
}

// EquityPoint is one point of the cumulative P&L curve.
type EquityPoint struct {
	Index      int     `json:"index"`
	Date       string  `json:"date"`
	Cumulative float64 `json:"cum"`
}

// ByField groups trades over the fixed value catalog of one categorical
// field. Catalog values with no matching trades are dropped from the
// result rather than reported with zero counts.
func ByField(trades []models.Trade, field string, catalog []string) []BucketRow {
	rows := make([]BucketRow, 0, len(catalog))
	for _, value := range catalog {
		row := BucketRow{Label: value}
		for _, t := range trades {
			if fieldValue(t, field) != value {
				continue
			}
			row.Count++
			if t.Outcome == models.OutcomeWin {
				row.Wins++
			}
			if t.PnL != nil {
				row.TotalPnL += t.PnL.InexactFloat64()
			}
		}
		if row.Count == 0 {
			continue
		}
		row.WinRate = float64(row.Wins) / float64(row.Count)
		rows = append(rows, row)
	}
	return rows
}

// ByTimeSlot buckets trades into the given clock-minute windows. A trade
// whose time is missing or malformed lands in no bucket. Windows are
// half-open: min inclusive, max exclusive.
func ByTimeSlot(trades []models.Trade, slots []TimeSlot) []BucketRow {
	rows := make([]BucketRow, 0, len(slots))
	for _, slot := range slots {
		row := BucketRow{Label: slot.Label}
		for _, t := range trades {
			minutes, ok := clockMinutes(t.Time)
			if !ok || minutes < slot.Min || minutes >= slot.Max {
				continue
			}
			row.Count++
			if t.Outcome == models.OutcomeWin {
				row.Wins++
			}
			if t.PnL != nil {
				row.TotalPnL += t.PnL.InexactFloat64()
			}
		}
		if row.Count == 0 {
			continue
		}
		row.WinRate = float64(row.Wins) / float64(row.Count)
		rows = append(rows, row)
	}
	return rows
}

// ByDay aggregates per calendar day, newest first. Trades without a date
// are skipped. Absent pnl counts as zero in the day sum, consistent with
// the drawdown walk.
func ByDay(trades []models.Trade) []DayRow {
	byDate := map[string]*DayRow{}
	for _, t := range trades {
		if t.Date == "" {
			continue
		}
		row, ok := byDate[t.Date]
		if !ok {
			row = &DayRow{Date: t.Date}
			byDate[t.Date] = row
		}
		row.Count++
		switch t.Outcome {
		case models.OutcomeWin:
			row.Wins++
		case models.OutcomeLoss:
			row.Losses++
		}
		if t.PnL != nil {
			row.PnL += t.PnL.InexactFloat64()
		}
	}
	rows := make([]DayRow, 0, len(byDate))
	for _, row := range byDate {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows
}

// EquityCurve returns cumulative P&L points over the last limit trades
// that carry a pnl value, in date-ascending order. limit <= 0 keeps all.
func EquityCurve(trades []models.Trade, limit int) []EquityPoint {
	ordered := sortedByDate(trades)
	withPnL := ordered[:0:0]
	for _, t := range ordered {
		if t.PnL != nil {
			withPnL = append(withPnL, t)
		}
	}
	if limit > 0 && len(withPnL) > limit {
		withPnL = withPnL[len(withPnL)-limit:]
	}
	points := make([]EquityPoint, 0, len(withPnL))
	run := 0.0
	for i, t := range withPnL {
		run += t.PnL.InexactFloat64()
		points = append(points, EquityPoint{Index: i, Date: t.Date, Cumulative: run})
	}
	return points
}

// Extremes returns the n best and n worst trades by pnl. Trades without
// a pnl are ignored.
func Extremes(trades []models.Trade, n int) (best, worst []models.Trade) {
	withPnL := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.PnL != nil {
			withPnL = append(withPnL, t)
		}
	}
	sort.SliceStable(withPnL, func(i, j int) bool {
		return withPnL[i].PnL.Cmp(*withPnL[j].PnL) > 0
	})
	if n <= 0 || n > len(withPnL) {
		n = len(withPnL)
	}
	best = append(best, withPnL[:n]...)
	for i := len(withPnL) - 1; i >= len(withPnL)-n; i-- {
		worst = append(worst, withPnL[i])
	}
	return best, worst
}

func fieldValue(t models.Trade, field string) string {
	switch field {
	case FieldSetup:
		return t.Setup
	case FieldDayType:
		return t.DayType
	case FieldDirection:
		return t.Direction
	case FieldEmotion:
		return t.Emotion
	default:
		return ""
	}
}

// clockMinutes parses "HH:MM" into minutes since midnight.
func clockMinutes(value string) (int, bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
