package journal

// Default catalogs for the categorical trade fields. The setup and emotion
// lists are overridable via config; day types are part of the data model.
var (
	DefaultSetups = []string{
		"VWAP Reclaim",
		"Gap Fill",
		"ORB Breakout",
		"Bull/Bear Flag",
		"EMA Dip Buy",
		"EMA Sell Rip",
		"Other",
	}

	DayTypes = []string{"Trend", "Chop", "Reversal"}

	DefaultEmotions = []string{"Calm", "FOMO", "Anxious", "Revenge", "Confident", "Greedy"}
)

// ChecklistGroup is one titled block of checklist items.
type ChecklistGroup struct {
	Title string   `json:"title"`
	Group string   `json:"group"`
	Items []string `json:"items"`
}

// PreMarketChecklist is the morning routine, run once per day.
var PreMarketChecklist = []ChecklistGroup{
	{
		Title: "8:00am — News & Context",
		Group: "news",
		Items: []string{
			"Check major econ data today (CPI, FOMC, NFP, PPI)",
			"Check for Fed speakers scheduled",
			"Note geopolitical headlines moving futures",
			"What did SPY do yesterday?",
			"Check ES futures direction and premarket level",
		},
	},
	{
		Title: "8:30am — Chart Setup",
		Group: "chart",
		Items: []string{
			"Mark Prior Day High (PDH)",
			"Mark Prior Day Low (PDL)",
			"Mark Prior Day Close",
			"Mark Premarket High",
			"Mark Premarket Low",
			"Mark overnight consolidation zones",
			"Mark round numbers near current price",
			"VWAP, 9 EMA, 20 EMA confirmed on chart",
			"15m, 5m, 1m charts open and ready",
		},
	},
	{
		Title: "9:15am — Mental Prep",
		Group: "mental",
		Items: []string{
			"Write directional bias for today",
			"Write max loss in dollars",
			"Write setups looking for today",
			"Assess mental state — tired? anxious? distracted?",
			"Commit: No trades before 9:55am",
			"Commit: Take stop loss without hesitation",
			"Commit: No revenge trading after a loss",
		},
	},
}

// PreTradeChecklist runs before every potential entry. Its groups are
// stored under a "tc_" prefix so the same date row can hold both lists.
var PreTradeChecklist = []ChecklistGroup{
	{
		Title: "Setup Conditions",
		Group: "tc_setup",
		Items: []string{
			"Day type classified and this trade fits",
			"Price above VWAP (long) or below VWAP (short)",
			"EMAs confirming direction (slope correct)",
			"Clear rejection or confirmation candle at entry level",
			"Volume confirming (high on breakout, dry on pullback)",
		},
	},
	{
		Title: "Risk Management",
		Group: "tc_risk",
		Items: []string{
			"Stop loss clearly defined before entry",
			"Risk is within 0.5–1% of account",
			"R:R is at least 1.5:1 or better",
			"Clear target identified before entry",
		},
	},
	{
		Title: "Mental Check",
		Group: "tc_mental",
		Items: []string{
			"Entering because setup is valid — NOT boredom/FOMO",
			"Have not hit daily max loss yet",
			"Mentally clear and following the plan",
		},
	},
}

// SetupSheet is the reference card for one playbook setup.
type SetupSheet struct {
	Title   string      `json:"title"`
	WinRate string      `json:"winRate"`
	Rows    [][2]string `json:"rows"`
}

// SetupReference documents the playbook served by the catalog endpoint.
var SetupReference = []SetupSheet{
	{
		Title:   "EMA/VWAP DIP BUY",
		WinRate: "55–65%",
		Rows: [][2]string{
			{"Concept", "Price pulls back to 9 EMA, 20 EMA, or VWAP on a confirmed trend day. Wait for rejection candle, enter in trend direction."},
			{"Best Time", "10:00–11:30am and 2:00–3:30pm on confirmed trend days only"},
			{"Entry", "Close of rejection candle at EMA/VWAP. Or break above rejection candle high on 1-min."},
			{"Stop", "9 EMA entry: stop below 20 EMA. 20 EMA entry: stop below VWAP. VWAP entry: stop below rejection candle low."},
			{"Target 1", "Prior high of day — take 50% off here, move stop to breakeven"},
			{"Target 2", "Next resistance or when 9 EMA breaks on 5-min close"},
			{"Filters", "Pullback on declining volume. EMAs sloping in trend direction. TICK staying positive on dip. ADD holding above 2K."},
			{"Kill switch", "VWAP crossed 3+ times. Sharp high-volume dip. News-driven move."},
		},
	},
	{
		Title:   "VWAP RECLAIM",
		WinRate: "55–65%",
		Rows: [][2]string{
			{"Concept", "Price loses VWAP, sellers exhaust on low volume, buyers reclaim with conviction."},
			{"Entry", "Close of first 5-min candle back above VWAP, or retest of VWAP from above."},
			{"Stop", "Below the low of the reclaim candle or most recent swing low under VWAP. $0.30–$0.70."},
			{"Target 1", "Previous high of day or next resistance"},
			{"Target 2", "1.5–2x stop distance. Scale 50% at T1, move stop to breakeven."},
			{"Kill switch", "VWAP crossed 3+ times — confirmed chop. No volume on reclaim candle."},
		},
	},
	{
		Title:   "GAP FILL",
		WinRate: "60–70%",
		Rows: [][2]string{
			{"Concept", "SPY opens above/below prior close. Strong tendency to fill, especially gaps under 0.5%."},
			{"Sweet Spot", "0.1%–0.5% gaps. Over 1% less reliable."},
			{"Entry", "Wait for initial move to stall on declining volume. Reversal candle pointing back to gap."},
			{"Stop", "Above/below reversal candle. $0.40–$0.80."},
			{"Target", "Prior day close (the gap fill level). Take partial, hold if momentum strong."},
			{"Kill switch", "Major news day. Strong premarket volume. Continuation beyond first range."},
		},
	},
	{
		Title:   "ORB BREAKOUT",
		WinRate: "50–55%",
		Rows: [][2]string{
			{"Concept", "First 15–30 minutes establishes a range. Breakout with volume signals direction. Wait for retest."},
			{"Entry", "Retest of breakout level holding as new support/resistance. Confirmation candle close."},
			{"Stop", "Back inside the opening range. $0.30–$0.60."},
			{"Target", "Opening range height projected from breakout point (measured move)."},
			{"Kill switch", "Low volume breakout. No retest. Major econ data releasing soon."},
		},
	},
	{
		Title:   "BULL/BEAR FLAG",
		WinRate: "55–60%",
		Rows: [][2]string{
			{"Concept", "Sharp high-volume impulse creates flagpole. Tight low-volume consolidation (flag). Breakout continues."},
			{"Setup", "Impulse on 1.5–2x volume. Pullback under 50% of impulse. 3–5 consolidation candles. Volume dries up."},
			{"Entry", "Break above flag high (bull) or below flag low (bear) with volume expanding."},
			{"Stop", "Below the low of the flag consolidation. Skip if stop requires more than $0.80."},
			{"Target 1", "1:1 R:R — take 50% off immediately"},
			{"Target 2", "Flagpole measured move from breakout. Trail stop after T1."},
			{"Kill switch", "Pullback more than 60% of impulse. Ragged overlapping candles. Market reversing."},
		},
	},
}
