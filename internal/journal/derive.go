// Package journal owns the record-level rules of the trade log: the
// auto-derivation of P&L, R:R, and outcome from price inputs, and the
// fixed catalogs the journal UI is built around.
package journal

import (
	"github.com/shopspring/decimal"

	"spytracker/internal/models"
)

// OptionsMultiplier scales share counts for option contracts.
var OptionsMultiplier = decimal.NewFromInt(100)

// DeriveInput carries the price fields the derived values depend on.
type DeriveInput struct {
	Direction string
	Options   bool
	Entry     *decimal.Decimal
	Stop      *decimal.Decimal
	Exit      *decimal.Decimal
	Shares    *decimal.Decimal
}

// Derived holds the auto-computed fields. A nil PnL or empty RR/Outcome
// means the inputs were insufficient to derive that field.
type Derived struct {
	PnL     *decimal.Decimal
	RR      string
	Outcome string
}

// Derive computes P&L, R:R, and outcome from the price inputs.
//
// P&L requires entry, exit, and a positive share count:
// (exit-entry)*shares*multiplier, sign-flipped for SHORT trades, where the
// multiplier is 100 for option contracts. R:R requires entry, stop, and
// exit with stop != entry: directional gain per unit over risk per unit,
// formatted with an "R" suffix. Outcome follows the sign of the derived
// P&L.
func Derive(in DeriveInput) Derived {
	var out Derived

	if in.Entry != nil && in.Exit != nil && in.Shares != nil && in.Shares.IsPositive() {
		gain := in.Exit.Sub(*in.Entry)
		if in.Direction == models.DirectionShort {
			gain = in.Entry.Sub(*in.Exit)
		}
		qty := *in.Shares
		if in.Options {
			qty = qty.Mul(OptionsMultiplier)
		}
		pnl := gain.Mul(qty).Round(2)
		out.PnL = &pnl
	}

	if in.Entry != nil && in.Stop != nil && in.Exit != nil && !in.Stop.Equal(*in.Entry) {
		risk := in.Entry.Sub(*in.Stop).Abs()
		gain := in.Exit.Sub(*in.Entry)
		if in.Direction == models.DirectionShort {
			gain = in.Entry.Sub(*in.Exit)
		}
		out.RR = gain.Div(risk).StringFixed(2) + "R"
	}

	if out.PnL != nil {
		switch out.PnL.Sign() {
		case 1:
			out.Outcome = models.OutcomeWin
		case -1:
			out.Outcome = models.OutcomeLoss
		default:
			out.Outcome = models.OutcomeBreakEven
		}
	}
	return out
}

// OutcomeForPnL maps a P&L value to its outcome.
func OutcomeForPnL(pnl decimal.Decimal) string {
	switch pnl.Sign() {
	case 1:
		return models.OutcomeWin
	case -1:
		return models.OutcomeLoss
	default:
		return models.OutcomeBreakEven
	}
}
