package stats

import "github.com/AkatukiSora/poker-hand-stats/internal/parser"

// Metric identifiers. IDs double as JSON keys in the finalized report.
const (
	MetricTotalProfit MetricID = "total_profit"
	MetricTotalRake   MetricID = "total_rake"
	MetricTotalJackpot MetricID = "total_jackpot"
	MetricBBPer100    MetricID = "bb_per_100"
	MetricProfitBB    MetricID = "profit_bb"

	MetricTotalHands    MetricID = "total_hands"
	MetricTotalDuration MetricID = "total_duration"
	MetricHandsPerHour  MetricID = "hands_per_hour"
	MetricProfitPerHour MetricID = "profit_per_hour"

	MetricVPIP       MetricID = "vpip"
	MetricPFR        MetricID = "pfr"
	Metric3Bet       MetricID = "3bet"
	Metric4Bet       MetricID = "4bet"
	MetricFoldVs3Bet MetricID = "fold_vs_3bet"
	MetricFoldVs4Bet MetricID = "fold_vs_4bet"
	MetricColdCall   MetricID = "cold_call"
	MetricSqueeze    MetricID = "squeeze"
	MetricLimp       MetricID = "limp"

	MetricStealAttempt MetricID = "steal_attempt"
	MetricFoldToSteal  MetricID = "fold_to_steal"

	MetricCBetFlop       MetricID = "cbet_flop"
	MetricCBetTurn       MetricID = "cbet_turn"
	MetricCBetRiver      MetricID = "cbet_river"
	MetricFoldToCBetFlop MetricID = "fold_to_cbet_flop"
	MetricRaiseCBetFlop  MetricID = "raise_cbet_flop"
	MetricCheckRaiseFlop MetricID = "check_raise_flop"
	MetricDonkBetFlop    MetricID = "donk_bet_flop"
	MetricBetVsMissedCBet MetricID = "bet_vs_missed_cbet"
	MetricProbeBetTurn   MetricID = "probe_bet_turn"

	MetricWTSD         MetricID = "wtsd"
	MetricWTSDWon      MetricID = "wtsd_won"
	MetricWWSF         MetricID = "wwsf"
	MetricWTSDAfterCBet MetricID = "wtsd_after_cbet"
	MetricWWSFAsPFR    MetricID = "wwsf_as_pfr"
	MetricWWSFAsCaller MetricID = "wwsf_as_caller"

	MetricAFqFlop  MetricID = "afq_flop"
	MetricAFqTurn  MetricID = "afq_turn"
	MetricAFqRiver MetricID = "afq_river"
)

// MetricDefinition pairs a metric's metadata with its accumulator factory and
// per-hand update function. Entries without New are derived entirely at
// finalization. The registry is process-wide, read-only configuration.
type MetricDefinition struct {
	ID       MetricID
	Label    string
	Type     MetricType
	Category string
	New      func() Accumulator
	Process  func(ctx *HandContext, acc Accumulator)
}

func newCounter() Accumulator    { return &Counter{} }
func newAggression() Accumulator { return &Aggression{} }
func newMoney() Accumulator      { return &MoneyTotal{} }

// ratio wraps the common opportunity/action update: when opportunity is true
// the counter's opportunities advance, and actions advance when acted is also
// true.
func ratio(opportunity, acted bool, acc Accumulator) {
	c := acc.(*Counter)
	if !opportunity {
		return
	}
	c.Opportunities++
	if acted {
		c.Actions++
	}
}

func tallyAggression(street *StreetContext, acc Accumulator) {
	a := acc.(*Aggression)
	for _, act := range street.HeroActions {
		switch act.Kind {
		case parser.ActionBet:
			a.Bets++
		case parser.ActionRaise:
			a.Raises++
		case parser.ActionCall:
			a.Calls++
		case parser.ActionCheck:
			a.Checks++
		}
	}
}

// Registry declares every metric the aggregator computes. Order fixes the
// display order of the report.
var Registry = []MetricDefinition{
	{
		ID: MetricTotalProfit, Label: "Total Profit", Type: TypeMoney, Category: "win_rate",
		New: newMoney,
		Process: func(ctx *HandContext, acc Accumulator) {
			acc.(*MoneyTotal).Value += ctx.HeroResult
		},
	},
	{
		ID: MetricTotalRake, Label: "Total Rake", Type: TypeMoney, Category: "win_rate",
		New: newMoney,
		Process: func(ctx *HandContext, acc Accumulator) {
			if ctx.IsHeroWinner {
				acc.(*MoneyTotal).Value += ctx.Hand.Rake
			}
		},
	},
	{
		ID: MetricTotalJackpot, Label: "Total Jackpot", Type: TypeMoney, Category: "win_rate",
		New: newMoney,
		Process: func(ctx *HandContext, acc Accumulator) {
			if ctx.IsHeroWinner {
				acc.(*MoneyTotal).Value += ctx.Hand.Jackpot
			}
		},
	},
	{ID: MetricBBPer100, Label: "bb/100", Type: TypeBB, Category: "win_rate"},
	{ID: MetricProfitBB, Label: "Profit (bb)", Type: TypeBB, Category: "win_rate"},

	{ID: MetricTotalHands, Label: "Hands", Type: TypeInt, Category: "session"},
	{ID: MetricTotalDuration, Label: "Duration", Type: TypeDuration, Category: "session"},
	{ID: MetricHandsPerHour, Label: "Hands/h", Type: TypeInt, Category: "session"},
	{ID: MetricProfitPerHour, Label: "Profit/h", Type: TypeMoney, Category: "session"},

	{
		ID: MetricVPIP, Label: "VPIP", Type: TypePercent, Category: "preflop_open",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			acted := ctx.Preflop.HeroDid(parser.ActionCall) || ctx.Preflop.HeroDid(parser.ActionRaise)
			ratio(ctx.IsVPIPOpportunity, acted, acc)
		},
	},
	{
		ID: MetricPFR, Label: "PFR", Type: TypePercent, Category: "preflop_open",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			ratio(!ctx.FacedRaise, ctx.Preflop.HeroDid(parser.ActionRaise), acc)
		},
	},
	{
		ID: MetricLimp, Label: "Limp", Type: TypePercent, Category: "preflop_open",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			ratio(!ctx.FacedRaise, ctx.Preflop.HeroDid(parser.ActionCall), acc)
		},
	},
	{
		ID: Metric3Bet, Label: "3-Bet", Type: TypePercent, Category: "preflop_vs_raise",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			ratio(len(ctx.RaisesBeforeHero) == 1, ctx.Preflop.HeroDid(parser.ActionRaise), acc)
		},
	},
	{
		ID: Metric4Bet, Label: "4-Bet", Type: TypePercent, Category: "preflop_vs_raise",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := len(ctx.RaisesBeforeHero) == 2 || ctx.Faced3Bet
			ratio(opp, ctx.Preflop.HeroDid(parser.ActionRaise), acc)
		},
	},
	{
		ID: MetricFoldVs3Bet, Label: "Fold vs 3-Bet", Type: TypePercent, Category: "preflop_vs_raise",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := ctx.Preflop.HeroDid(parser.ActionRaise) && ctx.Faced3Bet
			ratio(opp, ctx.Preflop.HeroDid(parser.ActionFold), acc)
		},
	},
	{
		ID: MetricFoldVs4Bet, Label: "Fold vs 4-Bet", Type: TypePercent, Category: "preflop_vs_raise",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			hero3Bet := ctx.Preflop.HeroDid(parser.ActionRaise) && len(ctx.RaisesBeforeHero) == 1
			if !hero3Bet {
				return
			}
			raiseIdx := -1
			for i, a := range ctx.Preflop.Actions {
				if a.Seat == ctx.HeroSeat && a.Kind == parser.ActionRaise {
					raiseIdx = i
					break
				}
			}
			faced4Bet := false
			for _, a := range ctx.Preflop.Actions[raiseIdx+1:] {
				if a.Kind == parser.ActionRaise && a.Seat != ctx.HeroSeat {
					faced4Bet = true
					break
				}
			}
			final := ctx.Preflop.LastHeroAction()
			folded := final != nil && final.Kind == parser.ActionFold
			ratio(faced4Bet, folded, acc)
		},
	},
	{
		ID: MetricColdCall, Label: "Cold Call", Type: TypePercent, Category: "preflop_vs_raise",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := len(ctx.RaisesBeforeHero) == 1 && len(ctx.CallsBeforeHero) == 0
			ratio(opp, ctx.Preflop.HeroDid(parser.ActionCall), acc)
		},
	},
	{
		ID: MetricSqueeze, Label: "Squeeze", Type: TypePercent, Category: "preflop_vs_raise",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := len(ctx.RaisesBeforeHero) == 1 && len(ctx.CallsBeforeHero) > 0
			ratio(opp, ctx.Preflop.HeroDid(parser.ActionRaise), acc)
		},
	},
	{
		ID: MetricStealAttempt, Label: "Steal Attempt", Type: TypePercent, Category: "steal_dynamics",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			late := ctx.HeroPosition == parser.PosCO || ctx.HeroPosition == parser.PosBTN
			ratio(late && !ctx.FacedRaise, ctx.Preflop.HeroDid(parser.ActionRaise), acc)
		},
	},
	{
		ID: MetricFoldToSteal, Label: "Fold to Steal", Type: TypePercent, Category: "steal_dynamics",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			if len(ctx.RaisesBeforeHero) != 1 {
				return
			}
			if ctx.HeroPosition != parser.PosSB && ctx.HeroPosition != parser.PosBB {
				return
			}
			raiser := ctx.Hand.PlayerBySeat(ctx.RaisesBeforeHero[0].Seat)
			if raiser == nil || (raiser.Position != parser.PosCO && raiser.Position != parser.PosBTN) {
				return
			}
			ratio(true, ctx.Preflop.HeroDid(parser.ActionFold), acc)
		},
	},

	{
		ID: MetricCBetFlop, Label: "C-Bet Flop", Type: TypePercent, Category: "postflop_aggressor",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			ratio(ctx.IsPreflopAggressor, ctx.Flop.HeroDid(parser.ActionBet), acc)
		},
	},
	{
		ID: MetricCBetTurn, Label: "C-Bet Turn", Type: TypePercent, Category: "postflop_aggressor",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := ctx.SawTurn && ctx.IsPreflopAggressor && ctx.Flop.HeroDid(parser.ActionBet)
			ratio(opp, ctx.Turn.HeroDid(parser.ActionBet), acc)
		},
	},
	{
		ID: MetricCBetRiver, Label: "C-Bet River", Type: TypePercent, Category: "postflop_aggressor",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := ctx.SawRiver && ctx.IsPreflopAggressor &&
				ctx.Flop.HeroDid(parser.ActionBet) && ctx.Turn.HeroDid(parser.ActionBet)
			ratio(opp, ctx.River.HeroDid(parser.ActionBet), acc)
		},
	},
	{
		ID: MetricFoldToCBetFlop, Label: "Fold to C-Bet", Type: TypePercent, Category: "postflop_caller",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := ctx.IsPreflopCaller && ctx.AggressorCBet
			ratio(opp, ctx.Flop.HeroDid(parser.ActionFold), acc)
		},
	},
	{
		ID: MetricRaiseCBetFlop, Label: "Raise C-Bet", Type: TypePercent, Category: "postflop_caller",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := ctx.IsPreflopCaller && ctx.AggressorCBet
			ratio(opp, ctx.Flop.HeroDid(parser.ActionRaise), acc)
		},
	},
	{
		ID: MetricCheckRaiseFlop, Label: "Check-Raise Flop", Type: TypePercent, Category: "postflop_caller",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			if !ctx.IsPreflopCaller || ctx.HeroInPosition {
				return
			}
			opp := ctx.Flop.HeroDid(parser.ActionCheck) && ctx.AggressorCBet
			ratio(opp, ctx.Flop.HeroDid(parser.ActionRaise), acc)
		},
	},
	{
		ID: MetricDonkBetFlop, Label: "Donk Bet Flop", Type: TypePercent, Category: "postflop_caller",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := ctx.IsPreflopCaller && !ctx.HeroInPosition
			ratio(opp, ctx.Flop.HeroDid(parser.ActionBet), acc)
		},
	},
	{
		ID: MetricBetVsMissedCBet, Label: "Bet vs Missed C-Bet", Type: TypePercent, Category: "postflop_caller",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := ctx.IsPreflopCaller && ctx.AggressorMissedCBet
			ratio(opp, ctx.Flop.HeroDid(parser.ActionBet), acc)
		},
	},
	{
		ID: MetricProbeBetTurn, Label: "Probe Bet Turn", Type: TypePercent, Category: "postflop_caller",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := ctx.IsPreflopCaller && ctx.SawTurn && ctx.FlopCheckedThrough
			ratio(opp, ctx.Turn.HeroDid(parser.ActionBet), acc)
		},
	},

	{
		ID: MetricWTSD, Label: "WTSD", Type: TypePercent, Category: "showdown",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			ratio(ctx.SawFlop, ctx.ReachedShowdown, acc)
		},
	},
	{
		ID: MetricWTSDWon, Label: "W$SD", Type: TypePercent, Category: "showdown",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			ratio(ctx.ReachedShowdown, ctx.IsHeroWinner, acc)
		},
	},
	{
		ID: MetricWWSF, Label: "WWSF", Type: TypePercent, Category: "showdown",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			ratio(ctx.SawFlop, ctx.IsHeroWinner, acc)
		},
	},
	{
		ID: MetricWTSDAfterCBet, Label: "WTSD after C-Bet", Type: TypePercent, Category: "showdown",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			opp := ctx.IsPreflopAggressor && ctx.Flop.HeroDid(parser.ActionBet)
			ratio(opp, ctx.ReachedShowdown, acc)
		},
	},
	{
		ID: MetricWWSFAsPFR, Label: "WWSF as PFR", Type: TypePercent, Category: "showdown",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			ratio(ctx.IsPreflopAggressor, ctx.IsHeroWinner, acc)
		},
	},
	{
		ID: MetricWWSFAsCaller, Label: "WWSF as Caller", Type: TypePercent, Category: "showdown",
		New: newCounter,
		Process: func(ctx *HandContext, acc Accumulator) {
			ratio(ctx.IsPreflopCaller, ctx.IsHeroWinner, acc)
		},
	},

	{
		ID: MetricAFqFlop, Label: "AFq Flop", Type: TypeAggression, Category: "aggression",
		New: newAggression,
		Process: func(ctx *HandContext, acc Accumulator) {
			tallyAggression(&ctx.Flop, acc)
		},
	},
	{
		ID: MetricAFqTurn, Label: "AFq Turn", Type: TypeAggression, Category: "aggression",
		New: newAggression,
		Process: func(ctx *HandContext, acc Accumulator) {
			tallyAggression(&ctx.Turn, acc)
		},
	},
	{
		ID: MetricAFqRiver, Label: "AFq River", Type: TypeAggression, Category: "aggression",
		New: newAggression,
		Process: func(ctx *HandContext, acc Accumulator) {
			tallyAggression(&ctx.River, acc)
		},
	},
}

// DefinitionFor returns the registry entry for an ID, nil if unregistered.
func DefinitionFor(id MetricID) *MetricDefinition {
	for i := range Registry {
		if Registry[i].ID == id {
			return &Registry[i]
		}
	}
	return nil
}
