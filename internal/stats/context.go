package stats

import (
	"strings"

	"github.com/AkatukiSora/poker-hand-stats/internal/parser"
)

// StreetContext is the Hero-centric view of one betting round.
type StreetContext struct {
	Actions     []parser.Action
	HeroActions []parser.Action
}

// HeroDid reports whether Hero took the given action on this street.
func (s *StreetContext) HeroDid(kind parser.ActionKind) bool {
	for _, a := range s.HeroActions {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// LastHeroAction returns Hero's final action on this street, nil if none.
func (s *StreetContext) LastHeroAction() *parser.Action {
	if len(s.HeroActions) == 0 {
		return nil
	}
	return &s.HeroActions[len(s.HeroActions)-1]
}

// HandContext is the precomputed per-hand view the metric registry reads.
// It is rebuilt for every hand on every aggregation run and never outlives
// the processing of its hand.
type HandContext struct {
	Hand *parser.Hand

	HeroSeat     int
	HeroPosition parser.Position
	HeroResult   int64

	// Preflop
	Preflop          StreetContext
	RaisesBeforeHero []parser.Action
	CallsBeforeHero  []parser.Action
	FacedRaise       bool
	Faced3Bet        bool

	// Role flags
	IsVPIPOpportunity  bool
	IsPreflopAggressor bool
	IsPreflopCaller    bool
	PreflopAggressorSeat int

	// Flop
	Flop                StreetContext
	AggressorCBet       bool
	AggressorMissedCBet bool
	FlopCheckedThrough  bool
	HeroInPosition      bool

	Turn  StreetContext
	River StreetContext

	SawFlop         bool
	SawTurn         bool
	SawRiver        bool
	ReachedShowdown bool
	IsHeroWinner    bool
}

// BuildHandContext derives the full context for one hand. Pure: the hand
// record is never mutated.
func BuildHandContext(h *parser.Hand) *HandContext {
	heroSeat := h.Hero.Seat

	preflop := h.Streets[parser.StreetPreflop].Actions
	flop := h.Streets[parser.StreetFlop].Actions
	turn := h.Streets[parser.StreetTurn].Actions
	river := h.Streets[parser.StreetRiver].Actions

	ctx := &HandContext{
		Hand:                 h,
		HeroSeat:             heroSeat,
		HeroPosition:         h.Hero.Position,
		HeroResult:           h.Hero.Result,
		Preflop:              StreetContext{Actions: preflop, HeroActions: seatActions(preflop, heroSeat)},
		Flop:                 StreetContext{Actions: flop, HeroActions: seatActions(flop, heroSeat)},
		Turn:                 StreetContext{Actions: turn, HeroActions: seatActions(turn, heroSeat)},
		River:                StreetContext{Actions: river, HeroActions: seatActions(river, heroSeat)},
		PreflopAggressorSeat: -1,
	}

	// Last preflop raiser across the whole street.
	for _, a := range preflop {
		if a.Kind == parser.ActionRaise {
			ctx.PreflopAggressorSeat = a.Seat
		}
	}

	// Actions strictly before Hero's first preflop action.
	firstHero := -1
	for i, a := range preflop {
		if a.Seat == heroSeat {
			firstHero = i
			break
		}
	}
	if firstHero > 0 {
		for _, a := range preflop[:firstHero] {
			switch a.Kind {
			case parser.ActionRaise:
				ctx.RaisesBeforeHero = append(ctx.RaisesBeforeHero, a)
			case parser.ActionCall:
				ctx.CallsBeforeHero = append(ctx.CallsBeforeHero, a)
			}
		}
	}
	ctx.FacedRaise = len(ctx.RaisesBeforeHero) > 0

	// A raise behind Hero's own raise means Hero got 3-bet back.
	if firstHero >= 0 && ctx.Preflop.HeroDid(parser.ActionRaise) {
		for _, a := range preflop[firstHero+1:] {
			if a.Kind == parser.ActionRaise && a.Seat != heroSeat {
				ctx.Faced3Bet = true
				break
			}
		}
	}

	ctx.SawFlop = len(h.Streets[parser.StreetFlop].Board) > 0
	ctx.SawTurn = ctx.SawFlop && len(h.Streets[parser.StreetTurn].Board) > 0
	ctx.SawRiver = ctx.SawTurn && len(h.Streets[parser.StreetRiver].Board) > 0
	ctx.ReachedShowdown = ctx.SawRiver && !ctx.River.HeroDid(parser.ActionFold)

	ctx.IsPreflopAggressor = ctx.SawFlop && ctx.PreflopAggressorSeat == heroSeat
	madeVoluntary := ctx.Preflop.HeroDid(parser.ActionCall) || ctx.Preflop.HeroDid(parser.ActionRaise)
	ctx.IsPreflopCaller = ctx.SawFlop && madeVoluntary && !ctx.IsPreflopAggressor

	// The big blind gets a free look at a limped pot, so a BB hand only
	// counts as a VPIP opportunity when someone raised in front.
	ctx.IsVPIPOpportunity = h.Hero.Position != parser.PosBB || ctx.FacedRaise

	// Flop role of the preflop aggressor, when that is not Hero.
	if !ctx.IsPreflopAggressor && ctx.PreflopAggressorSeat >= 0 {
		for _, a := range flop {
			if a.Seat != ctx.PreflopAggressorSeat {
				continue
			}
			switch a.Kind {
			case parser.ActionBet:
				ctx.AggressorCBet = true
			case parser.ActionCheck:
				ctx.AggressorMissedCBet = true
			}
			break
		}
	}

	ctx.FlopCheckedThrough = ctx.SawFlop && len(flop) > 0 && allChecks(flop)
	ctx.HeroInPosition = heroInPosition(h, ctx, flop)

	for _, w := range h.Winners {
		if strings.Contains(w.Player, "Hero") {
			ctx.IsHeroWinner = true
			break
		}
	}

	return ctx
}

// heroInPosition reports whether Hero acted after the preflop aggressor on
// the flop. When the flop ordering is unknowable (heads-up with missing flop
// action) the button is assumed in position.
func heroInPosition(h *parser.Hand, ctx *HandContext, flop []parser.Action) bool {
	if !ctx.SawFlop || ctx.PreflopAggressorSeat < 0 || ctx.PreflopAggressorSeat == ctx.HeroSeat {
		return false
	}
	aggIdx, heroIdx := -1, -1
	for i, a := range flop {
		if aggIdx < 0 && a.Seat == ctx.PreflopAggressorSeat {
			aggIdx = i
		}
		if heroIdx < 0 && a.Seat == ctx.HeroSeat {
			heroIdx = i
		}
	}
	if aggIdx >= 0 && heroIdx >= 0 {
		return heroIdx > aggIdx
	}
	if len(h.Players) == 2 {
		return h.Hero.Position == parser.PosBTN
	}
	return false
}

func seatActions(actions []parser.Action, seat int) []parser.Action {
	var out []parser.Action
	for _, a := range actions {
		if a.Seat == seat {
			out = append(out, a)
		}
	}
	return out
}

func allChecks(actions []parser.Action) bool {
	for _, a := range actions {
		if a.Kind != parser.ActionCheck {
			return false
		}
	}
	return true
}
