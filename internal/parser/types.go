package parser

import "time"

// Card represents a playing card
type Card struct {
	Rank string `json:"rank"` // "A", "K", "Q", "J", "10", "2"-"9"
	Suit string `json:"suit"` // "h", "d", "c", "s"
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

// Position represents a player's position at the table
type Position int

const (
	PosUnknown Position = iota
	PosSB               // Small Blind
	PosBB               // Big Blind
	PosUTG              // Under the Gun
	PosUTG1             // UTG+1
	PosMP               // Middle Position
	PosLJ               // Lojack
	PosHJ               // Hijack
	PosCO               // Cutoff
	PosBTN              // Button (Dealer)
)

func (p Position) String() string {
	switch p {
	case PosSB:
		return "SB"
	case PosBB:
		return "BB"
	case PosUTG:
		return "UTG"
	case PosUTG1:
		return "UTG+1"
	case PosMP:
		return "MP"
	case PosLJ:
		return "LJ"
	case PosHJ:
		return "HJ"
	case PosCO:
		return "CO"
	case PosBTN:
		return "BTN"
	default:
		return "?"
	}
}

// ActionKind represents a player action verb as it appears in the history text
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionFold
	ActionCheck
	ActionBet
	ActionCall
	ActionRaise
)

func (a ActionKind) String() string {
	switch a {
	case ActionFold:
		return "folds"
	case ActionCheck:
		return "checks"
	case ActionBet:
		return "bets"
	case ActionCall:
		return "calls"
	case ActionRaise:
		return "raises"
	default:
		return "unknown"
	}
}

// IsVoluntary reports whether the action puts money in or declines to
// (everything except an unknown verb).
func (a ActionKind) IsVoluntary() bool {
	return a != ActionUnknown
}

// IsAggressive reports whether the action is a bet or raise.
func (a ActionKind) IsAggressive() bool {
	return a == ActionBet || a == ActionRaise
}

// StreetID identifies one of the four betting rounds
type StreetID int

const (
	StreetPreflop StreetID = iota
	StreetFlop
	StreetTurn
	StreetRiver
	streetCount
)

func (s StreetID) String() string {
	switch s {
	case StreetPreflop:
		return "preflop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	default:
		return "unknown"
	}
}

// Action is a single recorded action within a street.
//
// Amount carries the player's street total after a raise ("raises $X to $Y"
// stores Y) and the plain amount for bets/calls; blind postings are folded
// into the blind seat's first voluntary amount during parsing. Bet keeps the
// raw increment (X) exactly as printed.
type Action struct {
	Seat   int        `json:"seat"`
	Player string     `json:"player"`
	Kind   ActionKind `json:"action"`
	Bet    int64      `json:"bet"`
	Amount int64      `json:"amount"`
	AllIn  bool       `json:"allIn,omitempty"`
}

// Player is one seated player as read from the setup stage.
type Player struct {
	Seat         int      `json:"seat"`
	Name         string   `json:"name"`
	InitialStack int64    `json:"initialStack"`
	Position     Position `json:"position"`
	IsHero       bool     `json:"isHero"`
}

// Street holds the ordered action log and the cumulative board for one round.
type Street struct {
	Actions []Action `json:"actions"`
	Board   []Card   `json:"board"`
}

// Winner is one payout line from the summary section.
type Winner struct {
	Player string `json:"player"`
	Amount int64  `json:"amount"`
}

// Hero holds the local player's per-hand data.
type Hero struct {
	Seat                int      `json:"seat"`
	Cards               []Card   `json:"cards"`
	InitialStack        int64    `json:"initialStack"`
	Position            Position `json:"position"`
	Result              int64    `json:"result"`
	UncalledBetReturned int64    `json:"uncalledBetReturned"`
}

// Hand is one fully parsed hand history. Immutable after parsing.
// All money amounts are integer cents.
type Hand struct {
	ID        string    `json:"id"`
	GameType  string    `json:"gameType"`
	LimitType string    `json:"limitType"`
	SB        int64     `json:"sb"`
	BB        int64     `json:"bb"`
	StartTime time.Time `json:"startTime"`
	TotalPot  int64     `json:"totalPot"`
	Rake      int64     `json:"rake"`
	Jackpot   int64     `json:"jackpot"`

	Hero       Hero      `json:"hero"`
	Players    []*Player `json:"players"`
	ButtonSeat int       `json:"buttonSeat"`

	Streets [streetCount]Street `json:"streets"`
	Winners []Winner            `json:"winners"`

	// Seat of the first preflop raiser, -1 if the pot was never raised.
	PreflopRaiserSeat int `json:"preflopRaiserSeat"`
}

// PlayerBySeat returns the player seated at seat, or nil.
func (h *Hand) PlayerBySeat(seat int) *Player {
	for _, p := range h.Players {
		if p.Seat == seat {
			return p
		}
	}
	return nil
}

// PlayerByName returns the player with the exact display name, or nil.
func (h *Hand) PlayerByName(name string) *Player {
	for _, p := range h.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Street returns the log for the given round.
func (h *Hand) Street(id StreetID) *Street {
	return &h.Streets[id]
}

// StatsEligible reports whether the hand can contribute to aggregation:
// Hero present, Hero's position known, and at least two seated players.
func (h *Hand) StatsEligible() bool {
	if h == nil {
		return false
	}
	return h.Hero.Seat > 0 && h.Hero.Position != PosUnknown && len(h.Players) >= 2
}
