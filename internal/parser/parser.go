package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// HandStartMarker begins every hand block in the export format.
const HandStartMarker = "Poker Hand #"

// HeroDealtMarker is present only in hands where Hero was dealt cards.
const HeroDealtMarker = "Dealt to Hero"

const heroName = "Hero"

var (
	reHeader    = regexp.MustCompile(`^Poker Hand #(\w+): (Hold'em|Omaha) (No Limit|Pot Limit) \(\$([\d.]+)/\$([\d.]+)\) - (\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2})`)
	reSeat      = regexp.MustCompile(`^Seat (\d+): (.+?) \(\$([\d.]+) in chips\)`)
	reButton    = regexp.MustCompile(`^Table '.+' \d+-max Seat #(\d+) is the button`)
	reHeroCards = regexp.MustCompile(`^Dealt to Hero \[(.+)]`)
	reAction    = regexp.MustCompile(`^(.+?): (folds|checks|bets|calls|raises) ?\$?([\d.]*)?(?: to \$?([\d.]*))?( and is all-in)?`)
	reUncalled  = regexp.MustCompile(`^Uncalled bet \(\$([\d.]+)\) returned to Hero`)
	reBoard     = regexp.MustCompile(`^\*\*\* (FLOP|TURN|RIVER) \*\*\* \[(.+)]`)
	reTotalPot  = regexp.MustCompile(`^Total pot \$([\d.]+) \| Rake \$([\d.]+)(?: \| Jackpot \$([\d.]+))?`)
	reWinner    = regexp.MustCompile(`^Seat \d+: (.+?) (?:won|collected) \(\$([\d.]+)\)`)
)

const timeLayout = "2006/01/02 15:04:05"

// parseStage is the current phase of the per-hand line scan.
type parseStage int

const (
	stageSetup parseStage = iota
	stageActions
	stageSummary
)

// ParseHandHistories parses one or more raw export blobs and returns the hands
// in which Hero was dealt cards, in file order. Malformed hand chunks are
// logged and skipped; they never abort the batch.
func ParseHandHistories(blobs []string) []*Hand {
	content := strings.Join(blobs, "\n\n\n")
	chunks := strings.Split(content, HandStartMarker)
	if len(chunks) > 0 {
		chunks = chunks[1:]
	}

	hands := make([]*Hand, 0, len(chunks))
	for _, chunk := range chunks {
		text := HandStartMarker + chunk
		if !strings.Contains(text, HeroDealtMarker) {
			continue
		}
		h, err := ParseSingleHand(text)
		if err != nil {
			slog.Warn("skipping malformed hand chunk", "error", err, "excerpt", truncate(text, 300))
			continue
		}
		hands = append(hands, h)
	}
	return hands
}

// handState carries the mutable per-hand parse state, owned exclusively by one
// ParseSingleHand call.
type handState struct {
	hand     *Hand
	stage    parseStage
	street   StreetID
	sbPosted bool
	bbPosted bool
}

// ParseSingleHand parses one complete hand block.
func ParseSingleHand(text string) (*Hand, error) {
	st := &handState{
		hand: &Hand{
			GameType:          "Hold'em",
			LimitType:         "No Limit",
			PreflopRaiserSeat: -1,
		},
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := st.processLine(line); err != nil {
			return nil, err
		}
	}

	if st.hand.ID == "" {
		return nil, fmt.Errorf("no header line found")
	}
	if st.hand.Hero.Seat == 0 {
		return nil, fmt.Errorf("hand %s: hero not seated", st.hand.ID)
	}

	computeHeroResult(st.hand)
	return st.hand, nil
}

func (st *handState) processLine(line string) error {
	h := st.hand

	if m := reHeader.FindStringSubmatch(line); m != nil {
		h.ID = m[1]
		h.GameType = m[2]
		h.LimitType = m[3]
		var err error
		if h.SB, err = parseCents(m[4]); err != nil {
			return fmt.Errorf("header small blind: %w", err)
		}
		if h.BB, err = parseCents(m[5]); err != nil {
			return fmt.Errorf("header big blind: %w", err)
		}
		ts, err := time.Parse(timeLayout, m[6])
		if err != nil {
			return fmt.Errorf("header timestamp: %w", err)
		}
		h.StartTime = ts
		return nil
	}

	if m := reButton.FindStringSubmatch(line); m != nil {
		h.ButtonSeat, _ = strconv.Atoi(m[1])
		return nil
	}

	if st.stage == stageSetup {
		if m := reSeat.FindStringSubmatch(line); m != nil {
			seat, _ := strconv.Atoi(m[1])
			stack, err := parseCents(m[3])
			if err != nil {
				return fmt.Errorf("seat %d stack: %w", seat, err)
			}
			if h.PlayerBySeat(seat) != nil {
				return fmt.Errorf("hand %s: duplicate seat %d", h.ID, seat)
			}
			p := &Player{
				Seat:         seat,
				Name:         m[2],
				InitialStack: stack,
				IsHero:       strings.Contains(m[2], heroName),
			}
			h.Players = append(h.Players, p)
			if p.IsHero {
				h.Hero.Seat = seat
				h.Hero.InitialStack = stack
			}
			return nil
		}
	}

	// Stage transitions
	if strings.HasPrefix(line, "*** HOLE CARDS ***") {
		st.stage = stageActions
		assignPositions(h)
		return nil
	}
	if strings.HasPrefix(line, "*** SUMMARY ***") {
		st.stage = stageSummary
		return nil
	}

	switch st.stage {
	case stageActions:
		return st.processActionLine(line)
	case stageSummary:
		return st.processSummaryLine(line)
	}
	return nil
}

func (st *handState) processActionLine(line string) error {
	h := st.hand

	if m := reHeroCards.FindStringSubmatch(line); m != nil {
		h.Hero.Cards = parseCards(m[1])
		return nil
	}

	if m := reBoard.FindStringSubmatch(line); m != nil {
		switch m[1] {
		case "FLOP":
			st.street = StreetFlop
		case "TURN":
			st.street = StreetTurn
		case "RIVER":
			st.street = StreetRiver
		}
		// The marker repeats the full board; replace, never append.
		h.Streets[st.street].Board = parseCards(m[2])
		return nil
	}

	if m := reUncalled.FindStringSubmatch(line); m != nil {
		amount, err := parseCents(m[1])
		if err != nil {
			return fmt.Errorf("uncalled bet: %w", err)
		}
		h.Hero.UncalledBetReturned = amount
		return nil
	}

	if m := reAction.FindStringSubmatch(line); m != nil {
		player := h.PlayerByName(m[1])
		if player == nil {
			// Lines for names not seen in setup (room notices etc.) are ignored.
			return nil
		}
		bet, _ := parseCents(m[3])
		amount := bet
		if m[4] != "" {
			amount, _ = parseCents(m[4])
		}
		act := Action{
			Seat:   player.Seat,
			Player: player.Name,
			Kind:   actionKindFor(m[2]),
			Bet:    bet,
			Amount: amount,
			AllIn:  m[5] != "",
		}
		if st.street == StreetPreflop {
			st.applyBlinds(&act, player)
			if act.Kind == ActionRaise && h.PreflopRaiserSeat < 0 {
				h.PreflopRaiserSeat = player.Seat
			}
		}
		street := &h.Streets[st.street]
		street.Actions = append(street.Actions, act)
		return nil
	}

	return nil
}

// applyBlinds folds the blind posting into the blind seat's first voluntary
// action on the preflop street. A raise already carries the blind inside its
// raise-to total, so it only marks the blind as posted.
func (st *handState) applyBlinds(act *Action, player *Player) {
	h := st.hand

	switch act.Kind {
	case ActionRaise:
		if player.Position == PosSB {
			st.sbPosted = true
		}
		if player.Position == PosBB {
			st.bbPosted = true
		}
	case ActionCheck:
		if player.Position == PosBB && !st.bbPosted {
			if act.Amount == 0 {
				act.Amount = h.BB
			}
			st.bbPosted = true
		}
	case ActionCall, ActionFold:
		if player.Position == PosSB && !st.sbPosted {
			act.Amount += h.SB
			st.sbPosted = true
		}
		if player.Position == PosBB && !st.bbPosted {
			act.Amount += h.BB
			st.bbPosted = true
		}
	}
}

func (st *handState) processSummaryLine(line string) error {
	h := st.hand

	if m := reTotalPot.FindStringSubmatch(line); m != nil {
		var err error
		if h.TotalPot, err = parseCents(m[1]); err != nil {
			return fmt.Errorf("total pot: %w", err)
		}
		if h.Rake, err = parseCents(m[2]); err != nil {
			return fmt.Errorf("rake: %w", err)
		}
		if m[3] != "" {
			if h.Jackpot, err = parseCents(m[3]); err != nil {
				return fmt.Errorf("jackpot: %w", err)
			}
		}
		st.synthesizeBigBlindCheck()
		return nil
	}

	if m := reWinner.FindStringSubmatch(line); m != nil {
		amount, err := parseCents(m[2])
		if err != nil {
			return fmt.Errorf("winner amount: %w", err)
		}
		h.Winners = append(h.Winners, Winner{Player: m[1], Amount: amount})
		return nil
	}

	return nil
}

// synthesizeBigBlindCheck covers walked pots where the room emits no action
// line for the big blind at all: the pot equals exactly twice the small blind
// and the BB player has no recorded preflop action. A terminal check is
// appended so the action log replays to the printed pot.
func (st *handState) synthesizeBigBlindCheck() {
	h := st.hand
	if st.bbPosted || len(h.Players) < 2 || h.TotalPot != h.SB*2 {
		return
	}
	for _, p := range h.Players {
		if p.Position != PosBB {
			continue
		}
		if hasPreflopAction(h, p.Seat) {
			return
		}
		st.bbPosted = true
		street := &h.Streets[StreetPreflop]
		street.Actions = append(street.Actions, Action{
			Seat:   p.Seat,
			Player: p.Name,
			Kind:   ActionCheck,
			Amount: h.BB,
		})
		return
	}
}

func hasPreflopAction(h *Hand, seat int) bool {
	for _, a := range h.Streets[StreetPreflop].Actions {
		if a.Seat == seat {
			return true
		}
	}
	return false
}

// assignPositions labels every seated player from the rotation table once the
// seat list and button seat are final. Missing table entries or an unseated
// button leave all positions unknown; the hand is still kept.
func assignPositions(h *Hand) {
	if h.ButtonSeat == 0 || len(h.Players) == 0 {
		return
	}
	if h.PlayerBySeat(h.ButtonSeat) == nil {
		return
	}
	rotation := PositionRotation(len(h.Players), h.ButtonSeat)
	if rotation == nil {
		return
	}

	sorted := make([]*Player, len(h.Players))
	copy(sorted, h.Players)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Seat < sorted[j-1].Seat; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	for i, p := range sorted {
		p.Position = rotation[i]
		if p.IsHero {
			h.Hero.Position = rotation[i]
		}
	}
}

func actionKindFor(verb string) ActionKind {
	switch verb {
	case "folds":
		return ActionFold
	case "checks":
		return ActionCheck
	case "bets":
		return ActionBet
	case "calls":
		return ActionCall
	case "raises":
		return ActionRaise
	default:
		return ActionUnknown
	}
}

// parseCards splits a card list into Cards. Turn and river markers print the
// prior board and the new card in separate bracket groups, so interior
// brackets are stripped first; the result is the cumulative board.
func parseCards(s string) []Card {
	s = strings.NewReplacer("[", "", "]", "").Replace(s)
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		cards = append(cards, Card{Rank: f[:len(f)-1], Suit: f[len(f)-1:]})
	}
	return cards
}

// parseCents converts a dollar string like "2.05", "0.4" or "3" to cents.
func parseCents(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	whole, frac, _ := strings.Cut(s, ".")
	cents := int64(0)
	if whole != "" {
		d, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("amount %q: %w", s, err)
		}
		cents = d * 100
	}
	switch len(frac) {
	case 0:
	case 1:
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("amount %q: %w", s, err)
		}
		cents += d * 10
	default:
		d, err := strconv.ParseInt(frac[:2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("amount %q: %w", s, err)
		}
		cents += d
	}
	return cents, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
