package parser

import (
	"strings"
	"testing"
)

// Single uncontested hand: Hero open-raises from the small blind, takes it down.
const sbStealHand = `
Poker Hand #RC3877234041: Hold'em No Limit ($0.01/$0.02) - 2025/09/11 05:33:30
Table 'RushAndCash17757914' 6-max Seat #1 is the button
Seat 1: 9e47efb ($2.05 in chips)
Seat 2: Hero ($1.13 in chips)
Seat 3: e329e9c8 ($1.99 in chips)
Seat 4: 6051b484 ($2.87 in chips)
Seat 5: 7a0a5e1a ($2.06 in chips)
Seat 6: 6cef3573 ($1.36 in chips)
Hero: posts small blind $0.01
e329e9c8: posts big blind $0.02
*** HOLE CARDS ***
Dealt to Hero [7s 6c]
6051b484: folds
7a0a5e1a: folds
6cef3573: folds
9e47efb: folds
Hero: raises $0.04 to $0.06
e329e9c8: folds
Uncalled bet ($0.04) returned to Hero
*** SHOWDOWN ***
Hero collected $0.04 from pot
*** SUMMARY ***
Total pot $0.04 | Rake $0 | Jackpot $0 | Bingo $0 | Fortune $0 | Tax $0
Seat 2: Hero (small blind) collected ($0.04)
`

// Multi-street hand: Hero calls a raise in the big blind, check-calls down.
const multiStreetHand = `
Poker Hand #RC3877234099: Hold'em No Limit ($0.01/$0.02) - 2025/09/11 05:40:12
Table 'RushAndCash17757914' 6-max Seat #3 is the button
Seat 1: aaaa1111 ($2.00 in chips)
Seat 2: bbbb2222 ($2.00 in chips)
Seat 3: cccc3333 ($2.00 in chips)
Seat 4: dddd4444 ($2.00 in chips)
Seat 5: Hero ($2.00 in chips)
Seat 6: eeee6666 ($2.00 in chips)
dddd4444: posts small blind $0.01
Hero: posts big blind $0.02
*** HOLE CARDS ***
Dealt to Hero [Ah Kd]
eeee6666: folds
aaaa1111: raises $0.04 to $0.06
bbbb2222: folds
cccc3333: folds
dddd4444: folds
Hero: calls $0.04
*** FLOP *** [As 7h 2c]
Hero: checks
aaaa1111: bets $0.08
Hero: calls $0.08
*** TURN *** [As 7h 2c] [Td]
Hero: checks
aaaa1111: checks
*** RIVER *** [As 7h 2c Td] [3s]
Hero: checks
aaaa1111: checks
*** SHOWDOWN ***
*** SUMMARY ***
Total pot $0.29 | Rake $0.01 | Jackpot $0 | Bingo $0 | Fortune $0 | Tax $0
Seat 5: Hero (big blind) won ($0.28)
Seat 1: aaaa1111 showed [Ad Qc] and lost
`

// Hand with no Hero involvement, used by the filter test.
const villainOnlyHand = `
Poker Hand #RC3877234050: Hold'em No Limit ($0.01/$0.02) - 2025/09/11 05:35:00
Table 'RushAndCash17757914' 6-max Seat #2 is the button
Seat 1: aaaa1111 ($2.00 in chips)
Seat 2: bbbb2222 ($2.00 in chips)
aaaa1111: posts small blind $0.01
bbbb2222: posts big blind $0.02
*** HOLE CARDS ***
aaaa1111: folds
*** SUMMARY ***
Total pot $0.02 | Rake $0
Seat 2: bbbb2222 collected ($0.02)
`

func TestParseSBStealHand(t *testing.T) {
	hands := ParseHandHistories([]string{sbStealHand})
	if len(hands) != 1 {
		t.Fatalf("expected 1 hand, got %d", len(hands))
	}
	h := hands[0]

	if h.ID != "RC3877234041" {
		t.Errorf("expected id RC3877234041, got %q", h.ID)
	}
	if h.SB != 1 || h.BB != 2 {
		t.Errorf("expected blinds 1/2 cents, got %d/%d", h.SB, h.BB)
	}
	if len(h.Hero.Cards) != 2 || h.Hero.Cards[0].String() != "7s" || h.Hero.Cards[1].String() != "6c" {
		t.Errorf("expected hero cards [7s 6c], got %v", h.Hero.Cards)
	}

	// Button seat 1 at 6-max: seat 2 is the small blind.
	if h.Hero.Position != PosSB {
		t.Errorf("expected hero position SB, got %s", h.Hero.Position)
	}

	if h.Hero.UncalledBetReturned != 4 {
		t.Errorf("expected 4 cents returned uncalled, got %d", h.Hero.UncalledBetReturned)
	}
	if h.TotalPot != 4 {
		t.Errorf("expected total pot 4 cents, got %d", h.TotalPot)
	}

	// Invested 6 (raise-to total covers the posted blind), won 4, returned 4.
	if h.Hero.Result != 2 {
		t.Errorf("expected net result +2 cents, got %d", h.Hero.Result)
	}

	if h.PreflopRaiserSeat != h.Hero.Seat {
		t.Errorf("expected hero (seat %d) as preflop raiser, got seat %d", h.Hero.Seat, h.PreflopRaiserSeat)
	}
}

func TestParseMultiStreetHand(t *testing.T) {
	hands := ParseHandHistories([]string{multiStreetHand})
	if len(hands) != 1 {
		t.Fatalf("expected 1 hand, got %d", len(hands))
	}
	h := hands[0]

	if h.Hero.Position != PosBB {
		t.Errorf("expected hero position BB, got %s", h.Hero.Position)
	}

	// Boards are cumulative per street.
	if got := len(h.Streets[StreetFlop].Board); got != 3 {
		t.Errorf("expected 3 flop cards, got %d", got)
	}
	if got := len(h.Streets[StreetTurn].Board); got != 4 {
		t.Errorf("expected 4 turn cards, got %d", got)
	}
	if got := len(h.Streets[StreetRiver].Board); got != 5 {
		t.Errorf("expected 5 river cards, got %d", got)
	}
	if last := h.Streets[StreetRiver].Board[4].String(); last != "3s" {
		t.Errorf("expected river card 3s, got %s", last)
	}

	// Hero's preflop call absorbs the posted big blind: printed $0.04 + $0.02.
	var heroCall *Action
	for i, a := range h.Streets[StreetPreflop].Actions {
		if a.Seat == h.Hero.Seat && a.Kind == ActionCall {
			heroCall = &h.Streets[StreetPreflop].Actions[i]
		}
	}
	if heroCall == nil {
		t.Fatal("hero preflop call not recorded")
	}
	if heroCall.Amount != 6 {
		t.Errorf("expected hero call amount 6 cents (4 + big blind), got %d", heroCall.Amount)
	}

	if h.PreflopRaiserSeat != 1 {
		t.Errorf("expected preflop raiser seat 1, got %d", h.PreflopRaiserSeat)
	}

	// Invested: preflop 6, flop 8. Won 28. Net = 28 - 14 = 14.
	if h.Hero.Result != 14 {
		t.Errorf("expected net result +14 cents, got %d", h.Hero.Result)
	}
}

func TestHeroOnlyFilter(t *testing.T) {
	blob := sbStealHand + "\n" + villainOnlyHand + "\n" + multiStreetHand
	hands := ParseHandHistories([]string{blob})

	wantCount := strings.Count(blob, HeroDealtMarker)
	if len(hands) != wantCount {
		t.Errorf("expected %d hands (one per %q marker), got %d", wantCount, HeroDealtMarker, len(hands))
	}
	for _, h := range hands {
		if h.Hero.Seat == 0 {
			t.Errorf("hand %s has no hero seat", h.ID)
		}
	}
}

func TestMalformedChunkSkipped(t *testing.T) {
	garbage := "Poker Hand #broken: this is not a hand\nDealt to Hero [As Ks]\n"
	hands := ParseHandHistories([]string{sbStealHand + "\n" + garbage})
	if len(hands) != 1 {
		t.Fatalf("expected malformed chunk to be skipped, got %d hands", len(hands))
	}
	if hands[0].ID != "RC3877234041" {
		t.Errorf("expected surviving hand RC3877234041, got %q", hands[0].ID)
	}
}

func TestSynthesizedBigBlindCheck(t *testing.T) {
	// Everyone folds and the room prints no line for the big blind at all. The
	// pot equals twice the small blind, so a terminal check is synthesized.
	walk := `
Poker Hand #RC3877234060: Hold'em No Limit ($0.01/$0.02) - 2025/09/11 05:45:00
Table 'RushAndCash17757914' 6-max Seat #2 is the button
Seat 1: aaaa1111 ($2.00 in chips)
Seat 2: bbbb2222 ($2.00 in chips)
Seat 3: cccc3333 ($2.00 in chips)
Seat 4: Hero ($2.00 in chips)
Seat 5: dddd5555 ($2.00 in chips)
Seat 6: eeee6666 ($2.00 in chips)
cccc3333: posts small blind $0.01
*** HOLE CARDS ***
Dealt to Hero [2h 2d]
dddd5555: folds
eeee6666: folds
aaaa1111: folds
bbbb2222: folds
cccc3333: folds
*** SUMMARY ***
Total pot $0.02 | Rake $0
Seat 4: Hero (big blind) collected ($0.02)
`
	hands := ParseHandHistories([]string{walk})
	if len(hands) != 1 {
		t.Fatalf("expected 1 hand, got %d", len(hands))
	}
	h := hands[0]

	if h.Hero.Position != PosBB {
		t.Fatalf("expected hero in the big blind, got %s", h.Hero.Position)
	}

	actions := h.Streets[StreetPreflop].Actions
	last := actions[len(actions)-1]
	if last.Seat != h.Hero.Seat || last.Kind != ActionCheck {
		t.Fatalf("expected synthesized big blind check as final action, got %+v", last)
	}
	if last.Amount != h.BB {
		t.Errorf("expected synthesized check to carry the big blind (%d), got %d", h.BB, last.Amount)
	}

	// Invested 2 (the blind), won 2: a wash.
	if h.Hero.Result != 0 {
		t.Errorf("expected net result 0, got %d", h.Hero.Result)
	}
}

func TestUnknownButtonLeavesPositionsUnset(t *testing.T) {
	// Button seat 9 is not seated; position assignment is skipped but the
	// hand itself survives.
	text := strings.Replace(sbStealHand, "Seat #1 is the button", "Seat #9 is the button", 1)
	hands := ParseHandHistories([]string{text})
	if len(hands) != 1 {
		t.Fatalf("expected 1 hand, got %d", len(hands))
	}
	h := hands[0]
	if h.Hero.Position != PosUnknown {
		t.Errorf("expected unknown hero position, got %s", h.Hero.Position)
	}
	if h.StatsEligible() {
		t.Error("hand without positions must not be stats-eligible")
	}
}

func TestPositionRotation(t *testing.T) {
	// 6-max with the button on seat 3.
	rotation := PositionRotation(6, 3)
	want := []Position{PosMP, PosCO, PosBTN, PosSB, PosBB, PosUTG}
	if len(rotation) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(rotation))
	}
	for i, p := range want {
		if rotation[i] != p {
			t.Errorf("seat %d: expected %s, got %s", i+1, p, rotation[i])
		}
	}

	if PositionRotation(6, 7) != nil {
		t.Error("expected nil rotation for out-of-range button seat")
	}
	if PositionRotation(10, 1) != nil {
		t.Error("expected nil rotation for unsupported table size")
	}

	// Every entry covers all button seats with a full-length rotation.
	for size := 2; size <= 9; size++ {
		for button := 1; button <= size; button++ {
			r := PositionRotation(size, button)
			if len(r) != size {
				t.Errorf("size %d button %d: expected %d labels, got %d", size, button, size, len(r))
				continue
			}
			if r[button-1] != PosBTN {
				t.Errorf("size %d button %d: expected BTN at index %d, got %s", size, button, button-1, r[button-1])
			}
		}
	}
}

func TestParseCents(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"0.01", 1},
		{"0.4", 40},
		{"2", 200},
		{"2.05", 205},
		{"13.37", 1337},
	}
	for _, tt := range tests {
		got, err := parseCents(tt.input)
		if err != nil {
			t.Errorf("parseCents(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCents(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
	if _, err := parseCents(""); err == nil {
		t.Error("expected error for empty amount")
	}
}

func TestParseDeterministic(t *testing.T) {
	a := ParseHandHistories([]string{sbStealHand, multiStreetHand})
	b := ParseHandHistories([]string{sbStealHand, multiStreetHand})
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Hero.Result != b[i].Hero.Result {
			t.Errorf("hand %d differs between runs: %s/%d vs %s/%d",
				i, a[i].ID, a[i].Hero.Result, b[i].ID, b[i].Hero.Result)
		}
	}
}
