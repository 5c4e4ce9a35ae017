// gen_testlog generates synthetic GG-style hand history files for testing.
//
// Each generated file contains a run of Hold'em hands in the export text
// format: header, seat list, button line, hole cards, per-street actions,
// and summary. Hands are drawn from a small set of action templates (steal,
// walk, fold-to-raise, call-down to showdown) with randomized cards, seats
// and timestamps, so the parser and the stats pipeline see realistic variety.
//
// Usage:
//
//	go run ./tools/gen_testlog [flags]
//
// Flags:
//
//	--output-dir  where to write generated files (default: "./testdata/generated")
//	--files       number of files to generate (default: 5)
//	--hands       hands per file (default: 200)
//	--seed        random seed; 0 = use current time (default: 0)
//	--start-date  base date for timestamps, YYYY-MM-DD (default: 2025-01-01)
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AkatukiSora/poker-hand-stats/internal/parser"
)

// ─────────────────────────────────────────────────────────────────────────────
// Card helpers
// ─────────────────────────────────────────────────────────────────────────────

var (
	allRanks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}
	allSuits = []string{"h", "d", "c", "s"}
)

// allCards is the full 52-card deck.
var allCards []string

func init() {
	for _, r := range allRanks {
		for _, s := range allSuits {
			allCards = append(allCards, r+s)
		}
	}
}

// deck deals cards without repetition within one hand.
type deck struct {
	cards []string
	next  int
}

func newDeck(rng *rand.Rand) *deck {
	d := &deck{cards: make([]string, len(allCards))}
	copy(d.cards, allCards)
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
	return d
}

func (d *deck) deal(n int) []string {
	out := d.cards[d.next : d.next+n]
	d.next += n
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Hand construction
// ─────────────────────────────────────────────────────────────────────────────

const (
	sbCents = 1
	bbCents = 2
)

var villainNames = []string{"aaaa1111", "bbbb2222", "cccc3333", "dddd4444", "eeee5555"}

func dollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// tableLayout places Hero and villains in consecutive seats.
type tableLayout struct {
	size       int
	heroSeat   int
	buttonSeat int
	names      map[int]string // seat -> name
	positions  []parser.Position
}

func newLayout(rng *rand.Rand) *tableLayout {
	size := 2 + rng.Intn(5) // 2..6 players
	buttonSeat := 1 + rng.Intn(size)
	heroSeat := 1 + rng.Intn(size)

	l := &tableLayout{
		size:       size,
		heroSeat:   heroSeat,
		buttonSeat: buttonSeat,
		names:      make(map[int]string, size),
		positions:  parser.PositionRotation(size, buttonSeat),
	}
	v := 0
	for seat := 1; seat <= size; seat++ {
		if seat == heroSeat {
			l.names[seat] = "Hero"
		} else {
			l.names[seat] = villainNames[v%len(villainNames)]
			v++
		}
	}
	return l
}

func (l *tableLayout) position(seat int) parser.Position {
	return l.positions[seat-1]
}

// seatWith returns the seat holding the given position label.
func (l *tableLayout) seatWith(pos parser.Position) int {
	for seat := 1; seat <= l.size; seat++ {
		if l.position(seat) == pos {
			return seat
		}
	}
	return 0
}

// actionOrder lists seats in preflop acting order (left of the big blind,
// or left of the button heads-up).
func (l *tableLayout) actionOrder() []int {
	first := l.seatWith(parser.PosBB)%l.size + 1
	if l.size == 2 {
		first = l.buttonSeat
	}
	order := make([]int, 0, l.size)
	for i := 0; i < l.size; i++ {
		order = append(order, (first-1+i)%l.size+1)
	}
	return order
}

type handBuilder struct {
	lines []string
}

func (b *handBuilder) addf(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// writeSetup emits the header, seat list and button line.
func (b *handBuilder) writeSetup(id string, ts time.Time, l *tableLayout, rng *rand.Rand) {
	b.addf("Poker Hand #RC%s: Hold'em No Limit ($%s/$%s) - %s",
		id, dollars(sbCents), dollars(bbCents), ts.Format("2006/01/02 15:04:05"))
	b.addf("Table 'RushAndCash%s' %d-max Seat #%d is the button", id[:4], maxSeats(l.size), l.buttonSeat)
	for seat := 1; seat <= l.size; seat++ {
		stack := int64(100+rng.Intn(300)) * bbCents
		b.addf("Seat %d: %s ($%s in chips)", seat, l.names[seat], dollars(stack))
	}
}

// maxSeats reports the table size printed on the button line.
func maxSeats(players int) int {
	if players <= 6 {
		return 6
	}
	return 9
}

func (b *handBuilder) writeSummary(pot, rake int64, winnerSeat int, l *tableLayout, collected int64) {
	b.addf("*** SUMMARY ***")
	b.addf("Total pot $%s | Rake $%s | Jackpot $%s | Bingo $0.00",
		dollars(pot), dollars(rake), dollars(0))
	b.addf("Seat %d: %s (%s) collected ($%s)",
		winnerSeat, l.names[winnerSeat], positionNote(l.position(winnerSeat)), dollars(collected))
}

func positionNote(pos parser.Position) string {
	switch pos {
	case parser.PosBTN:
		return "button"
	case parser.PosSB:
		return "small blind"
	case parser.PosBB:
		return "big blind"
	default:
		return strings.ToLower(pos.String())
	}
}

// genHand produces one complete hand block from a random template.
func genHand(id string, ts time.Time, rng *rand.Rand) string {
	l := newLayout(rng)
	d := newDeck(rng)
	b := &handBuilder{}

	b.writeSetup(id, ts, l, rng)
	b.addf("*** HOLE CARDS ***")
	hole := d.deal(2)
	b.addf("Dealt to Hero [%s %s]", hole[0], hole[1])

	switch rng.Intn(4) {
	case 0:
		genSteal(b, l)
	case 1:
		genWalk(b, l)
	case 2:
		genFoldToRaise(b, l)
	default:
		genCallDown(b, l, d, rng)
	}

	return strings.Join(b.lines, "\n") + "\n"
}

// genSteal: Hero raises first in, everyone folds. Hero matches the big
// blind, so the pot is 2*BB plus a dead small blind when a third player
// posted it.
func genSteal(b *handBuilder, l *tableLayout) {
	heroPos := l.position(l.heroSeat)
	if heroPos == parser.PosBB {
		genWalk(b, l)
		return
	}
	raiseTo := int64(3 * bbCents)
	for _, seat := range l.actionOrder() {
		if seat == l.heroSeat {
			b.addf("%s: raises $%s to $%s", l.names[seat], dollars(raiseTo-bbCents), dollars(raiseTo))
		} else {
			b.addf("%s: folds", l.names[seat])
		}
	}
	pot := potAfterFolds(l, l.heroSeat)
	b.addf("Uncalled bet ($%s) returned to Hero", dollars(raiseTo-bbCents))
	b.writeSummary(pot, 0, l.heroSeat, l, pot)
}

// genWalk: everyone folds to the big blind. When Hero is the BB the room
// emits no action line for the walk at all.
func genWalk(b *handBuilder, l *tableLayout) {
	bbSeat := l.seatWith(parser.PosBB)
	for _, seat := range l.actionOrder() {
		if seat == bbSeat {
			continue
		}
		b.addf("%s: folds", l.names[seat])
	}
	if bbSeat != l.heroSeat {
		b.addf("%s: checks", l.names[bbSeat])
	}
	b.writeSummary(sbCents*2, 0, bbSeat, l, sbCents*2)
}

// genFoldToRaise: the first villain to act opens, Hero and everyone else
// fold.
func genFoldToRaise(b *handBuilder, l *tableLayout) {
	order := l.actionOrder()
	if l.size == 2 && order[0] == l.heroSeat {
		// Heads-up Hero acts first; a fold would end the hand before the
		// villain could raise, so steal instead.
		genSteal(b, l)
		return
	}
	raiseTo := int64(3 * bbCents)
	raiserSeat := 0
	for _, seat := range order {
		if seat != l.heroSeat {
			raiserSeat = seat
			break
		}
	}
	for _, seat := range order {
		if seat == raiserSeat {
			b.addf("%s: raises $%s to $%s", l.names[seat], dollars(raiseTo-bbCents), dollars(raiseTo))
		} else {
			b.addf("%s: folds", l.names[seat])
		}
	}
	pot := potAfterFolds(l, raiserSeat)
	b.addf("Uncalled bet ($%s) returned to %s", dollars(raiseTo-bbCents), l.names[raiserSeat])
	b.writeSummary(pot, 0, raiserSeat, l, pot)
}

// potAfterFolds is the pot when an open raise takes it down: the matched
// big blind plus a dead small blind when someone other than the raiser
// posted one.
func potAfterFolds(l *tableLayout, raiserSeat int) int64 {
	pot := int64(2 * bbCents)
	if sbSeat := l.sbPosterSeat(); sbSeat != 0 && sbSeat != raiserSeat {
		pot += sbCents
	}
	return pot
}

// sbPosterSeat is the seat posting a small blind: the SB seat when the
// table has one, the button heads-up, and nobody at short tables without
// an SB label.
func (l *tableLayout) sbPosterSeat() int {
	if seat := l.seatWith(parser.PosSB); seat != 0 {
		return seat
	}
	if l.size == 2 {
		return l.buttonSeat
	}
	return 0
}

// genCallDown: the first villain to act opens, Hero calls, the board runs
// out checked down to showdown, random winner.
func genCallDown(b *handBuilder, l *tableLayout, d *deck, rng *rand.Rand) {
	order := l.actionOrder()
	if order[0] == l.heroSeat {
		// Hero acts before any villain could open; steal instead.
		genSteal(b, l)
		return
	}
	raiseTo := int64(3 * bbCents)
	raiserSeat := order[0]
	for _, seat := range order {
		name := l.names[seat]
		switch seat {
		case raiserSeat:
			b.addf("%s: raises $%s to $%s", name, dollars(raiseTo-bbCents), dollars(raiseTo))
		case l.heroSeat:
			// A blind caller only puts in the difference; the posted blind
			// is already in the pot.
			call := raiseTo
			switch l.position(seat) {
			case parser.PosSB:
				call -= sbCents
			case parser.PosBB:
				call -= bbCents
			}
			b.addf("%s: calls $%s", name, dollars(call))
		default:
			b.addf("%s: folds", name)
		}
	}

	pot := raiseTo * 2
	if sbSeat := l.sbPosterSeat(); sbSeat != 0 && sbSeat != l.heroSeat && sbSeat != raiserSeat {
		pot += sbCents
	}
	if bbSeat := l.seatWith(parser.PosBB); bbSeat != l.heroSeat && bbSeat != raiserSeat {
		pot += bbCents
	}

	flop := d.deal(3)
	b.addf("*** FLOP *** [%s %s %s]", flop[0], flop[1], flop[2])
	b.addf("%s: checks", l.names[firstPostflop(l, raiserSeat)])
	b.addf("%s: checks", l.names[secondPostflop(l, raiserSeat)])

	turn := d.deal(1)
	b.addf("*** TURN *** [%s %s %s] [%s]", flop[0], flop[1], flop[2], turn[0])
	b.addf("%s: checks", l.names[firstPostflop(l, raiserSeat)])
	b.addf("%s: checks", l.names[secondPostflop(l, raiserSeat)])

	river := d.deal(1)
	b.addf("*** RIVER *** [%s %s %s %s] [%s]", flop[0], flop[1], flop[2], turn[0], river[0])
	b.addf("%s: checks", l.names[firstPostflop(l, raiserSeat)])
	b.addf("%s: checks", l.names[secondPostflop(l, raiserSeat)])

	winnerSeat := l.heroSeat
	if rng.Intn(2) == 0 {
		winnerSeat = raiserSeat
	}
	rake := pot / 20
	b.writeSummary(pot, rake, winnerSeat, l, pot-rake)
}

// firstPostflop returns whichever of Hero and the raiser acts first after
// the flop (closest left of the button).
func firstPostflop(l *tableLayout, raiserSeat int) int {
	for i := 1; i <= l.size; i++ {
		seat := (l.buttonSeat-1+i)%l.size + 1
		if seat == l.heroSeat || seat == raiserSeat {
			return seat
		}
	}
	return l.heroSeat
}

func secondPostflop(l *tableLayout, raiserSeat int) int {
	if firstPostflop(l, raiserSeat) == l.heroSeat {
		return raiserSeat
	}
	return l.heroSeat
}

// ─────────────────────────────────────────────────────────────────────────────
// File generation
// ─────────────────────────────────────────────────────────────────────────────

func generateFile(path string, hands int, start time.Time, rng *rand.Rand) (int, error) {
	var sb strings.Builder
	ts := start
	for i := 0; i < hands; i++ {
		id := fmt.Sprintf("%d%06d", 3000000+rng.Intn(999999), i)
		sb.WriteString(genHand(id, ts, rng))
		sb.WriteString("\n\n")
		ts = ts.Add(time.Duration(20+rng.Intn(90)) * time.Second)
		// Occasional gap so the session splitter has something to find.
		if rng.Intn(40) == 0 {
			ts = ts.Add(2 * time.Hour)
		}
	}

	content := sb.String()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return 0, err
	}

	// Sanity pass: every generated hand must survive the real parser.
	parsed := parser.ParseHandHistories([]string{content})
	return len(parsed), nil
}

func main() {
	outputDir := flag.String("output-dir", "./testdata/generated", "where to write generated files")
	fileCount := flag.Int("files", 5, "number of files to generate")
	handCount := flag.Int("hands", 200, "hands per file")
	seed := flag.Int64("seed", 0, "random seed; 0 = use current time")
	startDate := flag.String("start-date", "2025-01-01", "base date for timestamps, YYYY-MM-DD")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	start, err := time.Parse("2006-01-02", *startDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad --start-date: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *fileCount; i++ {
		name := fmt.Sprintf("GG%s - RushAndCash - %s.txt",
			start.AddDate(0, 0, i).Format("20060102"), dollars(bbCents))
		path := filepath.Join(*outputDir, name)
		parsed, err := generateFile(path, *handCount, start.AddDate(0, 0, i), rng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d hands written, %d parsed back\n", path, *handCount, parsed)
	}
}
