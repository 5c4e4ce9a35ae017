package parser

import "strings"

// computeHeroResult fills Hero.Result from the parsed action log and summary.
//
// Investment is replayed per street: a raise replaces Hero's running street
// contribution with its raise-to total, every other action adds its amount.
// The net result is winnings plus the uncalled bet returned minus the total
// invested, all in cents.
func computeHeroResult(h *Hand) {
	var invested int64
	for s := StreetPreflop; s < streetCount; s++ {
		var contribution int64
		for _, a := range h.Streets[s].Actions {
			if a.Seat != h.Hero.Seat {
				continue
			}
			if a.Kind == ActionRaise {
				contribution = a.Amount
			} else {
				contribution += a.Amount
			}
		}
		invested += contribution
	}

	// Summary winner lines append the seat's position to the name
	// ("Hero (small blind)"), so match by substring.
	var won int64
	for _, w := range h.Winners {
		if strings.Contains(w.Player, heroName) {
			won += w.Amount
		}
	}

	h.Hero.Result = won + h.Hero.UncalledBetReturned - invested
}
