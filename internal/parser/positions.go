package parser

// positionTable maps (table size, button seat) to the position labels of the
// seated players in ascending seat order. The rotation for each size is fixed;
// the button seat selects which rotation lines up with seat #1.
//
// Heads-up and 3-5 handed tables have no small blind seat label in this room's
// exports (the button posts it), matching the source format.
var positionTable = map[int]map[int][]Position{
	2: {
		1: {PosBTN, PosBB},
		2: {PosBB, PosBTN},
	},
	3: {
		1: {PosBTN, PosBB, PosUTG},
		2: {PosUTG, PosBTN, PosBB},
		3: {PosBB, PosUTG, PosBTN},
	},
	4: {
		1: {PosBTN, PosBB, PosUTG, PosCO},
		2: {PosCO, PosBTN, PosBB, PosUTG},
		3: {PosUTG, PosCO, PosBTN, PosBB},
		4: {PosBB, PosUTG, PosCO, PosBTN},
	},
	5: {
		1: {PosBTN, PosBB, PosUTG, PosMP, PosCO},
		2: {PosCO, PosBTN, PosBB, PosUTG, PosMP},
		3: {PosMP, PosCO, PosBTN, PosBB, PosUTG},
		4: {PosUTG, PosMP, PosCO, PosBTN, PosBB},
		5: {PosBB, PosUTG, PosMP, PosCO, PosBTN},
	},
	6: {
		1: {PosBTN, PosSB, PosBB, PosUTG, PosMP, PosCO},
		2: {PosCO, PosBTN, PosSB, PosBB, PosUTG, PosMP},
		3: {PosMP, PosCO, PosBTN, PosSB, PosBB, PosUTG},
		4: {PosUTG, PosMP, PosCO, PosBTN, PosSB, PosBB},
		5: {PosBB, PosUTG, PosMP, PosCO, PosBTN, PosSB},
		6: {PosSB, PosBB, PosUTG, PosMP, PosCO, PosBTN},
	},
	7: {
		1: {PosBTN, PosSB, PosBB, PosUTG, PosMP, PosHJ, PosCO},
		2: {PosCO, PosBTN, PosSB, PosBB, PosUTG, PosMP, PosHJ},
		3: {PosHJ, PosCO, PosBTN, PosSB, PosBB, PosUTG, PosMP},
		4: {PosMP, PosHJ, PosCO, PosBTN, PosSB, PosBB, PosUTG},
		5: {PosUTG, PosMP, PosHJ, PosCO, PosBTN, PosSB, PosBB},
		6: {PosBB, PosUTG, PosMP, PosHJ, PosCO, PosBTN, PosSB},
		7: {PosSB, PosBB, PosUTG, PosMP, PosHJ, PosCO, PosBTN},
	},
	8: {
		1: {PosBTN, PosSB, PosBB, PosUTG, PosUTG1, PosMP, PosHJ, PosCO},
		2: {PosCO, PosBTN, PosSB, PosBB, PosUTG, PosUTG1, PosMP, PosHJ},
		3: {PosHJ, PosCO, PosBTN, PosSB, PosBB, PosUTG, PosUTG1, PosMP},
		4: {PosMP, PosHJ, PosCO, PosBTN, PosSB, PosBB, PosUTG, PosUTG1},
		5: {PosUTG1, PosMP, PosHJ, PosCO, PosBTN, PosSB, PosBB, PosUTG},
		6: {PosUTG, PosUTG1, PosMP, PosHJ, PosCO, PosBTN, PosSB, PosBB},
		7: {PosBB, PosUTG, PosUTG1, PosMP, PosHJ, PosCO, PosBTN, PosSB},
		8: {PosSB, PosBB, PosUTG, PosUTG1, PosMP, PosHJ, PosCO, PosBTN},
	},
	9: {
		1: {PosBTN, PosSB, PosBB, PosUTG, PosUTG1, PosMP, PosLJ, PosHJ, PosCO},
		2: {PosCO, PosBTN, PosSB, PosBB, PosUTG, PosUTG1, PosMP, PosLJ, PosHJ},
		3: {PosHJ, PosCO, PosBTN, PosSB, PosBB, PosUTG, PosUTG1, PosMP, PosLJ},
		4: {PosLJ, PosHJ, PosCO, PosBTN, PosSB, PosBB, PosUTG, PosUTG1, PosMP},
		5: {PosMP, PosLJ, PosHJ, PosCO, PosBTN, PosSB, PosBB, PosUTG, PosUTG1},
		6: {PosUTG1, PosMP, PosLJ, PosHJ, PosCO, PosBTN, PosSB, PosBB, PosUTG},
		7: {PosUTG, PosUTG1, PosMP, PosLJ, PosHJ, PosCO, PosBTN, PosSB, PosBB},
		8: {PosBB, PosUTG, PosUTG1, PosMP, PosLJ, PosHJ, PosCO, PosBTN, PosSB},
		9: {PosSB, PosBB, PosUTG, PosUTG1, PosMP, PosLJ, PosHJ, PosCO, PosBTN},
	},
}

// PositionRotation returns the canonical rotation for the given table size and
// button seat, or nil when the pair has no entry.
func PositionRotation(tableSize, buttonSeat int) []Position {
	byButton, ok := positionTable[tableSize]
	if !ok {
		return nil
	}
	return byButton[buttonSeat]
}
