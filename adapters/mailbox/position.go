// Package mailbox is a plain 8x8 array board playing standard chess and Chess960.
//
// None of the move generators the module plugs in handles Chess960 castling, so the harness
// runs its Chess960 suites against this board. It favors readability over speed.
package mailbox

import (
	"fmt"
	"strconv"
	"strings"

	"chess-test-utils/model"
)

const (
	white = 0
	black = 1
)

const noSquare int8 = -1

// Castling wings. position.castle is indexed by color*2 + wing.
const (
	queenSide = 0
	kingSide  = 1
)

type position struct {
	squares [64]model.Piece
	side    int
	// castle holds the squares of the rooks allowed to castle.
	castle [4]int8
	ep     int8
	rule50 int
	moveNr int
}

var (
	knightJumps = [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	rookDirs    = [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	bishopDirs  = [][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	queenDirs   = append(append([][2]int{}, rookDirs...), bishopDirs...)
)

// offset returns the square df files and dr ranks away from sq, noSquare when off the board.
func offset(sq int8, df, dr int) int8 {
	f, r := int(sq%8)+df, int(sq/8)+dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return noSquare
	}
	return int8(r*8 + f)
}

func squareName(sq int8) string {
	return string([]byte{'a' + byte(sq%8), '1' + byte(sq/8)})
}

func colored(t model.Piece, color int) model.Piece {
	if color == black {
		return t.Black()
	}
	return t
}

func colorOf(p model.Piece) int {
	if p.White() {
		return white
	}
	return black
}

func backRank(color int) int8 {
	if color == black {
		return 56
	}
	return 0
}

// castleTargets returns where the king and the rook land when castling on wing.
func castleTargets(color, wing int) (kingTo, rookTo int8) {
	base := backRank(color)
	if wing == kingSide {
		return base + 6, base + 5
	}
	return base + 2, base + 3
}

func parseFEN(fen string) (position, error) {
	var p position
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return p, fmt.Errorf("%w: invalid FEN %q: expected 6 fields, got %d", model.ErrInvalidArgument, fen, len(fields))
	}
	invalid := func(msg string) (position, error) {
		return position{}, fmt.Errorf("%w: invalid FEN %q: %s", model.ErrInvalidArgument, fen, msg)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return invalid("expected 8 ranks")
	}
	for i, rank := range ranks {
		file := 0
		for _, c := range []byte(rank) {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := pieceFromLetter(c)
			if !ok || file > 7 {
				return invalid("bad rank " + rank)
			}
			p.squares[(7-i)*8+file] = piece
			file++
		}
		if file != 8 {
			return invalid("bad rank " + rank)
		}
	}
	if p.king(white) == noSquare || p.king(black) == noSquare {
		return invalid("missing king")
	}

	switch fields[1] {
	case "w":
		p.side = white
	case "b":
		p.side = black
	default:
		return invalid("side to move must be 'w' or 'b'")
	}

	p.castle = [4]int8{noSquare, noSquare, noSquare, noSquare}
	if fields[2] != "-" {
		for _, c := range []byte(fields[2]) {
			if !p.setCastle(c) {
				return invalid("bad castling rights " + fields[2])
			}
		}
	}

	p.ep = noSquare
	if fields[3] != "-" {
		sq, err := model.SquareIndex(fields[3])
		if err != nil {
			return invalid("bad en passant square " + fields[3])
		}
		p.ep = int8(sq)
	}

	var err error
	if p.rule50, err = strconv.Atoi(fields[4]); err != nil {
		return invalid("bad halfmove clock " + fields[4])
	}
	if p.moveNr, err = strconv.Atoi(fields[5]); err != nil {
		return invalid("bad fullmove number " + fields[5])
	}
	return p, nil
}

func pieceFromLetter(c byte) (model.Piece, bool) {
	i := strings.IndexByte("pnbrqk", c|0x20)
	if i < 0 {
		return model.None, false
	}
	piece := model.Pawn + model.Piece(i)
	if c >= 'a' {
		piece = piece.Black()
	}
	return piece, true
}

// setCastle records a castling right: K/Q for the outermost rook of a wing, or the file
// letter of the rook (X-FEN and Shredder-FEN). Rights without a king on the back rank or
// without a matching rook are ignored. It returns false for an unknown letter.
func (p *position) setCastle(c byte) bool {
	color := white
	if c >= 'a' {
		color = black
	}
	upper := c &^ 0x20
	if upper != 'K' && upper != 'Q' && (upper < 'A' || upper > 'H') {
		return false
	}
	king := p.king(color)
	base := backRank(color)
	if king < base || king > base+7 {
		return true
	}
	rook := colored(model.Rook, color)
	found := noSquare
	switch upper {
	case 'K':
		for sq := base + 7; sq > king; sq-- {
			if p.squares[sq] == rook {
				found = sq
				break
			}
		}
	case 'Q':
		for sq := base; sq < king; sq++ {
			if p.squares[sq] == rook {
				found = sq
				break
			}
		}
	default:
		if sq := base + int8(upper-'A'); p.squares[sq] == rook {
			found = sq
		}
	}
	if found == noSquare || found == king {
		return true
	}
	wing := kingSide
	if found < king {
		wing = queenSide
	}
	p.castle[color*2+wing] = found
	return true
}

func (p *position) fen() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.squares[rank*8+file]
			if piece == model.None {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteString([]string{" w", " b"}[p.side])

	rights := ""
	for _, color := range []int{white, black} {
		for _, wing := range []int{kingSide, queenSide} {
			if sq := p.castle[color*2+wing]; sq != noSquare {
				rights += p.castleLetter(color, wing, sq)
			}
		}
	}
	if rights == "" {
		rights = "-"
	}
	ep := "-"
	if p.ep != noSquare {
		ep = squareName(p.ep)
	}
	fmt.Fprintf(&sb, " %s %s %d %d", rights, ep, p.rule50, p.moveNr)
	return sb.String()
}

// castleLetter returns K or Q when the castling rook is the outermost one of its wing,
// its file letter otherwise.
func (p *position) castleLetter(color, wing int, rook int8) string {
	letter := byte('A' + rook%8)
	outermost := true
	edge, step := backRank(color), int8(-1)
	if wing == kingSide {
		edge, step = backRank(color)+7, 1
	}
	for sq := rook + step; sq != edge+step; sq += step {
		if p.squares[sq] == colored(model.Rook, color) {
			outermost = false
		}
	}
	if outermost {
		letter = "QK"[wing]
	}
	if color == black {
		letter |= 0x20
	}
	return string(letter)
}

func (p *position) king(color int) int8 {
	king := colored(model.King, color)
	for sq := int8(0); sq < 64; sq++ {
		if p.squares[sq] == king {
			return sq
		}
	}
	return noSquare
}

// attacked reports whether a piece of color by attacks sq.
func (p *position) attacked(sq int8, by int) bool {
	// A pawn attacks sq from the rank behind it, seen from its side.
	dr := -1
	if by == black {
		dr = 1
	}
	for _, df := range []int{-1, 1} {
		if s := offset(sq, df, dr); s != noSquare && p.squares[s] == colored(model.Pawn, by) {
			return true
		}
	}
	if p.jumps(sq, knightJumps, colored(model.Knight, by)) || p.jumps(sq, kingSteps, colored(model.King, by)) {
		return true
	}
	queen := colored(model.Queen, by)
	return p.slides(sq, rookDirs, colored(model.Rook, by), queen) ||
		p.slides(sq, bishopDirs, colored(model.Bishop, by), queen)
}

func (p *position) jumps(sq int8, steps [][2]int, piece model.Piece) bool {
	for _, d := range steps {
		if s := offset(sq, d[0], d[1]); s != noSquare && p.squares[s] == piece {
			return true
		}
	}
	return false
}

func (p *position) slides(sq int8, dirs [][2]int, slider, queen model.Piece) bool {
	for _, d := range dirs {
		for s := offset(sq, d[0], d[1]); s != noSquare; s = offset(s, d[0], d[1]) {
			if piece := p.squares[s]; piece != model.None {
				if piece == slider || piece == queen {
					return true
				}
				break
			}
		}
	}
	return false
}

func (p *position) inCheck(color int) bool {
	return p.attacked(p.king(color), 1-color)
}

func (p *position) legalMoves(chess960 bool) []Move {
	pseudo := p.pseudoMoves(chess960)
	legal := pseudo[:0]
	for _, mv := range pseudo {
		if next := p.play(mv); !next.inCheck(p.side) {
			legal = append(legal, mv)
		}
	}
	return legal
}

func (p *position) pseudoMoves(chess960 bool) []Move {
	moves := make([]Move, 0, 64)
	for from := int8(0); from < 64; from++ {
		piece := p.squares[from]
		if piece == model.None || colorOf(piece) != p.side {
			continue
		}
		switch piece.Type() {
		case model.Pawn:
			moves = p.pawnMoves(moves, from)
		case model.Knight:
			moves = p.stepMoves(moves, from, knightJumps, false)
		case model.Bishop:
			moves = p.stepMoves(moves, from, bishopDirs, true)
		case model.Rook:
			moves = p.stepMoves(moves, from, rookDirs, true)
		case model.Queen:
			moves = p.stepMoves(moves, from, queenDirs, true)
		case model.King:
			moves = p.stepMoves(moves, from, kingSteps, false)
		}
	}
	return p.castlingMoves(moves, chess960)
}

func (p *position) stepMoves(moves []Move, from int8, dirs [][2]int, slide bool) []Move {
	for _, d := range dirs {
		for to := offset(from, d[0], d[1]); to != noSquare; to = offset(to, d[0], d[1]) {
			target := p.squares[to]
			if target != model.None && colorOf(target) == p.side {
				break
			}
			moves = append(moves, Move{from: from, to: to, rook: noSquare})
			if target != model.None || !slide {
				break
			}
		}
	}
	return moves
}

var promotions = []model.Piece{model.Queen, model.Rook, model.Bishop, model.Knight}

func (p *position) pawnMoves(moves []Move, from int8) []Move {
	dr, startRank, lastRank := 1, int8(1), int8(7)
	if p.side == black {
		dr, startRank, lastRank = -1, 6, 0
	}
	add := func(to int8) {
		if to/8 != lastRank {
			moves = append(moves, Move{from: from, to: to, rook: noSquare})
			return
		}
		for _, promotion := range promotions {
			moves = append(moves, Move{from: from, to: to, rook: noSquare, promotion: promotion})
		}
	}
	if to := offset(from, 0, dr); to != noSquare && p.squares[to] == model.None {
		add(to)
		if from/8 == startRank {
			if to2 := offset(to, 0, dr); p.squares[to2] == model.None {
				add(to2)
			}
		}
	}
	for _, df := range []int{-1, 1} {
		to := offset(from, df, dr)
		if to == noSquare {
			continue
		}
		if target := p.squares[to]; (target != model.None && colorOf(target) != p.side) || to == p.ep {
			add(to)
		}
	}
	return moves
}

func (p *position) castlingMoves(moves []Move, chess960 bool) []Move {
	kingFrom := p.king(p.side)
	for _, wing := range []int{kingSide, queenSide} {
		rookFrom := p.castle[p.side*2+wing]
		if rookFrom == noSquare {
			continue
		}
		kingTo, rookTo := castleTargets(p.side, wing)
		if p.canCastle(kingFrom, rookFrom, kingTo, rookTo) {
			moves = append(moves, Move{from: kingFrom, to: kingTo, rook: rookFrom, chess960: chess960})
		}
	}
	return moves
}

// canCastle checks that the squares crossed by the king and the rook are empty and that none
// of the squares the king stands on or crosses is attacked. Attacks are looked for with both
// pieces off the board, so a rook shielding its own king cannot castle away.
func (p *position) canCastle(kingFrom, rookFrom, kingTo, rookTo int8) bool {
	if p.squares[kingFrom] != colored(model.King, p.side) || p.squares[rookFrom] != colored(model.Rook, p.side) {
		return false
	}
	lo, hi := min(kingFrom, rookFrom, kingTo, rookTo), max(kingFrom, rookFrom, kingTo, rookTo)
	for sq := lo; sq <= hi; sq++ {
		if sq != kingFrom && sq != rookFrom && p.squares[sq] != model.None {
			return false
		}
	}
	bare := *p
	bare.squares[kingFrom], bare.squares[rookFrom] = model.None, model.None
	lo, hi = min(kingFrom, kingTo), max(kingFrom, kingTo)
	for sq := lo; sq <= hi; sq++ {
		if bare.attacked(sq, 1-p.side) {
			return false
		}
	}
	return true
}

// play returns the position reached by mv, which must be a pseudo legal move of p.
func (p position) play(mv Move) position {
	us := p.side
	ep := p.ep
	p.ep = noSquare
	piece := p.squares[mv.from]
	if mv.castling() {
		rookTo := mv.to - 1
		if mv.to%8 == 2 {
			rookTo = mv.to + 1
		}
		p.squares[mv.from], p.squares[mv.rook] = model.None, model.None
		p.squares[mv.to], p.squares[rookTo] = colored(model.King, us), colored(model.Rook, us)
		p.castle[us*2+queenSide], p.castle[us*2+kingSide] = noSquare, noSquare
		p.rule50++
	} else {
		captured := p.squares[mv.to]
		pawn := piece.Type() == model.Pawn
		if pawn {
			switch {
			case mv.to-mv.from == 16 || mv.from-mv.to == 16:
				p.ep = (mv.from + mv.to) / 2
			case mv.to == ep && captured == model.None && mv.to%8 != mv.from%8:
				p.squares[mv.from/8*8+mv.to%8] = model.None
			}
			if mv.promotion != model.None {
				piece = colored(mv.promotion, us)
			}
		}
		for i, sq := range p.castle {
			if sq == mv.from || sq == mv.to {
				p.castle[i] = noSquare
			}
		}
		if piece.Type() == model.King {
			p.castle[us*2+queenSide], p.castle[us*2+kingSide] = noSquare, noSquare
		}
		if pawn || captured != model.None {
			p.rule50 = 0
		} else {
			p.rule50++
		}
		p.squares[mv.to] = piece
		p.squares[mv.from] = model.None
	}
	if us == black {
		p.moveNr++
	}
	p.side = 1 - us
	return p
}
