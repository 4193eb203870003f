package mailbox

import (
	"strings"

	"chess-test-utils/model"
)

// san returns the Standard Algebraic Notation of mv, a legal move of p.
func (p *position) san(mv Move, chess960 bool) string {
	var sb strings.Builder
	piece := p.squares[mv.from]
	switch {
	case mv.castling() && mv.to%8 == 6:
		sb.WriteString("O-O")
	case mv.castling():
		sb.WriteString("O-O-O")
	case piece.Type() == model.Pawn:
		if mv.from%8 != mv.to%8 {
			sb.WriteByte('a' + byte(mv.from%8))
			sb.WriteByte('x')
		}
		sb.WriteString(squareName(mv.to))
		if mv.promotion != model.None {
			sb.WriteByte('=')
			sb.WriteString(mv.promotion.String())
		}
	default:
		sb.WriteString(piece.Type().String())
		sb.WriteString(p.disambiguation(mv, p.legalMoves(chess960)))
		if p.squares[mv.to] != model.None {
			sb.WriteByte('x')
		}
		sb.WriteString(squareName(mv.to))
	}
	if next := p.play(mv); next.inCheck(next.side) {
		if len(next.legalMoves(chess960)) == 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell mv apart from the
// moves of another piece of the same kind to the same square.
func (p *position) disambiguation(mv Move, moves []Move) string {
	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range moves {
		if other.castling() || other.to != mv.to || other.from == mv.from || p.squares[other.from] != p.squares[mv.from] {
			continue
		}
		ambiguous = true
		sameFile = sameFile || other.from%8 == mv.from%8
		sameRank = sameRank || other.from/8 == mv.from/8
	}
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return squareName(mv.from)[:1]
	case !sameRank:
		return squareName(mv.from)[1:]
	default:
		return squareName(mv.from)
	}
}

// result returns the PGN game termination marker of p: the game is over on checkmate and stalemate.
func (p *position) result(chess960 bool) string {
	if len(p.legalMoves(chess960)) > 0 {
		return "*"
	}
	if !p.inCheck(p.side) {
		return "1/2-1/2"
	}
	if p.side == white {
		return "0-1"
	}
	return "1-0"
}
