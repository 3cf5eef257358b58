package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// SimultaneousPhase tracks progress of a simultaneous-move round.
type SimultaneousPhase uint8

const (
	// AwaitingMoves: at least one player (Independent) or the leader
	// (LeaderFollower) has not submitted yet.
	AwaitingMoves SimultaneousPhase = iota
	// AwaitingFollower: the leader has submitted in LeaderFollower mode;
	// only the follower may still submit.
	AwaitingFollower
	// ReadyToExecute: both moves are in hand and ApplySimultaneousMoves
	// may be called.
	ReadyToExecute
)

func (p SimultaneousPhase) String() string {
	switch p {
	case AwaitingMoves:
		return "AwaitingMoves"
	case AwaitingFollower:
		return "AwaitingFollower"
	case ReadyToExecute:
		return "ReadyToExecute"
	default:
		return "?"
	}
}

// SimultaneousMoveState is the submission-side state machine for a single
// simultaneous round: it tracks which pit each player has chosen without
// executing anything. ApplySimultaneousMoves performs the actual sowing
// once both moves are in.
type SimultaneousMoveState struct {
	leaderFollower bool
	leader         lang.Optional[Player]

	p0Move lang.Optional[int]
	p1Move lang.Optional[int]
}

// NewIndependentMoveState starts a round where either player may submit in
// any order.
func NewIndependentMoveState() *SimultaneousMoveState {
	return &SimultaneousMoveState{}
}

// NewLeaderFollowerMoveState starts a round where leader must submit before
// the other player (the follower) is allowed to.
func NewLeaderFollowerMoveState(leader Player) *SimultaneousMoveState {
	return &SimultaneousMoveState{leaderFollower: true, leader: lang.Some(leader)}
}

// Phase reports the current state of the round.
func (m *SimultaneousMoveState) Phase() SimultaneousPhase {
	_, p0ok := m.p0Move.V()
	_, p1ok := m.p1Move.V()

	switch {
	case p0ok && p1ok:
		return ReadyToExecute
	case m.leaderFollower:
		leader, _ := m.leader.V()
		leaderSubmitted := (leader == Player0 && p0ok) || (leader == Player1 && p1ok)
		if leaderSubmitted {
			return AwaitingFollower
		}
		return AwaitingMoves
	default:
		return AwaitingMoves
	}
}

// CanSubmit reports whether p is allowed to submit a move right now.
func (m *SimultaneousMoveState) CanSubmit(p Player) bool {
	if already, ok := m.move(p).V(); ok {
		_ = already
		return false
	}
	if !m.leaderFollower {
		return true
	}
	leader, _ := m.leader.V()
	if p == leader {
		return true
	}
	// Follower may only submit once the leader has.
	_, leaderSubmitted := m.move(leader).V()
	return leaderSubmitted
}

// GetLeaderMove returns the leader's submitted pit, if any. Only meaningful
// in LeaderFollower mode.
func (m *SimultaneousMoveState) GetLeaderMove() (int, bool) {
	if !m.leaderFollower {
		return 0, false
	}
	leader, _ := m.leader.V()
	return m.move(leader).V()
}

// SubmitMove records p's chosen pit. Returns an error if p is not currently
// allowed to submit (see CanSubmit).
func (m *SimultaneousMoveState) SubmitMove(p Player, pit int) error {
	if !m.CanSubmit(p) {
		return fmt.Errorf("board: %v may not submit a move in phase %v", p, m.Phase())
	}
	if p == Player0 {
		m.p0Move = lang.Some(pit)
	} else {
		m.p1Move = lang.Some(pit)
	}
	return nil
}

// Moves returns both submitted pits. Only valid once Phase() is
// ReadyToExecute.
func (m *SimultaneousMoveState) Moves() (p0Pit, p1Pit int, ok bool) {
	p0, ok0 := m.p0Move.V()
	p1, ok1 := m.p1Move.V()
	return p0, p1, ok0 && ok1
}

func (m *SimultaneousMoveState) move(p Player) lang.Optional[int] {
	if p == Player0 {
		return m.p0Move
	}
	return m.p1Move
}

// ApplySimultaneousMoves executes both players' sowing moves at once against
// a single shared base board. Each player's contribution is tracked as a
// delta vector over the base cells; the board either player actually sees
// at any point during the sow is base + delta0 + delta1 ("combined count").
// Players step one cell at a time in lock step; whenever a player's hand
// empties, the end-of-leg condition (extra turn / relay / capture / forfeit)
// is evaluated against the combined count at that cell, not the player's own
// delta alone -- this is what lets one player's relay or capture observe
// seeds the other player sowed into a shared pit this round.
//
// p0Pit must be one of base's Player0 pits and p1Pit one of Player1's, both
// non-empty; base's own Side is not consulted, since both players move.
func ApplySimultaneousMoves(base State, p0Pit, p1Pit int, rules RuleConfig) (MoveResult, error) {
	if start, end := PlayerPitRange(Player0); p0Pit < start || p0Pit >= end {
		return MoveResult{}, fmt.Errorf("board: pit %v is not in P0's range [%v,%v)", p0Pit, start, end)
	}
	if start, end := PlayerPitRange(Player1); p1Pit < start || p1Pit >= end {
		return MoveResult{}, fmt.Errorf("board: pit %v is not in P1's range [%v,%v)", p1Pit, start, end)
	}
	if base.cells[p0Pit] <= 0 {
		return MoveResult{}, fmt.Errorf("board: pit %v is empty", p0Pit)
	}
	if base.cells[p1Pit] <= 0 {
		return MoveResult{}, fmt.Errorf("board: pit %v is empty", p1Pit)
	}

	var delta [NumPlayers][NumCells]int
	players := [NumPlayers]Player{Player0, Player1}
	ownStore := [NumPlayers]int{PlayerStoreIndex(Player0), PlayerStoreIndex(Player1)}

	hand := [NumPlayers]int{base.cells[p0Pit], base.cells[p1Pit]}
	cur := [NumPlayers]int{p0Pit, p1Pit}
	delta[0][p0Pit] -= base.cells[p0Pit]
	delta[1][p1Pit] -= base.cells[p1Pit]

	done := [NumPlayers]bool{}
	hasLooped := [NumPlayers]bool{}
	extraTurn := [NumPlayers]bool{}
	captured := [NumPlayers]int{}

	actual := func(cell int) int {
		return base.cells[cell] + delta[0][cell] + delta[1][cell]
	}

	for !done[0] || !done[1] {
		for i, p := range players {
			if done[i] {
				continue
			}
			cur[i] = next(cur[i], p)
			delta[i][cur[i]]++
			hand[i]--
			if cur[i] == ownStore[i] {
				hasLooped[i] = true
			}
		}

		for i, p := range players {
			if done[i] || hand[i] != 0 {
				continue
			}
			landing := cur[i]

			if landing == ownStore[i] {
				extraTurn[i] = true
				done[i] = true
				continue
			}

			combined := actual(landing)
			if combined > 1 {
				// Relay on the combined pile: pick it all up, including
				// whatever the other player just sowed into this cell,
				// and keep going from here.
				hand[i] = combined
				delta[i][landing] = -base.cells[landing] - delta[1-i][landing]
				continue
			}

			start, end := PlayerPitRange(p)
			if landing >= start && landing < end {
				opposite := 13 - landing
				oppCombined := actual(opposite)
				if rules.CaptureEnabled && (!rules.CaptureRequiresLoop || hasLooped[i]) && oppCombined > 0 {
					capturedAmt := oppCombined + 1
					captured[i] = capturedAmt
					delta[i][ownStore[i]] += capturedAmt
					delta[i][landing] += -actual(landing)
					delta[i][opposite] += -actual(opposite)
				}
			} else if rules.ForfeitEnabled {
				oppStore := ownStore[1-i]
				delta[i][landing] += -actual(landing)
				delta[i][oppStore]++
			}
			done[i] = true
		}
	}

	cells := base.cells
	for c := 0; c < NumCells; c++ {
		cells[c] += delta[0][c] + delta[1][c]
	}

	// Side to move after a simultaneous round: if exactly one player earned
	// an extra turn, they move again; if both or neither did, Player0 moves
	// (see SPEC_FULL.md's Open Question decision #2).
	var side Player
	switch {
	case extraTurn[0] && !extraTurn[1]:
		side = Player0
	case extraTurn[1] && !extraTurn[0]:
		side = Player1
	default:
		side = Player0
	}

	out := base
	out.cells = cells
	out.side = side

	return MoveResult{
		State:     out,
		Captured:  captured[0] + captured[1],
		ExtraTurn: extraTurn[0] || extraTurn[1],
	}, nil
}
