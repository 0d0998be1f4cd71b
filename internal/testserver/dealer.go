package testserver

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-poker-client/models"
)

var dealerBoard = []string{"Ah", "Kd", "7c", "2s", "9h"}

var nextStreet = map[models.Street]models.Street{
	models.StreetPreflop: models.StreetFlop,
	models.StreetFlop:    models.StreetTurn,
	models.StreetTurn:    models.StreetRiver,
	models.StreetRiver:   models.StreetShowdown,
}

// Dealer is an [ActionHandler] that walks one seat through a hand without
// judging the moves: every accepted action deals the next street and prompts
// the same seat again. A fold or the showdown ends the hand and deals the
// next one.
func Dealer(s *Server, a Action) []any {
	table := s.Table()
	if table == nil {
		return nil
	}
	seat := a.Seat

	if a.Action.Type.NeedsAmount() {
		table.Pot += a.Action.Amount
	}

	street, ok := nextStreet[table.Street]
	if a.Action.Type == models.ActionFold || !ok || street == models.StreetShowdown {
		return endHand(s, *table, seat, a.Action.Type == models.ActionFold)
	}

	table.Street = street
	table.Board = dealerBoard[:boardSize(street)]
	table.Bets = map[int]int64{}
	table.ToAct = &seat
	s.SetTable(*table)

	return []any{Snapshot(*table), dealerPrompt(seat)}
}

func endHand(s *Server, table models.TableSnapshot, seat int, folded bool) []any {
	delta := table.Pot
	if folded {
		delta = -table.Pot
	}
	results, _ := json.Marshal([]map[string]any{{"seat": seat, "delta": delta}})

	next := InitialTable(nextHandID(table.HandID), playerAt(table, seat), seat)
	next.TableID = table.TableID
	s.SetTable(next)

	return []any{HandEnd(table.HandID, string(results)), Snapshot(next), dealerPrompt(seat)}
}

func dealerPrompt(seat int) any {
	return Prompt(seat, models.Check(), models.Fold(), models.RaiseTo(4))
}

func boardSize(street models.Street) int {
	switch street {
	case models.StreetFlop:
		return 3
	case models.StreetTurn:
		return 4
	case models.StreetRiver:
		return 5
	}
	return 0
}

func nextHandID(handID string) string {
	var n int
	if _, err := fmt.Sscanf(handID, "h_%05d", &n); err != nil {
		return handID + "+1"
	}
	return fmt.Sprintf("h_%05d", n+1)
}

func playerAt(table models.TableSnapshot, seat int) string {
	if p, ok := table.Player(seat); ok {
		return p.ID
	}
	return ""
}
