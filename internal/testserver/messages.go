package testserver

import (
	"encoding/json"

	"github.com/MKhiriev/go-poker-client/models"
)

// Action is one "action" frame as received from a client.
type Action struct {
	models.OutboundAction

	// PlayerID is the player_id query parameter of the sending connection.
	PlayerID string
	Raw      []byte
}

type snapshotFrame struct {
	Type  string               `json:"type"`
	Seq   int64                `json:"seq"`
	Table models.TableSnapshot `json:"table"`
}

type promptFrame struct {
	Type         string                    `json:"type"`
	Seq          int64                     `json:"seq"`
	ToAct        int                       `json:"to_act"`
	LegalActions []models.ActionDescriptor `json:"legal_actions"`
}

type handEndFrame struct {
	Type    string          `json:"type"`
	HandID  string          `json:"hand_id,omitempty"`
	Results json.RawMessage `json:"results"`
}

type errorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ackFrame struct {
	Type     string          `json:"type"`
	Received json.RawMessage `json:"received"`
}

// Snapshot builds a snapshot frame.
func Snapshot(table models.TableSnapshot) any {
	return snapshotFrame{Type: string(models.MessageSnapshot), Table: table}
}

// Prompt builds a prompt frame for seat.
func Prompt(seat int, actions ...models.ActionDescriptor) any {
	if actions == nil {
		actions = []models.ActionDescriptor{}
	}
	return promptFrame{Type: string(models.MessagePrompt), ToAct: seat, LegalActions: actions}
}

// HandEnd builds a hand_end frame. results must be valid JSON.
func HandEnd(handID, results string) any {
	return handEndFrame{Type: string(models.MessageHandEnd), HandID: handID, Results: json.RawMessage(results)}
}

// Error builds an error frame.
func Error(message string) any {
	return errorFrame{Type: string(models.MessageError), Message: message}
}

// Raw sends payload exactly as given, e.g. to test malformed input.
type Raw []byte

// InitialTable is the table a fresh hand starts with: the local player and a
// bot, blinds posted, local seat to act.
func InitialTable(handID, playerID string, seat int) models.TableSnapshot {
	toAct := seat
	botSeat := seat + 1
	return models.TableSnapshot{
		HandID: handID,
		Street: models.StreetPreflop,
		Pot:    3,
		Board:  []string{},
		Players: []models.Player{
			{Seat: seat, ID: playerID, Stack: 99, InHand: true},
			{Seat: botSeat, ID: "bot", Stack: 98, InHand: true},
		},
		Bets:  map[int]int64{seat: 1, botSeat: 2},
		ToAct: &toAct,
	}
}
