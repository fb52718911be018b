package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestActivitySetUnmarshalKeepsDocumentOrder(t *testing.T) {
	payload := `{
		"Swimming": {"description": "Laps", "schedule": "Tue", "max_participants": 25, "participants": ["alex@mergington.edu"]},
		"Chess Club": {"description": "Chess", "schedule": "Fri", "max_participants": 12, "participants": []},
		"Art Studio": {"description": "Paint", "schedule": "Mon", "max_participants": 18, "participants": null}
	}`

	var set ActivitySet
	if err := json.Unmarshal([]byte(payload), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"Swimming", "Chess Club", "Art Studio"}
	if len(set) != len(want) {
		t.Fatalf("expected %d activities, got %d", len(want), len(set))
	}
	for i, name := range want {
		if set[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, set[i].Name)
		}
	}
	if set[2].Participants == nil {
		t.Fatalf("expected null participants to decode as empty list")
	}
	if got := set[0].SpotsLeft(); got != 24 {
		t.Fatalf("expected 24 spots left, got %d", got)
	}
}

func TestActivitySetUnmarshalDuplicateKeyKeepsFirstPosition(t *testing.T) {
	payload := `{"A": {"max_participants": 1}, "B": {"max_participants": 2}, "A": {"max_participants": 3}}`

	var set ActivitySet
	if err := json.Unmarshal([]byte(payload), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(set) != 2 || set[0].Name != "A" || set[0].MaxParticipants != 3 {
		t.Fatalf("unexpected set: %+v", set)
	}
}

func TestActivitySetUnmarshalRejectsNonObject(t *testing.T) {
	var set ActivitySet
	err := set.UnmarshalJSON([]byte(`["Chess Club"]`))
	if !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
	if err := set.UnmarshalJSON([]byte(`<html>`)); err == nil {
		t.Fatalf("expected error for non-json payload")
	}
}

func TestActivitySetMarshalPreservesOrder(t *testing.T) {
	set := ActivitySet{
		{Name: "Zeta", ActivityDetails: ActivityDetails{MaxParticipants: 1}},
		{Name: "Alpha", ActivityDetails: ActivityDetails{MaxParticipants: 2, Participants: []string{"a@b.c"}}},
	}

	raw, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Zeta":{"description":"","schedule":"","max_participants":1,"participants":[]},` +
		`"Alpha":{"description":"","schedule":"","max_participants":2,"participants":["a@b.c"]}}`
	if string(raw) != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", raw, want)
	}
}

func TestSpotsLeftIsNotClamped(t *testing.T) {
	d := ActivityDetails{MaxParticipants: 1, Participants: []string{"a@x.com", "b@x.com"}}
	if got := d.SpotsLeft(); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
