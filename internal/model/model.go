// Package model defines the core domain types shared by the activities API
// and the sign-up view.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrNotObject is returned when an activity set payload is not a JSON object.
var ErrNotObject = errors.New("activity set must be a JSON object")

// ActivityDetails describes a single activity offering.
type ActivityDetails struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the number of free places. It is not clamped: an
// over-capacity list yields a negative number.
func (d ActivityDetails) SpotsLeft() int {
	return d.MaxParticipants - len(d.Participants)
}

// Activity is a named entry of an ActivitySet.
type Activity struct {
	Name string
	ActivityDetails
}

// ActivitySet maps activity names to their details, keeping the order in
// which the API listed them.
type ActivitySet []Activity

// Get returns the activity with the given name.
func (s ActivitySet) Get(name string) (Activity, bool) {
	for _, a := range s {
		if a.Name == name {
			return a, true
		}
	}
	return Activity{}, false
}

// UnmarshalJSON decodes a JSON object keyed by activity name. Keys are read in
// document order; a repeated key keeps its first position and its last value.
func (s *ActivitySet) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("decode activity set: invalid json")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return ErrNotObject
	}

	var (
		set   ActivitySet
		index = map[string]int{}
		err   error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		var details ActivityDetails
		if err = json.Unmarshal([]byte(value.Raw), &details); err != nil {
			err = fmt.Errorf("decode activity %q: %w", key.String(), err)
			return false
		}
		if details.Participants == nil {
			details.Participants = []string{}
		}
		name := key.String()
		if i, ok := index[name]; ok {
			set[i].ActivityDetails = details
			return true
		}
		index[name] = len(set)
		set = append(set, Activity{Name: name, ActivityDetails: details})
		return true
	})
	if err != nil {
		return err
	}
	if set == nil {
		set = ActivitySet{}
	}
	*s = set
	return nil
}

// MarshalJSON encodes the set as a JSON object in slice order.
func (s ActivitySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		details := a.ActivityDetails
		if details.Participants == nil {
			details.Participants = []string{}
		}
		value, err := json.Marshal(details)
		if err != nil {
			return nil, fmt.Errorf("encode activity %q: %w", a.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MessageResponse is the success envelope of the mutating API calls.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope of the API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
