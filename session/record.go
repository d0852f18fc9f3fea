// Package session holds the run-long record of topic, initial belief, and
// answers. The record outlives rooms; everything else is rebuilt per room.
package session

import (
	"errors"
	"strings"
)

var ErrEmptyAnswer = errors.New("session: answer is empty")

// AnswerEntry is one submitted answer. Created atomically on submit,
// immutable after.
type AnswerEntry struct {
	DoorID   string `yaml:"door"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Record accumulates one run. Answers are append-only; insertion order is
// chronological order is presentation order.
type Record struct {
	topic   string
	belief  string
	answers []AnswerEntry
}

func NewRecord() *Record {
	return &Record{}
}

// SetInitialBelief records the session's topic and starting belief. Called
// once before any room loads; calling it again overwrites (new session).
func (r *Record) SetInitialBelief(topic, belief string) {
	r.topic = strings.TrimSpace(topic)
	r.belief = strings.TrimSpace(belief)
}

// Append validates and stores one answer, returning the new count. An
// answer that is empty after trimming is rejected with no state change.
func (r *Record) Append(doorID, question, answer string) (int, error) {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return len(r.answers), ErrEmptyAnswer
	}
	r.answers = append(r.answers, AnswerEntry{
		DoorID:   doorID,
		Question: question,
		Answer:   trimmed,
	})
	return len(r.answers), nil
}

// Len returns the number of stored answers.
func (r *Record) Len() int {
	return len(r.answers)
}

// Reset clears everything back to a fresh session.
func (r *Record) Reset() {
	r.topic = ""
	r.belief = ""
	r.answers = nil
}

// Snapshot is an immutable copy of the record for presentation and export.
type Snapshot struct {
	Topic         string        `yaml:"topic"`
	InitialBelief string        `yaml:"initial_belief"`
	Answers       []AnswerEntry `yaml:"answers"`
}

// Snapshot copies the record; the live answer list is never handed out.
func (r *Record) Snapshot() Snapshot {
	answers := make([]AnswerEntry, len(r.answers))
	copy(answers, r.answers)
	return Snapshot{
		Topic:         r.topic,
		InitialBelief: r.belief,
		Answers:       answers,
	}
}
