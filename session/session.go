// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"encoding/gob"

	"github.com/alexedwards/scs/v2"

	"github.com/danielhkuo/quizzes/models"
)

const dataKey = "data"

func init() {
	// scs encodes session values with gob
	gob.Register(&Data{})
}

// Data is the persisted part of a session
type Data struct {
	Flashes    []models.Flash
	RandomPlay models.PlayState
	GroupPlay  map[int64]*models.PlayState
	BackURL    string
}

// Session is a typed view of the request's scs session. Accessors that
// hand out mutable state put the data back so scs commits it.
type Session struct {
	ctx   context.Context
	sm    *scs.SessionManager
	local *Data
}

func (s *Session) data() *Data {
	if s.sm == nil {
		if s.local == nil {
			s.local = &Data{}
		}
		return s.local
	}
	if d, ok := s.sm.Get(s.ctx, dataKey).(*Data); ok {
		return d
	}
	return &Data{}
}

func (s *Session) edit() *Data {
	d := s.data()
	if s.sm != nil {
		s.sm.Put(s.ctx, dataKey, d)
	}
	return d
}

// Modified reports whether the session will be written back
func (s *Session) Modified() bool {
	if s.sm == nil {
		return false
	}
	return s.sm.Status(s.ctx) == scs.Modified
}

// AddFlash queues a message for the next rendered page
func (s *Session) AddFlash(kind, message string) {
	d := s.edit()
	d.Flashes = append(d.Flashes, models.Flash{Kind: kind, Message: message})
}

// PopFlashes returns the queued messages and discards them
func (s *Session) PopFlashes() []models.Flash {
	flashes := s.data().Flashes
	if len(flashes) > 0 {
		s.edit().Flashes = nil
	}
	return flashes
}

// RandomPlay is the all-quizzes game state
func (s *Session) RandomPlay() *models.PlayState {
	return &s.edit().RandomPlay
}

// RandomPlayScore reads the all-quizzes score without touching the session
func (s *Session) RandomPlayScore() int {
	return s.data().RandomPlay.Score()
}

// GroupPlay returns the game state of a group, creating it if needed
func (s *Session) GroupPlay(groupID int64) *models.PlayState {
	d := s.edit()
	if d.GroupPlay == nil {
		d.GroupPlay = make(map[int64]*models.PlayState)
	}
	state, ok := d.GroupPlay[groupID]
	if !ok {
		state = &models.PlayState{}
		d.GroupPlay[groupID] = state
	}
	return state
}

// GroupScore is 0 for groups this session never played
func (s *Session) GroupScore(groupID int64) int {
	return s.data().GroupPlay[groupID].Score()
}

func (s *Session) DeleteGroupPlay(groupID int64) {
	if _, ok := s.data().GroupPlay[groupID]; ok {
		delete(s.edit().GroupPlay, groupID)
	}
}

func (s *Session) BackURL() string {
	return s.data().BackURL
}

func (s *Session) SetBackURL(u string) {
	if s.data().BackURL != u {
		s.edit().BackURL = u
	}
}

type contextKey struct{}

// NewContext returns ctx carrying s
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request's session. Outside the session
// middleware it returns a throwaway session so callers never nil check.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok {
		return s
	}
	return &Session{}
}
