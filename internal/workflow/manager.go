package workflow

import (
	"context"
	"fmt"
	"sync"

	"gallery-assistant/internal/biddingerrors"
	"gallery-assistant/internal/reply"
	"gallery-assistant/utils"
)

// session is one conversation's form state. Its mutex serializes the conversation's turns.
type session struct {
	mu    sync.Mutex
	state State
}

// Manager tracks modify-bid conversations by id
type Manager struct {
	form *Form

	mu       sync.Mutex
	sessions map[string]*session
}

// NewManager creates a Manager running form
func NewManager(form *Form) *Manager {
	return &Manager{
		form:     form,
		sessions: make(map[string]*session),
	}
}

func (m *Manager) lookup(id string) (*session, error) {
	if !utils.IsValidID(id) {
		return nil, fmt.Errorf("workflow: %w - %s", biddingerrors.ErrSessionNotFound, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("workflow: %w - %s", biddingerrors.ErrSessionNotFound, id)
	}
	return s, nil
}

// Start opens a conversation and returns the first prompt. A non-empty artworkID
// pre-fills the first slot, as triggered by an inform quick reply.
func (m *Manager) Start(ctx context.Context, artworkID string) (TurnResult, error) {
	id := utils.GenerateID()
	s := &session{}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	utils.Info("conversation started", map[string]any{"conversation_id": id, "user_name": m.form.ActiveUser()})

	if artworkID != "" {
		return m.Fill(ctx, id, FieldArtworkID, artworkID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := &reply.Collector{}
	if err := m.form.Prompt(ctx, s.state, out); err != nil {
		m.drop(id)
		return TurnResult{}, fmt.Errorf("workflow: start: %w", err)
	}

	res := m.form.finish(TurnResult{}, s.state, out)
	res.ConversationID = id
	return res, nil
}

// Get returns the conversation's state and re-issues the pending prompt
func (m *Manager) Get(ctx context.Context, id string) (TurnResult, error) {
	s, err := m.lookup(id)
	if err != nil {
		return TurnResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := &reply.Collector{}
	if err := m.form.Prompt(ctx, s.state, out); err != nil {
		return TurnResult{}, fmt.Errorf("workflow: prompt: %w", err)
	}

	res := m.form.finish(TurnResult{Error: s.state.LastError}, s.state, out)
	res.ConversationID = id
	return res, nil
}

// Fill applies one field update to the conversation
func (m *Manager) Fill(ctx context.Context, id string, field Field, raw string) (TurnResult, error) {
	s, err := m.lookup(id)
	if err != nil {
		return TurnResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := m.form.Fill(ctx, &s.state, field, raw)
	if err != nil {
		return TurnResult{}, err
	}
	res.ConversationID = id
	return res, nil
}

// Abandon clears the conversation's fields and forgets it
func (m *Manager) Abandon(_ context.Context, id string) error {
	s, err := m.lookup(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state.Reset()
	s.mu.Unlock()

	m.drop(id)
	utils.Info("conversation abandoned", map[string]any{"conversation_id": id})
	return nil
}

func (m *Manager) drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
