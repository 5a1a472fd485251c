// Package conversation keeps the chat history of every live call.
package conversation

import (
	"sync"

	"karma-server/internal/ai"
)

// DefaultHistoryLimit is how many non-system messages are kept per call.
const DefaultHistoryLimit = 20

// Manager maps call ids to chat histories. The first message of every history
// is the system prompt and survives trimming.
type Manager struct {
	mu           sync.Mutex
	systemPrompt string
	limit        int
	histories    map[string][]ai.Message
}

func New(systemPrompt string, limit int) *Manager {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Manager{
		systemPrompt: systemPrompt,
		limit:        limit,
		histories:    make(map[string][]ai.Message),
	}
}

// GetOrCreate returns a copy of the call's history, seeding it if needed.
func (m *Manager) GetOrCreate(callID string) []ai.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.getOrCreateLocked(callID))
}

func (m *Manager) getOrCreateLocked(callID string) []ai.Message {
	history, ok := m.histories[callID]
	if !ok {
		history = []ai.Message{{Role: ai.RoleSystem, Content: m.systemPrompt}}
		m.histories[callID] = history
	}
	return history
}

// AddUser appends the caller's words, trims the history and returns a copy of it.
func (m *Manager) AddUser(callID, text string) []ai.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := append(m.getOrCreateLocked(callID), ai.Message{Role: ai.RoleUser, Content: text})
	if len(history) > m.limit+1 {
		trimmed := make([]ai.Message, 0, m.limit+1)
		trimmed = append(trimmed, history[0])
		trimmed = append(trimmed, history[len(history)-m.limit:]...)
		history = trimmed
	}
	m.histories[callID] = history
	return clone(history)
}

// AddAssistant appends the agent's reply.
func (m *Manager) AddAssistant(callID, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.histories[callID] = append(m.getOrCreateLocked(callID), ai.Message{Role: ai.RoleAssistant, Content: text})
}

// End forgets the call.
func (m *Manager) End(callID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.histories, callID)
}

// Active reports how many calls have a history.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.histories)
}

func clone(history []ai.Message) []ai.Message {
	out := make([]ai.Message, len(history))
	copy(out, history)
	return out
}
