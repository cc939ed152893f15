// Package docstore provides the in-memory document store behind the
// document tools. The store is injected where it is needed; there is no
// package-level instance.
package docstore

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound reports an unknown document id.
var ErrNotFound = errors.New("document not found")

// Memory is a thread-safe in-memory document store.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]string)}
}

// NewSeeded returns a store preloaded with the sample document set.
func NewSeeded() *Memory {
	m := NewMemory()
	for id, content := range map[string]string{
		"deposition.md":   "This deposition covers the testimony of Angela Smith, P.E.",
		"report.pdf":      "The report details the state of a 20m condenser tower.",
		"financials.docx": "These financials outline the project's budget and expenditures.",
		"outlook.pdf":     "This document presents the projected future performance of the system.",
		"plan.md":         "The plan outlines the steps for the project's implementation.",
		"spec.txt":        "These specifications define the technical requirements for the equipment.",
	} {
		m.Put(id, content)
	}
	return m
}

// Get returns the content of the document with the given id.
func (m *Memory) Get(id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.docs[id]
	if !ok {
		return "", fmt.Errorf("doc with id %q: %w", id, ErrNotFound)
	}
	return content, nil
}

// Put stores content under id, replacing any previous value.
func (m *Memory) Put(id, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = content
}

// List returns the known document ids in sorted order.
func (m *Memory) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.docs))
	for id := range m.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
