package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tomypizza/orderdesk/orders/storage"
)

// Destructive operations run a two-step protocol: the host requests the
// action and receives a single-use token, then either confirms or cancels.
// This keeps the confirm dialog out of the core so every host UI can
// present it its own way.

// ErrInvalidToken is returned when a token is unknown or already used.
var ErrInvalidToken = errors.New("unknown or expired confirmation token")

type actionKind int

const (
	actionDelete actionKind = iota
	actionClearAll
)

type pendingAction struct {
	kind actionKind
	id   int64
}

// RequestDelete implements Store.RequestDelete.
func (s *jsonFileStore) RequestDelete(id int64) (string, error) {
	return s.requestAction(pendingAction{kind: actionDelete, id: id})
}

// RequestClearAll implements Store.RequestClearAll.
func (s *jsonFileStore) RequestClearAll() (string, error) {
	return s.requestAction(pendingAction{kind: actionClearAll})
}

func (s *jsonFileStore) requestAction(action pendingAction) (string, error) {
	token := uuid.New().String()
	err := s.lockManager.Execute(storage.WriteOperation, func() error {
		s.pending[token] = action
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Confirm implements Store.Confirm. The token is consumed whether or not
// the underlying record still exists.
func (s *jsonFileStore) Confirm(token string) error {
	var ev *Event
	err := s.lockManager.Execute(storage.WriteOperation, func() error {
		action, ok := s.pending[token]
		if !ok {
			return ErrInvalidToken
		}
		delete(s.pending, token)

		switch action.kind {
		case actionDelete:
			removed, err := s.deleteByID(action.id)
			if removed {
				ev = &Event{Kind: EventDeleted, ID: action.id}
			}
			return err
		case actionClearAll:
			err := s.clearAll()
			ev = &Event{Kind: EventCleared}
			return err
		}
		return nil
	})
	if ev != nil {
		s.notify(*ev)
	}
	return err
}

// Cancel implements Store.Cancel.
func (s *jsonFileStore) Cancel(token string) error {
	return s.lockManager.Execute(storage.WriteOperation, func() error {
		if _, ok := s.pending[token]; !ok {
			return ErrInvalidToken
		}
		delete(s.pending, token)
		return nil
	})
}
