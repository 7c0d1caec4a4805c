package store

import (
	"fmt"

	"github.com/tomypizza/orderdesk/orders"
	"github.com/tomypizza/orderdesk/orders/query"
	"github.com/tomypizza/orderdesk/orders/storage"
)

// Command is a typed user action. Every host maps its own input (flags,
// key presses, form submits) onto one of these and hands it to Dispatch,
// which produces the next store state.
type Command interface {
	isCommand()
}

// AddCommand creates a new order from a draft.
type AddCommand struct {
	Draft orders.Draft
}

// EditCommand merges a patch into an existing order.
type EditCommand struct {
	ID    int64
	Patch orders.Patch
}

// CompleteCommand marks an order completed.
type CompleteCommand struct {
	ID int64
}

// RequestDeleteCommand starts the two-step delete protocol. The issued
// token is written to Token for the host to hold onto.
type RequestDeleteCommand struct {
	ID    int64
	Token string
}

// ConfirmCommand executes the pending action behind Token.
type ConfirmCommand struct {
	Token string
}

// CancelCommand discards the pending action behind Token.
type CancelCommand struct {
	Token string
}

// ClearAllCommand starts the two-step clear protocol.
type ClearAllCommand struct {
	Token string
}

// SetFilterCommand changes the store's current filter selection.
type SetFilterCommand struct {
	Filter orders.Filter
}

// SetSortCommand changes the store's current sort selection.
type SetSortCommand struct {
	Sort orders.Sort
}

func (*AddCommand) isCommand()           {}
func (*EditCommand) isCommand()          {}
func (*CompleteCommand) isCommand()      {}
func (*RequestDeleteCommand) isCommand() {}
func (*ConfirmCommand) isCommand()       {}
func (*CancelCommand) isCommand()        {}
func (*ClearAllCommand) isCommand()      {}
func (*SetFilterCommand) isCommand()     {}
func (*SetSortCommand) isCommand()       {}

// Dispatch implements Store.Dispatch.
func (s *jsonFileStore) Dispatch(cmd Command) error {
	switch c := cmd.(type) {
	case *AddCommand:
		_, err := s.Add(c.Draft)
		return err
	case *EditCommand:
		return s.Edit(c.ID, c.Patch)
	case *CompleteCommand:
		return s.Complete(c.ID)
	case *RequestDeleteCommand:
		token, err := s.RequestDelete(c.ID)
		if err != nil {
			return err
		}
		c.Token = token
		return nil
	case *ConfirmCommand:
		return s.Confirm(c.Token)
	case *CancelCommand:
		return s.Cancel(c.Token)
	case *ClearAllCommand:
		token, err := s.RequestClearAll()
		if err != nil {
			return err
		}
		c.Token = token
		return nil
	case *SetFilterCommand:
		return s.setFilter(c.Filter)
	case *SetSortCommand:
		return s.setSort(c.Sort)
	}
	return fmt.Errorf("unknown command type %T", cmd)
}

func (s *jsonFileStore) setFilter(f orders.Filter) error {
	if !f.Valid() {
		return &orders.ValidationError{Field: "filter", Reason: "must be all, pending or completed"}
	}
	err := s.lockManager.Execute(storage.WriteOperation, func() error {
		s.filter = f
		return nil
	})
	if err == nil {
		s.notify(Event{Kind: EventViewChanged})
	}
	return err
}

func (s *jsonFileStore) setSort(key orders.Sort) error {
	if !key.Valid() {
		return &orders.ValidationError{Field: "sort", Reason: "must be due, name or priority"}
	}
	err := s.lockManager.Execute(storage.WriteOperation, func() error {
		s.sort = key
		return nil
	})
	if err == nil {
		s.notify(Event{Kind: EventViewChanged})
	}
	return err
}

// View implements Store.View.
func (s *jsonFileStore) View() (orders.Filter, orders.Sort, []orders.Order, error) {
	var (
		f    orders.Filter
		key  orders.Sort
		list []orders.Order
	)
	err := s.lockManager.Execute(storage.ReadOperation, func() error {
		f = s.filter
		key = s.sort
		list = query.Apply(s.data.Orders, f, key)
		return nil
	})
	return f, key, list, err
}
