// Package storage provides the persistence layer types for the order
// collection. The collection is always persisted wholesale: a single
// serialized snapshot overwritten on every mutation.
package storage

import (
	"time"

	"github.com/tomypizza/orderdesk/orders"
)

// StoreData is the complete structure written to the backend.
type StoreData struct {
	Orders   []orders.Order `json:"orders" yaml:"orders"`
	Metadata Metadata       `json:"metadata" yaml:"metadata"`
}

// Metadata describes the snapshot itself.
type Metadata struct {
	Version   string    `json:"version" yaml:"version"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}
