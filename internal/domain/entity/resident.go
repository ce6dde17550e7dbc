// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomType represents the kind of room a resident occupies.
type RoomType string

const (
	RoomTypeAC    RoomType = "ac"
	RoomTypeNonAC RoomType = "non-ac"
)

// Floor represents the floor a resident lives on.
type Floor string

const (
	FloorAtas  Floor = "atas"
	FloorBawah Floor = "bawah"
)

// Resident represents a person sharing the housing unit and subject to
// recurring dues.
type Resident struct {
	ID                   uuid.UUID
	Name                 string
	DefaultMonthlyAmount int64
	RoomType             RoomType
	Floor                Floor
	CreatedAt            time.Time
}

// NewResident creates a new Resident entity.
func NewResident(name string, defaultMonthlyAmount int64, roomType RoomType, floor Floor) *Resident {
	return &Resident{
		ID:                   uuid.New(),
		Name:                 name,
		DefaultMonthlyAmount: defaultMonthlyAmount,
		RoomType:             roomType,
		Floor:                floor,
		CreatedAt:            time.Now().UTC(),
	}
}
