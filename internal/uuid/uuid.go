package uuid

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// UUID wraps google's uuid.UUID so record ids can be stored as BINARY(16)
// and rendered as their canonical string in JSON.
type UUID uuid.UUID

// Gen produces record ids. Stores take one so tests can pin ids.
type Gen func() UUID

// NewUUID creates a new random UUID.
func NewUUID() UUID {
	return UUID(uuid.New())
}

// Parse reads the canonical textual form.
func Parse(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID(id), nil
}

func MustParse(s string) UUID {
	return UUID(uuid.MustParse(s))
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}

func (u UUID) IsZero() bool {
	return uuid.UUID(u) == uuid.Nil
}

func (u *UUID) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("UUID.Scan: expected []byte, got %T", src)
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return err
	}
	*u = UUID(id)
	return nil
}

func (u UUID) Value() (driver.Value, error) {
	return uuid.UUID(u).MarshalBinary()
}

func (u UUID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(u).String()), nil
}

func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := uuid.ParseBytes(text)
	if err != nil {
		return err
	}
	*u = UUID(parsed)
	return nil
}
