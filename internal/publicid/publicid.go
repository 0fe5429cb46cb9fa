// Package publicid converts numeric widget ids to short public codes and back.
package publicid

import (
	"errors"

	"github.com/sqids/sqids-go"
)

var ErrInvalidCode = errors.New("invalid code")

type Codec struct {
	sqids *sqids.Sqids
}

func New() (*Codec, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, err
	}
	return &Codec{sqids: s}, nil
}

func (c *Codec) Encode(id uint64) (string, error) {
	return c.sqids.Encode([]uint64{id})
}

// Decode accepts only canonical codes, i.e. those Encode would produce.
func (c *Codec) Decode(code string) (uint64, error) {
	ids := c.sqids.Decode(code)
	if len(ids) != 1 {
		return 0, ErrInvalidCode
	}
	canonical, err := c.sqids.Encode(ids)
	if err != nil || canonical != code {
		return 0, ErrInvalidCode
	}
	return ids[0], nil
}
