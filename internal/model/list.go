package model

import (
	"errors"
	"strings"
)

// List is a reminder list in the external store. The store owns identity;
// this layer addresses lists by exact name only and never caches them.
type List struct {
	Name string
}

func (l List) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("model: list name is required")
	}
	return nil
}
