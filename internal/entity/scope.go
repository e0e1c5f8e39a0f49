package entity

import (
	"fmt"
)

type ScopeKind string

const (
	ScopeKindDefault  ScopeKind = "default"
	ScopeKindWebsites ScopeKind = "websites"
	ScopeKindStores   ScopeKind = "stores"
)

// Scope selects the level a configuration value is read at.
type Scope struct {
	Kind ScopeKind
	ID   int64
}

var DefaultScope = Scope{Kind: ScopeKindDefault}

// StoreScope returns the scope of a store view. Store 0 is the admin store and maps to the default scope.
func StoreScope(storeID int64) Scope {
	if storeID == 0 {
		return DefaultScope
	}

	return Scope{Kind: ScopeKindStores, ID: storeID}
}

func (s Scope) IsDefault() bool {
	return s.Kind == ScopeKindDefault || s.Kind == ""
}

func (s Scope) String() string {
	if s.IsDefault() {
		return string(ScopeKindDefault)
	}

	return fmt.Sprintf("%s/%d", s.Kind, s.ID)
}
