package game

import "errors"

var (
	ErrInvalidTerritoryCount  = errors.New("territory count must be positive")
	ErrInvalidTerritory       = errors.New("invalid territory")
	ErrIndexOutOfRange        = errors.New("territory index out of range")
	ErrInvalidAttackSelection = errors.New("invalid attack selection")
	ErrInsufficientTroops     = errors.New("not enough troops to attack")
	ErrEmptyCatalog           = errors.New("mission catalog is empty")
)
