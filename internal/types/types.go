package types

// EntityID identifies an enemy, tower or projectile. IDs are handed out
// sequentially from 1 and never reused until the game is reset.
type EntityID uint64
