package services

import "sync"

// sessionLock serializes every mutation of the four collections. The store
// holds whole-collection snapshots, so each write is a load-modify-save; the
// lock keeps the single-writer model intact even though the
// HTTP surface serves requests concurrently. Reads take the shared side so a
// report never observes a half-applied mutation.
type sessionLock = sync.RWMutex
