package winpriv

import "sync"

// Manager owns the process-wide privilege state: the LUID cache, the
// token-handle-by-process cache, and the privilege-ownership ledger,
// each behind its own lock. Create one Manager per process and share it
// by reference; two Managers would defeat the cross-caller sharing
// guarantees the Enabler relies on.
type Manager struct {
	api nativeAPI

	luidMu sync.RWMutex
	luids  map[Privilege]LUID

	handleMu sync.Mutex
	handles  map[int]*Token

	ownerMu sync.Mutex
	owners  map[Privilege]*Enabler
}

func newManager(api nativeAPI) *Manager {
	return &Manager{
		api:     api,
		luids:   make(map[Privilege]LUID),
		handles: make(map[int]*Token),
		owners:  make(map[Privilege]*Enabler),
	}
}
