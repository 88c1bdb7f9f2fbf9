package cache

import "errors"

// ErrKeyNotFound is returned when a key is absent or its entry has aged past
// its TTL. The two cases are deliberately indistinguishable: a stale entry
// must behave exactly like a missing one.
var ErrKeyNotFound = errors.New("cache key not found")
