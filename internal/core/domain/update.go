package domain

// Update is one notification delivered to a watch.
type Update struct {
	// Data is the reconstructed value of the watched selection. It is nil on a miss.
	Data Object
	// Miss reports that the selection can no longer be satisfied from the cache, either because
	// data was cleared or because a change left it incomplete. Callers typically refetch.
	Miss bool
}

// Hit wraps a reconstructed value.
func Hit(data Object) Update {
	return Update{Data: data}
}

// MissUpdate is the update delivered when a selection cannot be reconstructed.
var MissUpdate = Update{Miss: true}
