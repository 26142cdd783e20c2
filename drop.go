package vec

// Dropper is implemented by elements that hold resources of their own.
// A Vec or Iter calls Drop exactly once on every element it destroys. An
// element handed back to the caller (Pop, Remove, Next, NextBack) is the
// caller's to drop.
//
// The check is made on the element as stored: for a Vec[F], Drop must be
// declared on F. A Drop method with a *F receiver is not seen, and such
// elements are never dropped; store *F instead.
type Dropper interface {
	Drop()
}

func drop[T any](v T) {
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
	}
}
