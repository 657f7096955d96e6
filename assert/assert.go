package assert

import "github.com/oomph-ac/parkour/oerror"

// IsTrue panics with a ParkourError if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
