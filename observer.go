package suffix

// Observer receives diagnostic events from the codec. It is a pure
// side-channel: return values are never affected by an observer, and
// the codec works unchanged with no observer installed.
//
// Implementations must be safe for concurrent use; encode and decode
// may run from any number of goroutines.
type Observer interface {
	// ObserveEncode is called after a payload has been rendered,
	// with the 26-character result.
	ObserveEncode(encoded string)

	// ObserveDecode is called after a decode attempt with the raw
	// input; err is nil on success.
	ObserveDecode(input string, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveEncode(string)        {}
func (nopObserver) ObserveDecode(string, error) {}

// observer is the installed observer. The variable is written only by
// SetObserver, which is expected to run during program initialization,
// before concurrent codec use begins.
var observer Observer = nopObserver{}

// SetObserver installs o as the process-wide codec observer.
// Passing nil restores the default no-op observer.
func SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	observer = o
}
