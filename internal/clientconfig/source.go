package clientconfig

// Source supplies the client configuration for a single request.
//
// Source implementations must be safe for concurrent access. Load returns
// either a complete [Record] or an error, never both.
type Source interface {
	Load() (Record, error)
}

// SourceFunc adapts an ordinary function to the [Source] interface.
type SourceFunc func() (Record, error)

// Load calls f.
func (f SourceFunc) Load() (Record, error) {
	return f()
}

// EnvSource rebuilds the [Record] from the environment on every Load.
//
// Changes to the environment are picked up by the next request without a
// restart. EnvSource holds no mutable state.
type EnvSource struct {
	lookup LookupFunc
}

// NewEnvSource creates an [EnvSource] reading through lookup.
// A nil lookup reads the process environment.
func NewEnvSource(lookup LookupFunc) *EnvSource {
	return &EnvSource{lookup: lookup}
}

// Load builds a fresh [Record].
func (s *EnvSource) Load() (Record, error) {
	return Build(s.lookup)
}

// StaticSource builds the [Record] once, when it is created, and returns the
// same result from every Load.
//
// A configuration error captured at construction is returned on every Load;
// the environment is not consulted again.
type StaticSource struct {
	record Record
	err    error
}

// NewStaticSource creates a [StaticSource] from the current state of lookup.
// A nil lookup reads the process environment.
func NewStaticSource(lookup LookupFunc) *StaticSource {
	rec, err := Build(lookup)
	return &StaticSource{record: rec, err: err}
}

// Load returns the snapshot taken by [NewStaticSource].
func (s *StaticSource) Load() (Record, error) {
	if s.err != nil {
		return Record{}, s.err
	}
	return s.record, nil
}
