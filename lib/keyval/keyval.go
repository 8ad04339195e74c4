package keyval

// Provider is the persistence collaborator: one JSON document per collection
// key, written through on every mutating operation.
type Provider interface {
	// Load unmarshals the stored document for key into out.
	// found is false when the key was never saved; out is left untouched.
	Load(key string, out interface{}) (found bool, err error)
	Save(key string, value interface{}) error
}
