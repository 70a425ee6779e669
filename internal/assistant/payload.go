package assistant

// Payload is a loosely typed JSON object decoded from a backend reply.
// Values follow encoding/json conventions: numbers are float64, arrays are
// []any and objects are map[string]any.
type Payload map[string]any

// Has reports whether key is present, including when its value is null.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the value of key when it is a string.
func (p Payload) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// List returns the value of key when it is an array.
func (p Payload) List(key string) ([]any, bool) {
	l, ok := p[key].([]any)
	return l, ok
}
