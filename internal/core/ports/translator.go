package ports

// Translator renders a message code and its arguments into human-readable
// text. The domain core never calls it for control flow; presentation layers
// use it to decorate structured errors.
type Translator interface {
	Translate(code string, args ...any) string
}
