package ports

// IDGenerator mints decision event ids. Injected so tests can pin ids.
type IDGenerator interface {
	NewID() string
}
