package queue

const (
	// DefaultCapacity is the capacity of a Ring built without WithCapacity.
	DefaultCapacity = 100

	// noIndex marks front and back as unset while the ring is empty.
	noIndex = -1
)
