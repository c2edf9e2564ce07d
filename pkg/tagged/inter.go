package tagged

// Tagger is implemented by anything that carries a tag in its first slot
type Tagger interface {
	// Tag returns the discriminant label
	Tag() string
}

// Carrier extends Tagger with access to the untyped payload
type Carrier interface {
	Tagger
	// Payload returns the second slot as stored
	Payload() any
}
