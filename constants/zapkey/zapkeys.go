package zapkey

// General Keys
const (
	Count    = "count"
	Duration = "duration"
	Key      = "key"
	Path     = "path"
	Value    = "value"
)

// Titlecase Keys
const (
	NFC     = "nfc"
	Workers = "workers"
)
