package tcbox

// Option configures Init. The zero value of each unset option falls
// back to the defaults below.
type Option func(*config)

type config struct {
	termEnvVar string
	ringCap    int
	ttyPath    string
	pollChunk  int
}

func defaultConfig() config {
	return config{
		termEnvVar: "TERM",
		ringCap:    4096,
		ttyPath:    "/dev/tty",
		pollChunk:  defaultPollChunk,
	}
}

// WithTermEnvVar overrides which environment variable is read to select
// a terminal capability table. Defaults to "TERM".
func WithTermEnvVar(name string) Option {
	return func(c *config) { c.termEnvVar = name }
}

// WithRingBufferCapacity overrides the input ring buffer's byte
// capacity. Defaults to 4096, matching the reference's
// init_ringbuffer(&inbuf, 4096).
func WithRingBufferCapacity(n int) Option {
	return func(c *config) { c.ringCap = n }
}

// WithTTYPath overrides the controlling terminal device opened by Init.
// Defaults to "/dev/tty". Intended for tests that substitute a pty.
func WithTTYPath(path string) Option {
	return func(c *config) { c.ttyPath = path }
}

// WithPollChunkSize overrides how many bytes are read from the tty per
// wakeup in the event loop. Defaults to 128, matching the reference's
// ENOUGH_DATA_FOR_INPUT_PARSING.
func WithPollChunkSize(n int) Option {
	return func(c *config) { c.pollChunk = n }
}
