package configs

// NATS configures the optional cross-instance message bridge. When URL is
// empty realtime delivery stays within the local process.
type NATS struct {
	URL           string `env:"URL"`
	SubjectPrefix string `env:"SUBJECT_PREFIX" envDefault:"fundflow"`
}
