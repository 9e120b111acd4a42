package configs

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Storage selects the persistence backend. The memory driver keeps all data
// in process and is meant for local development and demos.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}
