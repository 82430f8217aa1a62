package ports

// ConfigInitializer writes a starter configuration into a directory.
type ConfigInitializer interface {
	Init(dir string, force bool) (path string, written bool, err error)
}
