package displaycheck

import "os"

// EnvGetter abstracts environment lookups for testability.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads the actual process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MockEnvGetter is a test double backed by a map.
type MockEnvGetter struct {
	Env map[string]string
}

func (m *MockEnvGetter) LookupEnv(key string) (string, bool) {
	v, ok := m.Env[key]
	return v, ok
}
