package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvironmentVar selects the override directory.
const EnvironmentVar = "APP__ENVIRONMENT"

// Environment names a settings override directory.
type Environment int

const (
	Development Environment = iota
	Production
)

func (e Environment) String() string {
	if e == Production {
		return "production"
	}
	return "development"
}

// ParseEnvironment accepts "development" and its aliases "local" and
// "testing", and "production", case-insensitively.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local", "development", "testing":
		return Development, nil
	case "production":
		return Production, nil
	default:
		return Development, fmt.Errorf("%q is not a supported environment", s)
	}
}

// EnvironmentFromEnv reads APP__ENVIRONMENT, defaulting to development.
func EnvironmentFromEnv() (Environment, error) {
	v, ok := os.LookupEnv(EnvironmentVar)
	if !ok || v == "" {
		return Development, nil
	}
	return ParseEnvironment(v)
}
