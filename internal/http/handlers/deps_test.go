package handlers

import (
	"testing"

	intconfig "backoffice/internal/config"
)

func TestConfigureTakesJWTSecretFromEnv(t *testing.T) {
	Configure(intconfig.Env{JWTSecret: "env-owned-secret"})
	if string(JWTSecret()) != "env-owned-secret" {
		t.Fatalf("signing key not taken from env, got %q", JWTSecret())
	}
}
