package jwt

import (
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		Secret:   "unit-test-secret",
		Issuer:   "fitlife",
		Audience: "fitlife-backoffice",
		TTL:      time.Hour,
	}
}

func TestGenerateVerifyRoundtrip(t *testing.T) {
	gen, err := NewGenerator(testConfig())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	ver, err := NewVerifier(testConfig())
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	token, jti, err := gen.Generate(42, "ana@fitlife.co.mz", "admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if jti == "" {
		t.Error("missing jti")
	}

	claims, err := ver.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "ana@fitlife.co.mz" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
	if !claims.IsAdmin() {
		t.Error("IsAdmin() = false for admin role")
	}
	if claims.ID != jti {
		t.Errorf("claims.ID = %q, want %q", claims.ID, jti)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	gen, _ := NewGenerator(testConfig())

	otherCfg := testConfig()
	otherCfg.Secret = "a-different-secret"
	ver, _ := NewVerifier(otherCfg)

	token, _, err := gen.Generate(1, "x@y.z", "staff")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := ver.Verify(token); err == nil {
		t.Fatal("token signed with another secret must not verify")
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	otherCfg := testConfig()
	otherCfg.Issuer = "someone-else"
	gen, _ := NewGenerator(otherCfg)
	ver, _ := NewVerifier(testConfig())

	token, _, err := gen.Generate(1, "x@y.z", "staff")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := ver.Verify(token); err == nil {
		t.Fatal("token with foreign issuer must not verify")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.TTL = -time.Minute
	gen, _ := NewGenerator(cfg)
	ver, _ := NewVerifier(testConfig())

	token, _, err := gen.Generate(1, "x@y.z", "staff")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := ver.Verify(token); err == nil {
		t.Fatal("expired token must not verify")
	}
}

func TestGeneratorRequiresSecret(t *testing.T) {
	if _, err := NewGenerator(Config{}); err == nil {
		t.Fatal("empty secret must be rejected")
	}
	if _, err := NewVerifier(Config{}); err == nil {
		t.Fatal("empty secret must be rejected")
	}
}
