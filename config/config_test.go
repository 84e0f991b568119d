package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	os.Unsetenv("STORE_DRIVER")
	t.Setenv("FORM_SESSION_TTL", "")
	os.Unsetenv("FORM_SESSION_TTL")
	t.Setenv("ALLOWED_ORIGINS", "https://kgn.example,http://localhost:5173")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDriver != DriverSQLite {
		t.Fatalf("expected sqlite default, got %q", cfg.StoreDriver)
	}
	if cfg.FormSessionTTL != 30*time.Minute {
		t.Fatalf("unexpected session ttl %v", cfg.FormSessionTTL)
	}
	if diff := cmp.Diff([]string{"https://kgn.example", "http://localhost:5173"}, cfg.AllowedOrigins); diff != "" {
		t.Fatalf("origins mismatch (-want +got):\n%s", diff)
	}
	if cfg.AdminEnabled() {
		t.Fatalf("admin should be disabled without credentials")
	}
}

func TestLoadNormalizesDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", " Mongo ")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDriver != DriverMongo {
		t.Fatalf("expected mongo, got %q", cfg.StoreDriver)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"rest without key", Config{StoreDriver: DriverRest, SupabaseURL: "https://x.supabase.co", FormSessionTTL: time.Minute}, true},
		{"rest complete", Config{StoreDriver: DriverRest, SupabaseURL: "https://x.supabase.co", SupabaseKey: "k", FormSessionTTL: time.Minute}, false},
		{"mongo without uri", Config{StoreDriver: DriverMongo, FormSessionTTL: time.Minute}, true},
		{"sqlite", Config{StoreDriver: DriverSQLite, SQLitePath: "leads.db", FormSessionTTL: time.Minute}, false},
		{"zero ttl", Config{StoreDriver: DriverSQLite, SQLitePath: "leads.db"}, true},
		{"unknown driver", Config{StoreDriver: "redis", FormSessionTTL: time.Minute}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAccessTTL(t *testing.T) {
	if got := (&Config{}).AccessTTL(); got != 15*time.Minute {
		t.Fatalf("default ttl = %v", got)
	}
	if got := (&Config{AccessTokenTTLMinutes: 5}).AccessTTL(); got != 5*time.Minute {
		t.Fatalf("ttl = %v", got)
	}
}
