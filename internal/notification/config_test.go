package notification

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notifier.yaml")
	body := "db:\n  host: postgres\n  port: 5432\nkafka:\n  brokers: [\"kafka:9092\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.CfgKafka.GroupID != defaultGroupID {
		t.Errorf("expected group %q, got %q", defaultGroupID, cfg.CfgKafka.GroupID)
	}
	if cfg.CfgKafka.Topic != defaultTopic {
		t.Errorf("expected topic %q, got %q", defaultTopic, cfg.CfgKafka.Topic)
	}
	if cfg.ServerPort != defaultServerPort {
		t.Errorf("expected port %q, got %q", defaultServerPort, cfg.ServerPort)
	}
	if cfg.CfgDB.Host != "postgres" || cfg.CfgDB.Port != 5432 {
		t.Errorf("unexpected db config: %+v", cfg.CfgDB)
	}
}

func TestNewConfig_MissingFile(t *testing.T) {
	if _, err := NewConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
