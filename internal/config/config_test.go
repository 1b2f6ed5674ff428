package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")

	content := `
env: dev
http:
  port: 3004
kafka:
  broker_list: ["k1:9092", "k2:9092"]
  publish_timeout: 1s
gateway:
  routes:
    - prefix: /orders
      target: http://orders:3002
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 3004, cfg.HTTP.Port)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.BrokerList)
	require.Equal(t, time.Second, cfg.Kafka.PublishTimeout)
	require.Equal(t, "order_created", cfg.Kafka.OrderEventTopic)
	require.Equal(t, 5, cfg.Kafka.MaxAttempts)
	require.Len(t, cfg.Gateway.Routes, 1)
	require.Equal(t, "http://orders:3002", cfg.Gateway.Routes[0].Target)
}

func TestLoadDefaultsRoutes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: local\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, DefaultRoutes(), cfg.Gateway.Routes)
	require.Equal(t, 10*time.Second, cfg.Processor.Timeout)
	require.Equal(t, StoragePostgres, cfg.Storage)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db", Port: "5432", User: "u", Pwd: "p", DbName: "orders", SslMode: "disable"}

	require.Equal(t, "host=db port=5432 user=u dbname=orders password=p sslmode=disable", cfg.DSN())
}

func TestLoadStorage(t *testing.T) {
	dir := t.TempDir()

	memory := filepath.Join(dir, "memory.yaml")
	require.NoError(t, os.WriteFile(memory, []byte("storage: memory\n"), 0o600))

	cfg, err := Load(memory)
	require.NoError(t, err)
	require.Equal(t, StorageMemory, cfg.Storage)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("storage: mongo\n"), 0o600))

	_, err = Load(unknown)
	require.ErrorContains(t, err, "unknown storage")
}
