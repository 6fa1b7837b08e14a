package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")

	cfg := New()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "purchases", cfg.Kafka.PurchasesTopic)
	assert.Equal(t, "notifications", cfg.Kafka.NotificationsTopic)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, 256, cfg.Notifications.QueueSize)
	assert.Equal(t, 5*time.Second, cfg.Notifications.SendTimeout)
	assert.Equal(t, 72*time.Hour, cfg.Jobs.ReminderAfter)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("NOTIFICATIONS_ENABLED", "false")
	t.Setenv("NOTIFICATIONS_SEND_TIMEOUT", "1s")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("REMINDER_AFTER", "bad")

	cfg := New()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, time.Second, cfg.Notifications.SendTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 72*time.Hour, cfg.Jobs.ReminderAfter, "invalid value falls back to default")
}

func TestValidate(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")

	testCases := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "unknown env", modify: func(c *Config) { c.Env = "dev" }},
		{name: "no brokers", modify: func(c *Config) { c.Kafka.Brokers = nil }},
		{name: "empty sweep schedule", modify: func(c *Config) { c.Jobs.SweepSchedule = "" }},
		{name: "zero cache capacity", modify: func(c *Config) { c.Cache.Capacity = 0 }},
		{name: "zero notification queue", modify: func(c *Config) { c.Notifications.QueueSize = 0 }},
		{name: "bad cors origin", modify: func(c *Config) { c.Cors.AllowedOrigins = []string{"not a url"} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New()
			tc.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
