package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	cfg := Load()

	s.Equal("3001", cfg.Server.Port)
	s.Equal("sqlite", cfg.Database.Driver)
	s.Equal("db/milano_unified.db", cfg.Database.SQLitePath)
	s.Equal(15*time.Second, cfg.Server.ReadTimeout)
	s.Equal([]string{"*"}, cfg.Server.CORSAllowOrigins)
	s.Empty(cfg.Admin.ReloadKey)
}

func (s *ConfigTestSuite) TestLoad_EnvOverrides() {
	s.T().Setenv("DB_DRIVER", "postgres")
	s.T().Setenv("DB_NAME", "milano_shared")
	s.T().Setenv("SERVER_PORT", "9090")
	s.T().Setenv("RATE_LIMIT_PER_SECOND", "5")
	s.T().Setenv("ADMIN_RELOAD_KEY", "s3cret")

	cfg := Load()

	s.Equal("postgres", cfg.Database.Driver)
	s.Equal("9090", cfg.Server.Port)
	s.Equal(5, cfg.Server.RateLimitRPS)
	s.Equal("s3cret", cfg.Admin.ReloadKey)
	s.Contains(cfg.Database.DSN(), "dbname=milano_shared")
}

func (s *ConfigTestSuite) TestDSN_SQLiteIsReadOnly() {
	cfg := DatabaseConfig{Driver: "sqlite", SQLitePath: "/data/milano.db"}
	s.Equal("file:/data/milano.db?mode=ro&_busy_timeout=5000", cfg.DSN())
}

func (s *ConfigTestSuite) TestLoad_CORSList() {
	s.T().Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	cfg := Load()
	s.Equal([]string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func (s *ConfigTestSuite) TestLoad_InvalidIntFallsBack() {
	s.T().Setenv("DB_MAX_CONNECTIONS", "not-a-number")
	cfg := Load()
	s.Equal(10, cfg.Database.MaxConnections)
}
