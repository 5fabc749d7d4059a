package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 8081
  mode: test
database:
  driver: sqlite
  dbname: ":memory:"
order:
  strict_status_transitions: true
events:
  driver: kafka
  brokers: ["kafka-1:9092", "kafka-2:9092"]
`

func loadFromYAML(t *testing.T, content string) (*Config, error) {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	return load(v)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	cfg, err := loadFromYAML(t, sampleYAML)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.DSN())
	assert.True(t, cfg.Order.StrictStatusTransitions)
	assert.Equal(t, 10*time.Second, cfg.Order.CheckoutLockTTL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.Brokers)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTokenExpire)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BOOKSTORE_SERVER_PORT", "9999")
	t.Setenv("BOOKSTORE_JWT_SECRET", "from-env")

	cfg, err := loadFromYAML(t, sampleYAML)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestValidate(t *testing.T) {
	_, err := loadFromYAML(t, "server:\n  port: 70000\n")
	assert.ErrorContains(t, err, "无效的服务端口")

	_, err = loadFromYAML(t, "database:\n  driver: oracle\n")
	assert.ErrorContains(t, err, "不支持的数据库驱动")

	_, err = loadFromYAML(t, "order:\n  checkout_lock_ttl: 0s\n")
	assert.ErrorContains(t, err, "无效的下单锁过期时间")

	_, err = loadFromYAML(t, "order:\n  checkout_lock_ttl: -5s\n")
	assert.ErrorContains(t, err, "无效的下单锁过期时间")

	_, err = loadFromYAML(t, "server:\n  mode: release\n")
	assert.ErrorContains(t, err, "JWT")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	mysql := DatabaseConfig{Driver: DriverMySQL, User: "root", Password: "pw", Host: "db", Port: 3306,
		DBName: "bookstore", Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai"}
	assert.Equal(t, "root:pw@tcp(db:3306)/bookstore?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai&clientFoundRows=true", mysql.DSN())

	pg := DatabaseConfig{Driver: DriverPostgres, User: "u", Password: "p", Host: "pg", Port: 5432, DBName: "shop"}
	assert.Equal(t, "host=pg port=5432 user=u password=p dbname=shop sslmode=disable", pg.DSN())
}
