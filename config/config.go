package config

import (
	"os"
	"strconv"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Server
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// Upstream API keys
	WeatherAPIKey  string // OpenWeatherMap
	AirKoreaAPIKey string // 에어코리아 대기오염정보
	SunriseAPIKey  string // 천문연구원 출몰시각 정보

	// 기본 관측 지점 (전남 화순군 화순읍)
	DefaultLatitude  string
	DefaultLongitude string
	DefaultStation   string
	DefaultSido      string

	// 고정 UTC 오프셋 (KST, +9시간)
	UTCOffsetSeconds int

	// MQTT broker for farm sensors
	MQTTBrokerURL string
	MQTTClientID  string

	// Local datasets
	ExcelFilePath string
	FacilityCSV   string
}

// LoadConfig loads config from environment variables
func LoadConfig() *Config {
	envType := getEnv("ENV_TYPE", "LOCAL")

	return &Config{
		EnvType: envType,

		// Database config
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "farm"),
		DBPort:     getEnv("DB_PORT", "3306"),

		// Server config
		ServerPort: getEnv("SERVER_PORT", "8086"),

		// Redis config
		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// Upstream API keys
		WeatherAPIKey:  getEnv("WEATHER_API_KEY", ""),
		AirKoreaAPIKey: getEnv("AIR_KOREA_API_KEY", ""),
		SunriseAPIKey:  getEnv("SUNRISE_API_KEY", ""),

		// 기본 위치: 화순읍
		DefaultLatitude:  getEnv("DEFAULT_LATITUDE", "35.0519"),
		DefaultLongitude: getEnv("DEFAULT_LONGITUDE", "126.9918"),
		DefaultStation:   getEnv("DEFAULT_STATION", "화순읍"),
		DefaultSido:      getEnv("DEFAULT_SIDO", "전남"),

		UTCOffsetSeconds: getEnvAsInt("UTC_OFFSET_SECONDS", 9*60*60),

		// MQTT config
		MQTTBrokerURL: getEnv("MQTT_BROKER_URL", "tcp://localhost:1883"),
		MQTTClientID:  getEnv("MQTT_CLIENT_ID", "backun-farm-backend"),

		// Local datasets
		ExcelFilePath: getEnv("EXCEL_FILE_PATH", "data.xlsx"),
		FacilityCSV:   getEnv("FACILITY_CSV_PATH", "전라남도 화순군_노인복지시설_20240628.csv"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
