package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	BaseURL     string
	DatabaseDSN string

	JWTSecret string

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string

	// CAPTCHA verification is enabled only when a secret is configured.
	CaptchaSecret    string
	CaptchaVerifyURL string
	CaptchaFailOpen  bool

	CurfewEnabled  bool
	CurfewTimezone string
	ExemptPrefixes []string

	AdminStudentID string
	AdminPassword  string
	AdminName      string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		ServerPort:  getEnv("SERVER_PORT", ":3000"),
		BaseURL:     getEnv("BASE_URL", "*"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		CaptchaSecret:    os.Getenv("CAPTCHA_SECRET"),
		CaptchaVerifyURL: getEnv("CAPTCHA_VERIFY_URL", "https://hcaptcha.com/siteverify"),
		CaptchaFailOpen:  getEnvBool("CAPTCHA_FAIL_OPEN", true),

		CurfewEnabled:  getEnvBool("CURFEW_ENABLED", true),
		CurfewTimezone: getEnv("CURFEW_TIMEZONE", "Asia/Shanghai"),
		ExemptPrefixes: splitList(getEnv("CURFEW_EXEMPT_PREFIXES", "/static/,/media/")),

		AdminStudentID: getEnv("ADMIN_STUDENT_ID", "admin"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		AdminName:      getEnv("ADMIN_NAME", "Administrator"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
