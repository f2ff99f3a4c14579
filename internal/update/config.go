package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DesktopNotifications bool
	DefaultAccuracy      int
	AlarmBuffer          int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		DefaultAccuracy:      70,
		AlarmBuffer:          64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("STUDYPLANNER_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("STUDYPLANNER_DEFAULT_ACCURACY"); ok && v >= 0 && v <= 100 {
		cfg.DefaultAccuracy = v
	}
	if v, ok := getEnvInt("STUDYPLANNER_ALARM_BUFFER"); ok && v > 0 {
		cfg.AlarmBuffer = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
