package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *Config

// Config holds application settings. Values come from defaults, an optional
// `config/.env.<env>` file and finally environment variables (highest priority).
type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	AppName  string

	// Timezone is the single IANA location used to strip raw timestamps down
	// to local wall-clock times. The engine itself never converts timezones.
	Timezone string

	// grid rendering defaults
	GridDayStartHour int // first time ladder row, 24h clock
	GridDayEndHour   int // last time ladder row (exclusive), 24h clock
	GridCellMinutes  int // cell duration for day/week grids

	// booking shortlists
	ShortlistLimit int
}

// Location resolves the configured Timezone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Ratiba")
	v.SetDefault("timezone", "Africa/Nairobi")
	v.SetDefault("gridDayStartHour", 5)
	v.SetDefault("gridDayEndHour", 23)
	v.SetDefault("gridCellMinutes", 60)
	v.SetDefault("shortlistLimit", 6)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		Env:              env,
		AppName:          v.GetString("appName"),
		Timezone:         v.GetString("timezone"),
		GridDayStartHour: v.GetInt("gridDayStartHour"),
		GridDayEndHour:   v.GetInt("gridDayEndHour"),
		GridCellMinutes:  v.GetInt("gridCellMinutes"),
		ShortlistLimit:   v.GetInt("shortlistLimit"),
	}
}
