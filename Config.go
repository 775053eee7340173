package main

import "github.com/spf13/viper"

const DefaultListenAddress = ":8080"
const DefaultDatabaseFilepath = "sheets.db"

type Config struct {
	ListenAddress    string
	DatabaseFilepath string
}

// LoadConfig reads configuration from the environment with viper;
// unset variables fall back to the defaults above.
func LoadConfig() Config {
	v := viper.New()
	v.SetDefault("LISTEN_ADDRESS", DefaultListenAddress)
	v.SetDefault("DATABASE_FILEPATH", DefaultDatabaseFilepath)
	v.AutomaticEnv()

	return Config{
		ListenAddress:    v.GetString("LISTEN_ADDRESS"),
		DatabaseFilepath: v.GetString("DATABASE_FILEPATH"),
	}
}
