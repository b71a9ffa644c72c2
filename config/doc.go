// Package config loads client settings for ndex-go.
//
// It uses Viper to read a YAML or JSON file, godotenv to load a .env file and
// NDEX_* environment variables for overrides, where underscores map to
// nested keys (NDEX_PROXY_HOST sets proxy.host).
//
// # Usage
//
//	settings, err := config.LoadSettings(config.WithConfigFile("ndex.yml"))
//	if err != nil {
//		return err
//	}
//	cfg, err := settings.ClientConfig()
//	if err != nil {
//		return err
//	}
//	client, err := ndex.New(cfg)
package config
