// Package config loads restkit client configuration from YAML files and
// environment variables.
//
// Configuration is resolved in layers: config.yml provides the base, then
// environment variables (optionally loaded from a .env file) override it.
//
//	cfg, err := config.Load("backend-client")
//	if err != nil {
//	    ...
//	}
//	client, err := rest.New(*cfg)
package config
