// Package config defines the ttscheck configuration: what deployment to
// validate, which packages and endpoints to probe, and where to write the
// report artifact.
//
// Configuration is loaded with Viper from ttscheck.yaml, searched in the
// working directory and then $XDG_CONFIG_HOME/ttscheck/. Every setting has
// a default matching the stock TTS Tool project layout, so no config file
// is required. Settings can also be overridden through TTSCHECK_* environment
// variables.
package config
