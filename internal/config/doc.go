// Package config manages user-level settings stored at ~/.rnsetup/config.yaml.
// Every key can be overridden with an RNSETUP_-prefixed environment variable;
// unset keys fall back to the defaults the scaffolder has always used.
package config
