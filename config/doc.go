// Package config reads the environment (including a local .env file) into
// the settings the extraction tools share, and constructs the chat model for
// the configured LLM provider.
package config
