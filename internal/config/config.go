package config

import (
	"encoding/base64"
	"fmt"
)

type Config struct {
	ServerAddr     string
	DatabasePath   string
	AccessTokenKey []byte
	IdTokenKey     []byte
}

func decodeSigningSecret(base64Secret string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(base64Secret)
}

func NewConfig(serverAddr, databasePath, accessSecret, idSecret string) (*Config, error) {
	if serverAddr == "" {
		return nil, fmt.Errorf("server address cannot be empty")
	}
	if databasePath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if accessSecret == "" {
		return nil, fmt.Errorf("access token secret cannot be empty")
	}
	if idSecret == "" {
		return nil, fmt.Errorf("id token secret cannot be empty")
	}

	// Decode the base64 encoded signing secrets
	accessKey, err := decodeSigningSecret(accessSecret)
	if err != nil {
		return nil, fmt.Errorf("decode access token secret: %w", err)
	}

	idKey, err := decodeSigningSecret(idSecret)
	if err != nil {
		return nil, fmt.Errorf("decode id token secret: %w", err)
	}

	return &Config{
		ServerAddr:     serverAddr,
		DatabasePath:   databasePath,
		AccessTokenKey: accessKey,
		IdTokenKey:     idKey,
	}, nil
}
