package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey     = "API_PORT"
	ethNodeEnvKey     = "ETH_NODE_URL"
	ethNetworkEnvKey  = "ETH_NETWORK"
	dbConnEnvKey      = "DB_CONNECTION_URL"
	jwtSecretEnvKey   = "JWT_SECRET"
	storePathEnvKey   = "SECURE_STORE_PATH"
	storeSecretEnvKey = "SECURE_STORE_KEY"
)

type App struct {
	Port            string
	NodeURL         string
	Network         string
	DBConnectionURL string
	JWTSecret       string
	StorePath       string
	StoreKey        string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	network, ok := os.LookupEnv(ethNetworkEnvKey)
	if !ok {
		network = "sepolia"
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	storePath, ok := os.LookupEnv(storePathEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, storePathEnvKey)
	}

	storeKey, ok := os.LookupEnv(storeSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, storeSecretEnvKey)
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		Network:         network,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		StorePath:       storePath,
		StoreKey:        storeKey,
	}, nil
}
