package config

// ServerConfig holds configuration for the replica storefront server
type ServerConfig struct {
	Port string
	// OrderStore selects where completed orders are kept: "memory" or "postgres"
	OrderStore string
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	port := getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	store := getenv("ORDER_STORE")
	if store == "" {
		store = "memory"
	}

	return ServerConfig{
		Port:       port,
		OrderStore: store,
	}
}
