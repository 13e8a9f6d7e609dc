package bot

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Default target practice duration in minutes for new users
	DefaultSessionMinutes int
	// How many recent sessions /stats lists
	RecentSessions int
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		DefaultSessionMinutes: 10,
		RecentSessions:        5,
	}
}
