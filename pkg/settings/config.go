package settings

type Config struct {
	Logger Logger `mapstructure:"logger"`
	Queue  Queue  `mapstructure:"queue"`
}

// Queue is the configuration for a bounded ring queue.
// A zero Capacity selects the queue package default.
type Queue struct {
	Capacity int `mapstructure:"capacity" validate:"gte=0"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}
