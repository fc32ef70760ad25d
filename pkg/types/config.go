package types

// Config represents the configuration for polycalc
type Config struct {
	LogLevel            string            `json:"log_level,omitempty" yaml:"log_level" toml:"log_level" env:"LOG_LEVEL"`
	AbortKeyword        string            `json:"abort_keyword,omitempty" yaml:"abort_keyword" toml:"abort_keyword" env:"ABORT_KEYWORD"`
	MaxIdentifierLength int               `json:"max_identifier_length,omitempty" yaml:"max_identifier_length" toml:"max_identifier_length" env:"MAX_IDENTIFIER_LENGTH"`
	Variables           map[string]string `json:"variables,omitempty" yaml:"variables" toml:"variables"`
}
