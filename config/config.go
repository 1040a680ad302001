package config

import (
	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 记忆文档路径
	MemoryFile string `mapstructure:"MEMORY_FILE"`

	// Groq API配置
	GroqAPIKey      string `mapstructure:"GROQ_API_KEY"`
	GroqAPIEndpoint string `mapstructure:"GROQ_API_ENDPOINT"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("MEMORY_FILE", "memory.json")
	viper.SetDefault("GROQ_API_ENDPOINT", "https://api.groq.com/openai/v1")

	err = viper.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
