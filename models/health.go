package models

type HealthConfig struct {
	Port int `yaml:"port"`
}
