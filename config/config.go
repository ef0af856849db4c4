package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	log15 "gopkg.in/inconshreveable/log15.v2"

	"lengthconverter/converter"
)

// Config holds the converter's formatting defaults
type Config struct {
	Decimals           int
	Separator          string
	ThousandsSeparator string
	Strict             bool
	LogLevel           string
}

// Default returns the settings used when no configuration file is given.
func Default() Config {
	return Config{
		Decimals:           2,
		Separator:          ".",
		ThousandsSeparator: ",",
		LogLevel:           "info",
	}
}

// FromFile reads the specified TOML configuration file and returns a Config object.
// Keys missing from the file keep their default value.
func FromFile(configFile string) (Config, error) {
	if configFile == "" {
		return Config{}, fmt.Errorf("nom de fichier de configuration vide")
	}

	_, err := os.Stat(configFile)
	if err != nil {
		return Config{}, fmt.Errorf("fichier de configuration manquant: %s - %w", configFile, err)
	}

	config := Default()
	if _, err := toml.DecodeFile(configFile, &config); err != nil {
		return Config{}, fmt.Errorf("erreur lors du décodage du fichier de configuration: %w", err)
	}
	return config, nil
}

// ValidateConfig checks that the config object has all the values it should.
func ValidateConfig(config Config) error {
	if config.Decimals < 0 || config.Decimals > converter.MaxDecimals {
		return fmt.Errorf("nombre de décimales invalide: %d (attendu entre 0 et %d)", config.Decimals, converter.MaxDecimals)
	}
	if config.Separator == "" {
		return fmt.Errorf("séparateur décimal vide, impossible de continuer")
	}
	if config.Separator == config.ThousandsSeparator {
		return fmt.Errorf("le séparateur décimal et le séparateur des milliers doivent être différents")
	}
	if _, err := log15.LvlFromString(config.LogLevel); err != nil {
		return fmt.Errorf("niveau de log invalide: %s - %w", config.LogLevel, err)
	}
	return nil
}

// ShowOptions turns the formatting settings into converter options
func (config Config) ShowOptions() []converter.Option {
	return []converter.Option{
		converter.Decimals(config.Decimals),
		converter.Separator(config.Separator),
		converter.ThousandsSeparator(config.ThousandsSeparator),
	}
}

// NewConverter returns a converter for value honouring the Strict setting
func (config Config) NewConverter(value float64) *converter.Converter {
	if config.Strict {
		return converter.NewStrict(value)
	}
	return converter.New(value)
}
