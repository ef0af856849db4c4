package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lengthconverter/converter"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal("Failed to write config:", err)
	}
	return path
}

func TestFromFile(t *testing.T) {
	path := writeConfig(t, `
Decimals = 0
Separator = ","
ThousandsSeparator = "."
Strict = true
LogLevel = "debug"
`)

	conf, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	want := Config{
		Decimals:           0,
		Separator:          ",",
		ThousandsSeparator: ".",
		Strict:             true,
		LogLevel:           "debug",
	}
	if conf != want {
		t.Errorf("FromFile = %+v, want %+v", conf, want)
	}
	if err := ValidateConfig(conf); err != nil {
		t.Errorf("ValidateConfig: %v", err)
	}
}

func TestFromFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "Decimals = 4\n")

	conf, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	want := Default()
	want.Decimals = 4
	if conf != want {
		t.Errorf("FromFile = %+v, want %+v", conf, want)
	}
}

func TestFromFileErrors(t *testing.T) {
	if _, err := FromFile(""); err == nil {
		t.Error("empty file name accepted")
	}
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
	if _, err := FromFile(writeConfig(t, "Decimals = \"two\"\n")); err == nil {
		t.Error("invalid decimals type accepted")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"no thousands separator", func(c *Config) { c.ThousandsSeparator = "" }, true},
		{"negative decimals", func(c *Config) { c.Decimals = -1 }, false},
		{"too many decimals", func(c *Config) { c.Decimals = converter.MaxDecimals + 1 }, false},
		{"empty separator", func(c *Config) { c.Separator = "" }, false},
		{"same separators", func(c *Config) { c.ThousandsSeparator = "." }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Default()
			tt.modify(&conf)
			err := ValidateConfig(conf)
			if tt.valid && err != nil {
				t.Errorf("ValidateConfig: unexpected error %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("ValidateConfig: expected an error")
			}
		})
	}
}

func TestShowOptions(t *testing.T) {
	conf := Default()
	conf.Decimals = 0
	conf.Separator = ","
	conf.ThousandsSeparator = "."

	got := conf.NewConverter(1).From("m").To("mm").Show(conf.ShowOptions()...)
	if got != "1.000" {
		t.Errorf("Show = %q, want 1.000", got)
	}
}

func TestNewConverterStrict(t *testing.T) {
	conf := Default()
	if conf.NewConverter(1).From("parsec").Err() != nil {
		t.Error("permissive converter reported an error")
	}
	conf.Strict = true
	if conf.NewConverter(1).From("parsec").Err() == nil {
		t.Error("strict converter did not report the unknown unit")
	}
}
