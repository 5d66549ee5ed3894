package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Service struct {
	URL    string `yaml:"url" mapstructure:"url"`
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
}
type Services struct {
	Speech  Service `yaml:"speech" mapstructure:"speech"`
	Emotion Service `yaml:"emotion" mapstructure:"emotion"`
}
type Audio struct {
	SampleRate int    `yaml:"sample_rate" mapstructure:"sample_rate"`
	ChunkSize  int    `yaml:"chunk_size" mapstructure:"chunk_size"`
	TempDir    string `yaml:"temp_dir" mapstructure:"temp_dir"`
	TempName   string `yaml:"temp_name" mapstructure:"temp_name"`
}
type Camera struct {
	Device  int    `yaml:"device" mapstructure:"device"`
	Window  string `yaml:"window" mapstructure:"window"`
	KeyPoll int    `yaml:"key_poll_ms" mapstructure:"key_poll_ms"`
}
type HTTP struct {
	Timeout int `yaml:"timeout" mapstructure:"timeout"` // seconds, 0 = no timeout
}
type Pipeline struct {
	Name   string `yaml:"name" mapstructure:"name"`
	LogLvl string `yaml:"log_level" mapstructure:"log_level"`
}
type Paths struct {
	Outputs string `yaml:"outputs" mapstructure:"outputs"`
}
type Root struct {
	Pipeline Pipeline `yaml:"pipeline" mapstructure:"pipeline"`
	Audio    Audio    `yaml:"audio" mapstructure:"audio"`
	Camera   Camera   `yaml:"camera" mapstructure:"camera"`
	Services Services `yaml:"services" mapstructure:"services"`
	HTTP     HTTP     `yaml:"http" mapstructure:"http"`
	Paths    Paths    `yaml:"paths" mapstructure:"paths"`
}

// Default is used when no config file is found.
func Default() *Root {
	var c Root
	c.Pipeline.Name = "gesture"
	c.Pipeline.LogLvl = "info"
	c.Audio = Audio{SampleRate: 16000, ChunkSize: 1024, TempDir: ".", TempName: "temp.wav"}
	c.Camera = Camera{Device: 0, Window: "Gesture Project: Facial Expressions", KeyPoll: 1}
	c.Services.Speech.URL = "https://api.sarvam.ai"
	c.Services.Emotion.URL = "http://localhost:8005"
	c.HTTP.Timeout = 60
	return &c
}

// Load reads the YAML config (explicit path first, then the CONFIG_ENV
// guesses), falling back to Default. Environment overrides are applied
// through v: GESTURE_<SECTION>_<KEY>, plus SARVAM_API_KEY for the speech key.
// v may carry bound command flags; nil means environment only.
func Load(path string, v *viper.Viper) (*Root, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	guess := []string{
		filepath.Join("config", env, "config.yaml"),
		"config.yaml",
	}
	if path != "" {
		guess = []string{path}
	}

	cfg := Default()
	for _, p := range guess {
		f, err := os.Open(p)
		if errors.Is(err, fs.ErrNotExist) && path == "" {
			continue
		}
		if err != nil {
			return nil, err
		}
		err = yaml.NewDecoder(f).Decode(cfg)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", p, err)
		}
		break
	}

	if v == nil {
		v = viper.New()
	}
	if err := overlay(cfg, v); err != nil {
		return nil, err
	}
	return cfg, nil
}

func overlay(cfg *Root, v *viper.Viper) error {
	v.SetEnvPrefix("GESTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("services.speech.api_key", "GESTURE_SERVICES_SPEECH_API_KEY", "SARVAM_API_KEY")

	// AutomaticEnv only resolves keys viper already knows about.
	for k, val := range flatten(cfg) {
		v.SetDefault(k, val)
	}
	return v.Unmarshal(cfg)
}

func flatten(cfg *Root) map[string]any {
	return map[string]any{
		"pipeline.name":            cfg.Pipeline.Name,
		"pipeline.log_level":       cfg.Pipeline.LogLvl,
		"audio.sample_rate":        cfg.Audio.SampleRate,
		"audio.chunk_size":         cfg.Audio.ChunkSize,
		"audio.temp_dir":           cfg.Audio.TempDir,
		"audio.temp_name":          cfg.Audio.TempName,
		"camera.device":            cfg.Camera.Device,
		"camera.window":            cfg.Camera.Window,
		"camera.key_poll_ms":       cfg.Camera.KeyPoll,
		"services.speech.url":      cfg.Services.Speech.URL,
		"services.speech.api_key":  cfg.Services.Speech.APIKey,
		"services.emotion.url":     cfg.Services.Emotion.URL,
		"services.emotion.api_key": cfg.Services.Emotion.APIKey,
		"http.timeout":             cfg.HTTP.Timeout,
		"paths.outputs":            cfg.Paths.Outputs,
	}
}

func DurSeconds(n int) time.Duration { return time.Duration(n) * time.Second }

func DurMillis(n int) time.Duration { return time.Duration(n) * time.Millisecond }
