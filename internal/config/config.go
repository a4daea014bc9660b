package config

import "time"

type Config struct {
	DocumentPath string
	DocumentsDir string
	OutputPath   string
	FPS          int
	Workers      int
	ShowStats    bool
	BuildVersion string
	Mqtt         MqttConfig
}

type MqttConfig struct {
	URL       string
	Username  string
	Password  string
	ClientID  string
	Topic     string
	QoS       byte
	KeepAlive time.Duration
	Loop      bool
}

// DefaultFPS is used when neither the configuration nor the document sets
// a frame rate.
const DefaultFPS = 24

// FrameRate is the configured frame rate, or DefaultFPS when unset.
func (c *Config) FrameRate() int {
	if c.FPS <= 0 {
		return DefaultFPS
	}
	return c.FPS
}

// UseDocumentFPS adopts the frame rate stored in a document unless a flag,
// the environment or the config file already set one.
func (c *Config) UseDocumentFPS(fps int) {
	if c.FPS <= 0 && fps > 0 {
		c.FPS = fps
	}
}

// FrameInterval is the wall-clock time of one playhead position.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate())
}
