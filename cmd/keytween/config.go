package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ivlev/keytween/internal/config"
)

const (
	configFileName = "keytween"
	configFileType = "yaml"
	envPrefix      = "KEYTWEEN"

	cfgKeyDocument     = "document"
	cfgKeyDocumentsDir = "documents_dir"
	cfgKeyOutput       = "output"
	cfgKeyFPS          = "fps"
	cfgKeyWorkers      = "workers"
	cfgKeyStats        = "stats"

	cfgKeyMqttURL       = "mqtt.url"
	cfgKeyMqttUsername  = "mqtt.username"
	cfgKeyMqttPassword  = "mqtt.password"
	cfgKeyMqttClientID  = "mqtt.client_id"
	cfgKeyMqttTopic     = "mqtt.topic"
	cfgKeyMqttQoS       = "mqtt.qos"
	cfgKeyMqttKeepAlive = "mqtt.keep_alive"
	cfgKeyMqttLoop      = "mqtt.loop"
)

// flagKeys maps command flags onto config keys.
var flagKeys = map[string]string{
	"document":      cfgKeyDocument,
	"documents-dir": cfgKeyDocumentsDir,
	"output":        cfgKeyOutput,
	"fps":           cfgKeyFPS,
	"workers":       cfgKeyWorkers,
	"stats":         cfgKeyStats,
	"broker":        cfgKeyMqttURL,
	"topic":         cfgKeyMqttTopic,
	"qos":           cfgKeyMqttQoS,
	"loop":          cfgKeyMqttLoop,
}

// loadConfig resolves settings with the precedence flag > env > config file >
// default. A missing keytween.yaml is not an error; a missing explicit
// --config file is. FPS has no default here and stays 0 when nothing sets
// it, so a document's own rate can fill in below env and file.
func loadConfig(path string, flags *pflag.FlagSet) (*config.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDocumentsDir, "input/timelines")
	v.SetDefault(cfgKeyWorkers, 0)
	v.SetDefault(cfgKeyMqttURL, "tcp://localhost:1883")
	v.SetDefault(cfgKeyMqttClientID, "keytween")
	v.SetDefault(cfgKeyMqttTopic, "keytween/samples")
	v.SetDefault(cfgKeyMqttQoS, 0)
	v.SetDefault(cfgKeyMqttKeepAlive, 30*time.Second)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	qos := v.GetInt(cfgKeyMqttQoS)
	if qos < 0 || qos > 2 {
		return nil, fmt.Errorf("invalid mqtt qos %d", qos)
	}

	return &config.Config{
		DocumentPath: v.GetString(cfgKeyDocument),
		DocumentsDir: v.GetString(cfgKeyDocumentsDir),
		OutputPath:   v.GetString(cfgKeyOutput),
		FPS:          v.GetInt(cfgKeyFPS),
		Workers:      v.GetInt(cfgKeyWorkers),
		ShowStats:    v.GetBool(cfgKeyStats),
		BuildVersion: buildVersion,
		Mqtt: config.MqttConfig{
			URL:       v.GetString(cfgKeyMqttURL),
			Username:  v.GetString(cfgKeyMqttUsername),
			Password:  v.GetString(cfgKeyMqttPassword),
			ClientID:  v.GetString(cfgKeyMqttClientID),
			Topic:     v.GetString(cfgKeyMqttTopic),
			QoS:       byte(qos),
			KeepAlive: v.GetDuration(cfgKeyMqttKeepAlive),
			Loop:      v.GetBool(cfgKeyMqttLoop),
		},
	}, nil
}
