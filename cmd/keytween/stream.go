package main

import (
	"fmt"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"

	"github.com/ivlev/keytween/internal/engine"
	"github.com/ivlev/keytween/internal/stream"
)

var streamTracks string

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Publish samples to an MQTT topic at the document frame rate",
	Long: `Stream sends one JSON message per timeline position. Samples come from
--tracks (a file or database written by bake) or are baked from the
document first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var tracks []engine.Track
		if streamTracks != "" {
			t, err := readTracks(ctx, streamTracks)
			if err != nil {
				return fmt.Errorf("read %s: %w", streamTracks, err)
			}
			tracks = t
		} else {
			path, err := resolveDocument(cfg)
			if err != nil {
				return err
			}
			tl, doc, err := loadTimeline(path)
			if err != nil {
				return err
			}
			cfg.UseDocumentFPS(doc.FPS)
			if tracks, err = engine.NewBakeProject(cfg, tl).Run(ctx); err != nil {
				return fmt.Errorf("bake: %w", err)
			}
		}

		mqtt.ERROR = log.New(os.Stderr, "[mqtt] ", 0)

		options := mqtt.NewClientOptions().
			AddBroker(cfg.Mqtt.URL).
			SetClientID(cfg.Mqtt.ClientID).
			SetUsername(cfg.Mqtt.Username).
			SetPassword(cfg.Mqtt.Password).
			SetKeepAlive(cfg.Mqtt.KeepAlive).
			SetPingTimeout(5 * time.Second).
			SetOnConnectHandler(func(mqtt.Client) {
				fmt.Printf("[*] Подключено к %s\n", cfg.Mqtt.URL)
			})
		client := mqtt.NewClient(options)

		if token := client.Connect(); token.Wait() && token.Error() != nil {
			return fmt.Errorf("connect %s: %w", cfg.Mqtt.URL, token.Error())
		}
		defer client.Disconnect(250)

		s := stream.NewStreamer(client, cfg.Mqtt.Topic, cfg.Mqtt.QoS, cfg.FrameInterval(), cfg.Mqtt.Loop, tracks)
		fmt.Printf("[*] Трансляция в %s @ %d FPS\n", cfg.Mqtt.Topic, cfg.FrameRate())
		if err := s.Run(ctx); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "[+++] Успех! Отправлено позиций: %d в %s\n", s.Sent(), cfg.Mqtt.Topic)
		return nil
	},
}

func init() {
	streamCmd.Flags().StringVar(&streamTracks, "tracks", "", "baked samples to play (.yaml, .json, .db); bakes the document when empty")
	streamCmd.Flags().String("document", "", "timeline document (default: newest in the documents directory)")
	streamCmd.Flags().Int("fps", 0, "positions per second (default: config, then document fps, then 24)")
	streamCmd.Flags().Int("workers", 0, "frames baked in parallel (default: logical CPUs)")
	streamCmd.Flags().String("broker", "", "MQTT broker URL (default: tcp://localhost:1883)")
	streamCmd.Flags().String("topic", "", "MQTT topic (default: keytween/samples)")
	streamCmd.Flags().Int("qos", 0, "MQTT quality of service, 0 to 2")
	streamCmd.Flags().Bool("loop", false, "restart from the first position after the last")
}
