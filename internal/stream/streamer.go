// Package stream plays baked samples over MQTT, one message per timeline
// position.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/ivlev/keytween/internal/engine"
)

// Publisher is the part of mqtt.Client the Streamer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer sends samples to an MQTT topic at a fixed rate.
type Streamer struct {
	client   Publisher
	topic    string
	qos      byte
	interval time.Duration
	loop     bool

	positions []engine.PositionSamples
	sent      int
}

// NewStreamer creates a Streamer for the given tracks.
func NewStreamer(client Publisher, topic string, qos byte, interval time.Duration, loop bool, tracks []engine.Track) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.qos = qos
	s.interval = interval
	s.loop = loop
	s.positions = engine.Positions(tracks)
	return s
}

// Sent reports how many messages were published.
func (s *Streamer) Sent() int {
	return s.sent
}

// SendPosition publishes the poses of one timeline position.
func (s *Streamer) SendPosition(p engine.PositionSamples) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode position %d: %w", p.Position, err)
	}

	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish position %d: %w", p.Position, err)
	}

	s.sent++
	return nil
}

// Run publishes every position in order, one timeline position per tick,
// starting at the first position that has samples. Uncovered positions in
// between still take a tick. It returns after the last position unless
// looping, or when ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	if len(s.positions) == 0 {
		return fmt.Errorf("nothing to stream")
	}

	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	first := s.positions[0].Position
	clock := first
	i := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
		}

		if s.positions[i].Position == clock {
			if err := s.SendPosition(s.positions[i]); err != nil {
				return err
			}
			i++
		}
		clock++

		if i == len(s.positions) {
			if !s.loop {
				return nil
			}
			fmt.Printf("[*] Повтор %s после %d позиций\n", s.topic, i)
			i = 0
			clock = first
		}
	}
}
