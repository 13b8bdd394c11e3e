// Package main implements wiretap, a diagnostic tap on the chat gateway.
// It connects over WebSocket, identifies, and decodes every incoming
// message create event, logging what the model understood and what it
// passed through as unknown. Run with -strict to fail loudly on protocol
// drift instead of tolerating it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Siphalor/twilight/message"
)

// Gateway wire protocol constants.
const (
	opcodeDispatch     = 0
	opcodeHeartbeat    = 1
	opcodeIdentify     = 2
	opcodeHello        = 10
	opcodeHeartbeatAck = 11

	eventMessageCreate = "MESSAGE_CREATE"
	eventMessageUpdate = "MESSAGE_UPDATE"

	// MessageContentIntent is required on top of the guild/direct message
	// intents to receive content in message payloads.
	guildMessagesIntent  = 1 << 9
	directMessagesIntent = 1 << 12
	messageContentIntent = 1 << 15
)

// envelope is the gateway event frame. The payload stays raw until the
// opcode and event name select a decoder.
type envelope struct {
	Op       int             `json:"op"`
	Data     json.RawMessage `json:"d"`
	Sequence uint64          `json:"s"`
	Type     string          `json:"t"`
}

type helloData struct {
	HeartbeatInterval int `json:"heartbeat_interval"`
}

type cliConfig struct {
	strict   bool
	maxDepth int
	logLevel string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "wiretap:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := parseFlags()

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	// .env is optional; the token may come from the environment directly
	_ = godotenv.Load()
	token, ok := os.LookupEnv("WIRETAP_TOKEN")
	if !ok || token == "" {
		return fmt.Errorf("WIRETAP_TOKEN is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tap := &tap{
		token:  token,
		cfg:    cfg,
		logger: logger,
	}
	return tap.listen(ctx)
}

func parseFlags() cliConfig {
	cfg := cliConfig{}
	flag.BoolVar(&cfg.strict, "strict",
		os.Getenv("WIRETAP_STRICT") == "true",
		"Reject unrecognized discriminants instead of logging them (env: WIRETAP_STRICT)")
	flag.IntVar(&cfg.maxDepth, "max-depth", 8,
		"Maximum component nesting depth to accept")
	flag.StringVar(&cfg.logLevel, "log-level", "debug",
		"Log level: trace, debug, info, warn, error")
	flag.Parse()
	return cfg
}

type tap struct {
	token  string
	cfg    cliConfig
	logger zerolog.Logger

	conn     *websocket.Conn
	sequence uint64
}

func (t *tap) listen(ctx context.Context) error {
	gatewayURL := url.URL{
		Scheme:   "wss",
		Host:     "gateway.discord.gg",
		RawQuery: "v=10&encoding=json",
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, gatewayURL.String(), nil)
	if err != nil {
		return fmt.Errorf("dial gateway: %w", err)
	}
	t.conn = conn
	defer conn.Close()
	t.logger.Info().Str("url", gatewayURL.String()).Msg("connected")

	hello, err := t.readEnvelope()
	if err != nil {
		return fmt.Errorf("read hello: %w", err)
	}
	if hello.Op != opcodeHello {
		return fmt.Errorf("expected hello opcode, got %d", hello.Op)
	}
	var hd helloData
	if err := json.Unmarshal(hello.Data, &hd); err != nil {
		return fmt.Errorf("parse hello: %w", err)
	}

	if err := t.identify(); err != nil {
		return fmt.Errorf("identify: %w", err)
	}

	go t.heartbeat(ctx, time.Duration(hd.HeartbeatInterval)*time.Millisecond)

	// close the connection on shutdown to unblock the read loop
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		env, err := t.readEnvelope()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read event: %w", err)
		}
		if env.Sequence != 0 {
			t.sequence = env.Sequence
		}

		switch env.Op {
		case opcodeDispatch:
			t.dispatch(env)
		case opcodeHeartbeat:
			if err := t.sendHeartbeat(); err != nil {
				return err
			}
		case opcodeHeartbeatAck:
		default:
			t.logger.Debug().Int("op", env.Op).Msg("unhandled opcode")
		}
	}
}

func (t *tap) readEnvelope() (*envelope, error) {
	var env envelope
	if err := t.conn.ReadJSON(&env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (t *tap) identify() error {
	payload := map[string]any{
		"op": opcodeIdentify,
		"d": map[string]any{
			"token":   t.token,
			"intents": guildMessagesIntent | directMessagesIntent | messageContentIntent,
			"properties": map[string]string{
				"os":      "linux",
				"browser": "wiretap",
				"device":  "wiretap",
			},
		},
	}
	return t.conn.WriteJSON(payload)
}

func (t *tap) sendHeartbeat() error {
	return t.conn.WriteJSON(map[string]any{
		"op": opcodeHeartbeat,
		"d":  t.sequence,
	})
}

func (t *tap) heartbeat(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.sendHeartbeat(); err != nil {
				t.logger.Error().Err(err).Msg("heartbeat failed")
				return
			}
		}
	}
}

// dispatch decodes message events and logs the result. Other dispatch
// types are counted but not modeled here.
func (t *tap) dispatch(env *envelope) {
	switch env.Type {
	case eventMessageCreate, eventMessageUpdate:
	default:
		t.logger.Trace().Str("event", env.Type).Msg("skipped dispatch")
		return
	}

	opts := []message.DecodeOption{
		message.WithMaxComponentDepth(t.cfg.maxDepth),
		message.WithLogger(t.logger),
	}
	if t.cfg.strict {
		opts = append(opts, message.WithMode(message.Strict))
	}

	msg, err := message.Decode(env.Data, opts...)
	if err != nil {
		t.logger.Error().
			Err(err).
			Str("event", env.Type).
			RawJSON("payload", env.Data).
			Msg("decode failed")
		return
	}

	ev := t.logger.Info().
		Str("event", env.Type).
		Str("id", msg.ID.String()).
		Str("channel_id", msg.ChannelID.String()).
		Str("type", msg.Kind.String()).
		Time("created", msg.ID.Time())
	if content, ok := msg.Content.Get(); ok {
		ev = ev.Str("content", content)
	}
	if msg.Author != nil {
		ev = ev.Str("author", msg.Author.Username)
	}
	if len(msg.Components) > 0 {
		ev = ev.Int("components", len(msg.Components))
	}
	if unknown := msg.Flags.UnknownBits(); unknown != 0 {
		ev = ev.Uint64("unknown_flag_bits", uint64(unknown))
	}
	ev.Msg("message")
}
