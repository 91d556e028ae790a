package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"f1feed/pkg/bridge/livetiming"
	"f1feed/pkg/capture"
	"f1feed/pkg/config"
	"f1feed/pkg/engine"
	"f1feed/pkg/logger"
	"f1feed/pkg/sink"
	"f1feed/pkg/telemetry"
	"f1feed/pkg/transport"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	if len(args) == 0 {
		return runServer([]string{}, stdout, stderr)
	}

	switch args[0] {
	case "server":
		return runServer(args[1:], stdout, stderr)
	case "replay":
		return runReplay(args[1:], stdout, stderr)
	case "-h", "--help", "help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintln(stderr, "unknown command:", args[0])
		printUsage(stderr)
		return 2
	}
}

func runServer(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", config.DefaultConfigPath, "TOML config path")
	addr := fs.String("addr", "", "UDP listen address (overrides config)")
	logPath := fs.String("log", "", "JSONL output path (default: stdout)")
	capturePath := fs.String("capture", "", "record raw datagrams to this file")
	mockHz := fs.Int("mock-hz", 0, "publish synthetic packets at this rate instead of listening")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, _, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 1
	}
	if *addr != "" {
		cfg.Listener.Addr = *addr
	}
	if *logPath != "" {
		cfg.Log.JSONL = *logPath
	}
	if *capturePath != "" {
		cfg.Capture.Enabled = true
		cfg.Capture.Path = *capturePath
	}

	log := newLogger(stderr, cfg.Log.Level)

	var out io.Writer = stdout
	if cfg.Log.JSONL != "" {
		file, err := os.Create(cfg.Log.JSONL)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.Log.JSONL).Msg("open jsonl file")
			return 1
		}
		defer file.Close()
		out = file
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hub := engine.NewHub()
	go hub.Run(ctx)

	logWriter := logger.NewJSONLWriter(out)
	go logWriter.Consume(ctx, hub.Subscribe())

	if cfg.LiveTiming.Enabled {
		srv := livetiming.NewServer(livetiming.Config{
			WSAddr:      cfg.LiveTiming.WSAddr,
			Name:        cfg.LiveTiming.Name,
			TopicPrefix: cfg.LiveTiming.TopicPrefix,
			SendBuf:     cfg.LiveTiming.SendBuf,
		}, hub)
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.Error().Err(err).Msg("live timing server stopped")
			}
		}()
		log.Info().Str("addr", cfg.LiveTiming.WSAddr).Msg("live timing bridge enabled")
	}

	if cfg.Analytics.Enabled {
		a := sink.NewAnalytics(cfg.Analytics.Endpoint,
			sink.WithMaxBatch(cfg.Analytics.MaxBatch),
			sink.WithFlushInterval(cfg.FlushIntervalDuration()),
			sink.WithAPIKey(cfg.Analytics.APIKeyHeader, cfg.Analytics.APIKey),
			sink.WithLogger(log),
		)
		go a.Consume(ctx, hub.Subscribe())
		log.Info().Str("endpoint", cfg.Analytics.Endpoint).Msg("analytics sink enabled")
	}

	if *mockHz > 0 {
		log.Info().Int("hz", *mockHz).Msg("publishing synthetic telemetry")
		go runMockPublisher(ctx, hub, log, *mockHz)
		<-ctx.Done()
		return 0
	}

	var rec *capture.Writer
	if cfg.Capture.Enabled {
		file, err := os.Create(cfg.Capture.Path)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.Capture.Path).Msg("open capture file")
			return 1
		}
		defer file.Close()
		rec, err = capture.NewWriter(file)
		if err != nil {
			log.Error().Err(err).Msg("init capture writer")
			return 1
		}
		defer rec.Close()
		log.Info().Str("path", cfg.Capture.Path).Msg("capture enabled")
	}

	datagrams := make(chan []byte, cfg.Listener.QueueBuf)
	_, err = transport.StartListener(ctx, cfg.Listener.Addr, datagrams,
		transport.WithMaxDatagramSize(cfg.Listener.DatagramBuf),
		transport.WithReadTimeout(cfg.ReadTimeoutDuration()),
		transport.WithErrorHandler(func(err error) {
			log.Warn().Err(err).Msg("listener read")
		}),
	)
	if err != nil {
		log.Error().Err(err).Str("addr", cfg.Listener.Addr).Msg("start listener")
		return 1
	}
	log.Info().Str("addr", cfg.Listener.Addr).Msg("listening for telemetry")

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case dg := <-datagrams:
				if rec != nil {
					if err := rec.WriteDatagram(dg); err != nil {
						log.Warn().Err(err).Msg("capture write")
					}
				}
				publishDatagram(hub, log, dg, time.Now())
			}
		}
	}()

	<-ctx.Done()
	return 0
}

func runReplay(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(stderr)

	logLevel := fs.String("log-level", "warn", "log level")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "replay: expected exactly one capture file")
		return 2
	}

	log := newLogger(stderr, *logLevel)

	file, err := os.Open(fs.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("open capture file")
		return 1
	}
	defer file.Close()

	rd, err := capture.NewReader(file)
	if err != nil {
		log.Error().Err(err).Msg("read capture header")
		return 1
	}
	defer rd.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	events := make(chan engine.FeedEvent)
	done := make(chan struct{})
	logWriter := logger.NewJSONLWriter(stdout)
	go func() {
		logWriter.Consume(ctx, events)
		close(done)
	}()

	for {
		dg, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Error().Err(err).Msg("read capture")
			return 1
		}
		ev, err := decodeDatagram(log, dg, time.Now())
		if err != nil {
			continue
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			close(events)
			<-done
			return 0
		}
	}

	close(events)
	<-done
	return 0
}

func publishDatagram(hub *engine.Hub, log zerolog.Logger, dg []byte, ts time.Time) {
	ev, err := decodeDatagram(log, dg, ts)
	if err != nil {
		return
	}
	hub.Publish(ev)
}

func decodeDatagram(log zerolog.Logger, dg []byte, ts time.Time) (engine.FeedEvent, error) {
	pkt, err := telemetry.DecodePacket(dg)
	if err != nil {
		var unsup *telemetry.UnsupportedPacketError
		if errors.As(err, &unsup) {
			log.Debug().
				Uint16("format", unsup.Format).
				Uint8("version", unsup.PacketVersion).
				Uint8("id", unsup.ID).
				Msg("unsupported packet")
		} else {
			log.Warn().Err(err).Int("len", len(dg)).Msg("decode failed")
		}
		return engine.FeedEvent{}, err
	}
	h := pkt.PacketHeader()
	return engine.FeedEvent{
		ReceivedAt: ts,
		Kind:       h.PacketID,
		SessionUID: h.SessionUID,
		Frame:      h.FrameIdentifier,
		Packet:     pkt,
		Doc:        telemetry.ToTree(pkt),
	}, nil
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  f1feedd server [--config f1feed.toml] [--addr host:port] [--log file.jsonl] [--capture session.f1cap] [--mock-hz 20]")
	fmt.Fprintln(w, "  f1feedd replay [--log-level warn] session.f1cap")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  server   listen for UDP telemetry and fan decoded packets out to sinks")
	fmt.Fprintln(w, "  replay   decode a recorded capture file to JSONL on stdout")
}
