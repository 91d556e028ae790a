package livetiming

type Config struct {
	WSAddr      string
	Name        string
	TopicPrefix string
	SendBuf     int
}

func DefaultConfig() Config {
	return Config{
		WSAddr:      "127.0.0.1:8765",
		Name:        "f1feed",
		TopicPrefix: "f1",
		SendBuf:     256,
	}
}
