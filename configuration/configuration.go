package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	UpdateIntervalMs  int    `usage:"milliseconds between incremental index updates"`
	ReindexEvery      int    `usage:"update ticks between full reindex passes, 0 disables them"`
	EnableCompression bool   `usage:"gzip responses"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:         ":8080",
		UpdateIntervalMs: 1000,
		ReindexEvery:     60,
		ShowBanner:       true,
	}
}
