package conf

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"db"`
	SSL      bool   `json:"ssl"`
}

type Config struct {
	Count    int            `json:"count"`
	Target   string         `json:"target"`
	Tool     string         `json:"tool"`
	Native   bool           `json:"native"`
	TimeoutS int            `json:"timeout_s"`
	Verbose  bool           `json:"verbose"`
	Save     bool           `json:"save"`
	Out      string         `json:"-"`
	Postgres PostgresConfig `json:"postgres"`
}

var ErrTooManyArgs = errors.New("too many arguments, expected [count] [target-url]")

// read config file.
func ReadConfig(path string, config *Config) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}

	b, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	err = json.Unmarshal(b, &config)
	if err != nil {
		return fmt.Errorf("could not parse json: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("could not close file: %w", err)
	}

	return nil
}

const (
	defaultCount        = 10
	defaultTarget       = "http://127.0.0.1:8000/api/tasks/"
	defaultTool         = "curl"
	defaultTimeoutS     = 5
	defaultPostgresPort = 5432
)

var DefaultConfig = Config{
	Count:    defaultCount,
	Target:   defaultTarget,
	Tool:     defaultTool,
	Native:   false,
	TimeoutS: defaultTimeoutS,
	Verbose:  false,
	Save:     false,
	Out:      "",
	Postgres: PostgresConfig{
		Host:     "localhost",
		Port:     defaultPostgresPort,
		SSL:      false,
		Database: "postgres",
		User:     "postgres",
		Password: "",
	},
}

// initialize config with defaults, a config file, flags and up to two
// positional arguments (trial count and target url), each layer overriding
// the previous one.
func InitConfig(name string, args []string) (*Config, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	config := Config{}
	config = DefaultConfig

	var count, timeoutS, port int

	var confPath, target, tool, host, user, password, db string

	var native, verbose, save, ssl bool

	flags.IntVar(&count, "count", DefaultConfig.Count, "trial count")
	flags.StringVar(&target, "url", DefaultConfig.Target, "target url")
	flags.StringVar(&tool, "tool", DefaultConfig.Tool, "request tool executable")
	flags.BoolVar(&native, "native", DefaultConfig.Native, "use the built-in http client instead of the request tool")
	flags.IntVar(&timeoutS, "timeout", DefaultConfig.TimeoutS, "built-in client timeout in seconds")
	flags.BoolVar(&verbose, "verbose", DefaultConfig.Verbose, "print the full duration breakdown")
	flags.BoolVar(&save, "save", DefaultConfig.Save, "store the run summary in postgres")

	flags.StringVar(&host, "host", DefaultConfig.Postgres.Host, "database host")
	flags.IntVar(&port, "port", DefaultConfig.Postgres.Port, "database port")
	flags.StringVar(&user, "user", DefaultConfig.Postgres.User, "database user")
	flags.StringVar(&password, "password", DefaultConfig.Postgres.Password, "database password")
	flags.StringVar(&db, "db", DefaultConfig.Postgres.Database, "database schema name")
	flags.BoolVar(&ssl, "ssl", DefaultConfig.Postgres.SSL, "database ssl mode")

	flags.StringVar(&config.Out, "out", "", "json report output path")
	flags.StringVar(&confPath, "config", "", "custom config path")

	err := flags.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("flag error: %w", err)
	}

	// load user defined custom config file
	err = ReadConfig(confPath, &config)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s, %w", confPath, err)
	}

	// provided flags always override configuration
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			config.Count = count
		case "url":
			config.Target = target
		case "tool":
			config.Tool = tool
		case "native":
			config.Native = native
		case "timeout":
			config.TimeoutS = timeoutS
		case "verbose":
			config.Verbose = verbose
		case "save":
			config.Save = save
		case "host":
			config.Postgres.Host = host
		case "port":
			config.Postgres.Port = port
		case "db":
			config.Postgres.Database = db
		case "user":
			config.Postgres.User = user
		case "password":
			config.Postgres.Password = password
		case "ssl":
			config.Postgres.SSL = ssl
		}
	})

	// positional wrapper form: taskbench [count] [target-url]
	rest := flags.Args()
	if len(rest) > 2 {
		return nil, ErrTooManyArgs
	}

	if len(rest) >= 1 {
		c, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, fmt.Errorf("invalid trial count %q: %w", rest[0], err)
		}

		config.Count = c
	}

	if len(rest) == 2 {
		config.Target = rest[1]
	}

	// database credentials can come from the environment instead of
	// flags or the config file
	if config.Save && config.Postgres.Password == "" {
		_ = godotenv.Load()
		config.Postgres.Password = os.Getenv("TASKBENCH_PG_PASSWORD")
	}

	return &config, nil
}
