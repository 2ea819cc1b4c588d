package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/LGVbtw/taskbench"
	"github.com/LGVbtw/taskbench/conf"
	"github.com/LGVbtw/taskbench/database"
	_ "github.com/lib/pq"
)

// distinct exit status for a missing request tool, so callers can tell it
// apart from config or database failures
const toolNotFoundExit = 2

func main() {
	errLogger := log.New(os.Stderr, "", log.Lmsgprefix)
	infoLogger := log.New(os.Stdout, "", log.Lmsgprefix)

	config, err := conf.InitConfig(os.Args[0], os.Args[1:])
	if err != nil {
		errLogger.Fatalln(err)
	}

	request, err := newRequest(config)
	if err != nil {
		if errors.Is(err, taskbench.ErrToolNotFound) {
			errLogger.Println(err)
			os.Exit(toolNotFoundExit)
		}

		errLogger.Fatalln(err)
	}

	stat := taskbench.Run(config.Count, config.Target, request, func(t taskbench.Trial) {
		if t.Line != "" {
			infoLogger.Println(t.Line)
		}
	})

	infoLogger.Print(taskbench.FormatReport(stat))

	if config.Verbose && stat.SampleCount > 0 {
		infoLogger.Print(taskbench.FormatStat(stat))
	}

	if config.Out != "" {
		report := taskbench.NewRunReport(config.Target, config.Count, stat)
		if err := taskbench.WriteReport(config.Out, report); err != nil {
			errLogger.Println(err)
		}
	}

	if config.Save {
		saveRun(errLogger, config, stat)
	}
}

func newRequest(config *conf.Config) (taskbench.RequestFunc, error) {
	if config.Native {
		return taskbench.HTTPRequest(time.Duration(config.TimeoutS) * time.Second), nil
	}

	return taskbench.CurlRequest(config.Tool)
}

// a failed save is reported but never changes the run's outcome
func saveRun(errLogger *log.Logger, config *conf.Config, stat taskbench.Stats) {
	db, err := database.New(
		config.Postgres.Host,
		config.Postgres.User,
		config.Postgres.Password,
		config.Postgres.Database,
		config.Postgres.Port,
		config.Postgres.SSL,
	)
	if err != nil {
		errLogger.Println(err)

		return
	}
	defer db.Close()

	if err := db.SaveRun(config.Target, config.Count, stat); err != nil {
		errLogger.Println(err)
	}
}
