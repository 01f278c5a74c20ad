package main

import (
	"log"
	"os"

	"github.com/trezcool/ratiba/core"
	icalsvc "github.com/trezcool/ratiba/services/ical"
	logsvc "github.com/trezcool/ratiba/services/logger"
	inmemdb "github.com/trezcool/ratiba/storage/inmem"
)

var logger core.Logger

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger = logsvc.NewConsoleLogger(std, core.Conf)

	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal("opening store", err)
	}

	cli := commandLine{
		repo:    inmemdb.NewEntryRepository(db),
		icalSvc: icalsvc.NewService(core.Conf),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}
