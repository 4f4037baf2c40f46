// Command slist builds a list from its integer arguments, sorts it and
// prints it.
//
// With SLIST_MODE=push (the default) the values are pushed to the back and
// the list is sorted afterwards; with SLIST_MODE=sorted each value is
// inserted into its sorted position as it is read.
package main

import (
	"flag"
	"fmt"
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"

	"slist/internal/log"
)

var version = "dev"

const pkgKey = "pkg"

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	cfg, err := getConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// init logger
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(os.Stderr)
	logrusLogger.SetLevel(cfg.LoggerLevel)
	logrusLogger.SetFormatter(&nested.Formatter{
		FieldsOrder:     []string{pkgKey},
		TimestampFormat: "01-02|15:04:05",
	})

	if cfg.LogToEcs {
		logrusLogger.SetFormatter(&ecslogrus.Formatter{})
	}

	logger := log.NewLogger(logrusLogger).WithField(pkgKey, "slist")

	if err := run(cfg.Mode, flag.Args(), os.Stdout, logger); err != nil {
		logger.WithError(err).Error("failed")
		os.Exit(1)
	}
}
