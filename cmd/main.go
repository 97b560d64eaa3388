package main

import (
	"fmt"
	"io"
	"os"
	"participant-cache/infrastructure/storage"
	"participant-cache/internal"
	"participant-cache/services"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the calling shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const usage = `usage: participant-cache <command> [flags]

commands:
  put     -file participant.json (stdin when omitted)
  get     -id <participant id>
  delete  -id <id>[,<id>...]`

func main() {
	code, err := run(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "participant-cache: %v\n", err)
	}
	os.Exit(code)
}

// run keeps every defer (store close) ahead of os.Exit.
func run(args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	if len(args) == 0 {
		return exitConfig, fmt.Errorf("missing command\n%s", usage)
	}

	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	repository, closer, err := storage.Open(config.Driver, config.Path, log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Debug("Closing participant cache", "driver", config.Driver)
		_ = closer.Close()
	}()

	svc := services.NewParticipantCacheService(repository, config.CacheCodec(), nil, log)

	switch args[0] {
	case "put":
		err = putCommand(svc, args[1:], stdin, stdout)
	case "get":
		err = getCommand(svc, args[1:], stdout)
	case "delete":
		err = deleteCommand(svc, args[1:], stdout)
	default:
		return exitConfig, fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
	if err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
