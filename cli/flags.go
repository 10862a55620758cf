package cli

import (
	"github.com/flashbots/relay-data/config"
	"github.com/flashbots/relay-data/types"
	"github.com/urfave/cli/v3"
)

const (
	LoggingCategory = "LOGGING AND DEBUGGING"
	RelayCategory   = "RELAY"
	GeneralCategory = "GENERAL"
	FilterCategory  = "FILTERS"
)

// Flag names, also used to look up the parsed values
const (
	versionFlag            = "version"
	envFileFlag            = "env-file"
	outputFlag             = "output"
	jsonFlag               = "json"
	debugFlag              = "debug"
	logLevelFlag           = "loglevel"
	logServiceFlag         = "log-service"
	logNoVersionFlag       = "log-no-version"
	logFileFlag            = "log-file"
	relayFlag              = "relay"
	timeoutFlag            = "timeout"
	slotFlag               = "slot"
	cursorFlag             = "cursor"
	limitFlag              = "limit"
	blockHashFlag          = "block-hash"
	blockNumberFlag        = "block-number"
	proposerPubkeyFlag     = "proposer-pubkey"
	builderPubkeyFlag      = "builder-pubkey"
	orderByFlag            = "order-by"
	pubkeyFlag             = "pubkey"
	verifyFlag             = "verify"
	genesisForkVersionFlag = "genesis-fork-version"
)

// globalFlags returns new instances on every call since parsed flags keep their state
func globalFlags() []cli.Flag {
	return []cli.Flag{
		// General
		&cli.BoolFlag{
			Name:     versionFlag,
			Usage:    "print version",
			Category: GeneralCategory,
		},
		&cli.StringFlag{
			Name:     envFileFlag,
			Sources:  cli.EnvVars("ENV_FILE"),
			Usage:    "load environment variables from a .env file before reading the other flags",
			Category: GeneralCategory,
		},
		&cli.StringFlag{
			Name:     outputFlag,
			Aliases:  []string{"o"},
			Sources:  cli.EnvVars("OUTPUT"),
			Value:    outputJSON,
			Usage:    "output format: json or text",
			Category: GeneralCategory,
		},
		// Logging and debugging
		&cli.BoolFlag{
			Name:     jsonFlag,
			Sources:  cli.EnvVars("LOG_JSON"),
			Usage:    "log in JSON format instead of text",
			Category: LoggingCategory,
		},
		&cli.BoolFlag{
			Name:     debugFlag,
			Sources:  cli.EnvVars("DEBUG"),
			Usage:    "shorthand for '--loglevel debug'",
			Category: LoggingCategory,
		},
		&cli.StringFlag{
			Name:     logLevelFlag,
			Sources:  cli.EnvVars("LOG_LEVEL"),
			Value:    "info",
			Usage:    "minimum loglevel: trace, debug, info, warn/warning, error, fatal, panic",
			Category: LoggingCategory,
		},
		&cli.StringFlag{
			Name:     logServiceFlag,
			Sources:  cli.EnvVars("LOG_SERVICE_TAG"),
			Value:    "",
			Usage:    "add a 'service=...' tag to all log messages",
			Category: LoggingCategory,
		},
		&cli.BoolFlag{
			Name:     logNoVersionFlag,
			Sources:  cli.EnvVars("DISABLE_LOG_VERSION"),
			Usage:    "disables adding the version to every log entry",
			Category: LoggingCategory,
		},
		&cli.StringFlag{
			Name:     logFileFlag,
			Sources:  cli.EnvVars("LOG_FILE"),
			Usage:    "write logs to this file instead of stderr, rotated at 10 MB",
			Category: LoggingCategory,
		},
		// Relay
		&cli.StringFlag{
			Name:     relayFlag,
			Sources:  cli.EnvVars("RELAY_API_URL"),
			Value:    config.DefaultAPIURL,
			Usage:    "relay API url without trailing slash (scheme://host)",
			Category: RelayCategory,
		},
		&cli.IntFlag{
			Name:     timeoutFlag,
			Sources:  cli.EnvVars("RELAY_TIMEOUT_MS"),
			Value:    int64(config.RequestTimeoutMs),
			Usage:    "timeout for requests to the relay [ms], 0 disables it",
			Category: RelayCategory,
		},
	}
}

func bidsDeliveredFlags() []cli.Flag {
	return []cli.Flag{
		newSlotFlag(),
		&cli.UintFlag{
			Name:     cursorFlag,
			Usage:    "only bids up to this slot, used for paging",
			Category: FilterCategory,
		},
		newLimitFlag(),
		newBlockHashFlag(),
		newBlockNumberFlag(),
		&cli.StringFlag{
			Name:     proposerPubkeyFlag,
			Usage:    "only bids delivered to this proposer (0x...)",
			Category: FilterCategory,
		},
		newBuilderPubkeyFlag(),
		&cli.StringFlag{
			Name:     orderByFlag,
			Usage:    "sort by value: 'value' (increasing) or '-value' (decreasing)",
			Category: FilterCategory,
		},
	}
}

func bidsReceivedFlags() []cli.Flag {
	return []cli.Flag{
		newSlotFlag(),
		newBlockHashFlag(),
		newBlockNumberFlag(),
		newBuilderPubkeyFlag(),
		newLimitFlag(),
	}
}

func validatorRegistrationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     pubkeyFlag,
			Usage:    "validator pubkey (0x...)",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  verifyFlag,
			Usage: "verify the registration signature",
		},
		&cli.StringFlag{
			Name:    genesisForkVersionFlag,
			Sources: cli.EnvVars("GENESIS_FORK_VERSION"),
			Value:   types.GenesisForkVersionMainnet,
			Usage:   "genesis fork version used to verify the registration signature",
		},
	}
}

func newSlotFlag() *cli.UintFlag {
	return &cli.UintFlag{
		Name:     slotFlag,
		Usage:    "only bids for this slot",
		Category: FilterCategory,
	}
}

func newLimitFlag() *cli.UintFlag {
	return &cli.UintFlag{
		Name:     limitFlag,
		Usage:    "maximum number of results, the relay caps it",
		Category: FilterCategory,
	}
}

func newBlockHashFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     blockHashFlag,
		Usage:    "only bids for this block hash (0x...)",
		Category: FilterCategory,
	}
}

func newBlockNumberFlag() *cli.UintFlag {
	return &cli.UintFlag{
		Name:     blockNumberFlag,
		Usage:    "only bids for this block number",
		Category: FilterCategory,
	}
}

func newBuilderPubkeyFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     builderPubkeyFlag,
		Usage:    "only bids from this builder (0x...)",
		Category: FilterCategory,
	}
}
