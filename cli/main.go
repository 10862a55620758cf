package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/flashbots/relay-data/config"
	"github.com/flashbots/relay-data/relay"
	"github.com/flashbots/relay-data/sdk"
	dataV1 "github.com/flashbots/relay-data/sdk/data/v1"
	"github.com/flashbots/relay-data/types"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	errNoCommand      = errors.New("no command given, see --help")
	errInvalidOrderBy = errors.New("order-by must be 'value' or '-value'")
)

// Main starts the relay-data cli
func Main() {
	if err := loadEnvFile(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "could not load env file: %v\n", err)
		os.Exit(1)
	}

	cmd := newCommand(os.Stdout)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log := logrus.NewEntry(logrus.StandardLogger())
		log.WithError(err).Fatal("relay-data failed")
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "relay-data",
		Usage: "query the data API of an MEV-Boost relay",
		Flags: globalFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Bool(versionFlag) {
				fmt.Fprintf(out, "relay-data %s\n", config.Version)
				return nil
			}
			return errNoCommand
		},
		Commands: []*cli.Command{
			{
				Name:  "bids-delivered",
				Usage: "list payloads delivered to proposers",
				Flags: bidsDeliveredFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runBidsDelivered(ctx, cmd, out)
				},
			},
			{
				Name:  "bids-received",
				Usage: "list block submissions received from builders",
				Flags: bidsReceivedFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runBidsReceived(ctx, cmd, out)
				},
			},
			{
				Name:  "validator-registration",
				Usage: "show the latest registration of a validator",
				Flags: validatorRegistrationFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runValidatorRegistration(ctx, cmd, out)
				},
			},
		},
	}
}

// loadEnvFile loads the file named by --env-file or ENV_FILE. It runs before the flags are
// parsed so that their env sources can see the loaded values.
func loadEnvFile(args []string) error {
	path := os.Getenv("ENV_FILE")
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != envFileFlag {
			continue
		}
		if hasValue {
			path = value
		} else if i+1 < len(args) {
			path = args[i+1]
		}
		break
	}

	if path == "" {
		return nil
	}
	return godotenv.Load(path)
}

// setupLogging configures a logger from the logging flags
func setupLogging(cmd *cli.Command) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if logFile := cmd.String(logFileFlag); logFile != "" {
		logger.SetOutput(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	if cmd.Bool(jsonFlag) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	logLevel := cmd.String(logLevelFlag)
	if cmd.Bool(debugFlag) {
		logLevel = "debug"
	}
	if logLevel != "" {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid loglevel: %s", logLevel)
		}
		logger.SetLevel(lvl)
	}

	log := logrus.NewEntry(logger)
	if logService := cmd.String(logServiceFlag); logService != "" {
		log = log.WithField("service", logService)
	}
	if !cmd.Bool(logNoVersionFlag) {
		log = log.WithField("version", config.Version)
	}
	return log, nil
}

// newDataSDK sets up logging and returns the v1 data API of the relay given by --relay
func newDataSDK(cmd *cli.Command) (*dataV1.DataV1SDK, *logrus.Entry, error) {
	log, err := setupLogging(cmd)
	if err != nil {
		return nil, nil, err
	}

	client, err := relay.NewClient(relay.ClientOpts{
		APIURL:     cmd.String(relayFlag),
		HTTPClient: &http.Client{Timeout: time.Duration(cmd.Int(timeoutFlag)) * time.Millisecond},
		UserAgent:  "cli",
		Log:        log,
	})
	if err != nil {
		return nil, nil, err
	}
	log.WithField("relay", client.APIURL()).Debug("using relay")
	return sdk.New(client).Data().V1(), log, nil
}

func runBidsDelivered(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	req := dataV1.GetBidsDeliveredRequest{}
	if cmd.IsSet(slotFlag) {
		req = req.WithSlot(phase0.Slot(cmd.Uint(slotFlag)))
	}
	if cmd.IsSet(cursorFlag) {
		req = req.WithCursor(cmd.Uint(cursorFlag))
	}
	if cmd.IsSet(limitFlag) {
		req = req.WithLimit(cmd.Uint(limitFlag))
	}
	if cmd.IsSet(blockNumberFlag) {
		req = req.WithBlockNumber(cmd.Uint(blockNumberFlag))
	}
	if s := cmd.String(blockHashFlag); s != "" {
		blockHash, err := types.ParseHash(s)
		if err != nil {
			return fmt.Errorf("invalid block-hash: %w", err)
		}
		req = req.WithBlockHash(blockHash)
	}
	if s := cmd.String(proposerPubkeyFlag); s != "" {
		pk, err := types.ParsePubkey(s)
		if err != nil {
			return fmt.Errorf("invalid proposer-pubkey: %w", err)
		}
		req = req.WithProposerPubkey(pk)
	}
	if s := cmd.String(builderPubkeyFlag); s != "" {
		pk, err := types.ParsePubkey(s)
		if err != nil {
			return fmt.Errorf("invalid builder-pubkey: %w", err)
		}
		req = req.WithBuilderPubkey(pk)
	}
	switch cmd.String(orderByFlag) {
	case "":
	case dataV1.IncreasingValue.String():
		req = req.WithOrder(dataV1.IncreasingValue)
	case dataV1.DecreasingValue.String():
		req = req.WithOrder(dataV1.DecreasingValue)
	default:
		return errInvalidOrderBy
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	data, log, err := newDataSDK(cmd)
	if err != nil {
		return err
	}

	bids, err := data.GetBidsDelivered(ctx, req)
	if err != nil {
		return err
	}
	log.WithField("count", len(bids)).Debug("got bids delivered")

	if format == outputText {
		for _, bid := range bids {
			writeBidLine(out, &bid.BidTrace, bid.BlockNumber, bid.NumTx)
		}
		return nil
	}
	return writeJSON(out, bids)
}

func runBidsReceived(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	req := dataV1.GetBidsReceivedRequest{}
	if cmd.IsSet(slotFlag) {
		req = req.WithSlot(phase0.Slot(cmd.Uint(slotFlag)))
	}
	if cmd.IsSet(blockNumberFlag) {
		req = req.WithBlockNumber(cmd.Uint(blockNumberFlag))
	}
	if cmd.IsSet(limitFlag) {
		req = req.WithLimit(cmd.Uint(limitFlag))
	}
	if s := cmd.String(blockHashFlag); s != "" {
		blockHash, err := types.ParseHash(s)
		if err != nil {
			return fmt.Errorf("invalid block-hash: %w", err)
		}
		req = req.WithBlockHash(blockHash)
	}
	if s := cmd.String(builderPubkeyFlag); s != "" {
		pk, err := types.ParsePubkey(s)
		if err != nil {
			return fmt.Errorf("invalid builder-pubkey: %w", err)
		}
		req = req.WithBuilderPubkey(pk)
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	data, log, err := newDataSDK(cmd)
	if err != nil {
		return err
	}

	bids, err := data.GetBidsReceived(ctx, req)
	if err != nil {
		return err
	}
	log.WithField("count", len(bids)).Debug("got bids received")

	if format == outputText {
		for _, bid := range bids {
			writeBidLine(out, &bid.BidTrace, bid.BlockNumber, bid.NumTx)
		}
		return nil
	}
	return writeJSON(out, bids)
}

func runValidatorRegistration(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	pubkey, err := types.ParsePubkey(cmd.String(pubkeyFlag))
	if err != nil {
		return fmt.Errorf("invalid pubkey: %w", err)
	}

	var domain phase0.Domain
	verify := cmd.Bool(verifyFlag)
	if verify {
		domain, err = types.ComputeBuilderDomain(cmd.String(genesisForkVersionFlag))
		if err != nil {
			return err
		}
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	data, log, err := newDataSDK(cmd)
	if err != nil {
		return err
	}

	registration, err := data.GetValidatorRegistration(ctx, pubkey)
	if err != nil {
		return err
	}

	if verify {
		ok, err := dataV1.VerifyRegistrationSignature(registration, domain)
		if err != nil {
			return err
		}
		if !ok {
			log.WithField("pubkey", types.PubkeyHex(pubkey)).Warn("registration signature is invalid")
		}
		return writeRegistration(out, format, registration, &ok)
	}
	return writeRegistration(out, format, registration, nil)
}
