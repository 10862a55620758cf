package cli

import (
	"encoding/json"
	"fmt"
	"io"

	builderApiV1 "github.com/attestantio/go-builder-client/api/v1"
	"github.com/flashbots/relay-data/types"
	"github.com/urfave/cli/v3"
)

const (
	outputJSON = "json"
	outputText = "text"
)

func outputFormat(cmd *cli.Command) (string, error) {
	switch format := cmd.String(outputFlag); format {
	case outputJSON, outputText:
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format: %s", format)
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeBidLine prints a one line summary of a bid with its value in ETH
func writeBidLine(out io.Writer, trace *builderApiV1.BidTrace, blockNumber, numTx uint64) {
	fmt.Fprintf(out, "slot=%d block=%d hash=%s builder=%s value=%s ETH num_tx=%d\n",
		trace.Slot,
		blockNumber,
		types.HashHex(trace.BlockHash),
		types.PubkeyHex(trace.BuilderPubkey),
		types.WeiToEth(trace.Value).Text('f', 6),
		numTx,
	)
}

func writeRegistration(out io.Writer, format string, registration *builderApiV1.SignedValidatorRegistration, verified *bool) error {
	if format == outputJSON {
		if verified == nil {
			return writeJSON(out, registration)
		}
		raw, err := json.Marshal(registration)
		if err != nil {
			return err
		}
		merged := make(map[string]json.RawMessage)
		if err := json.Unmarshal(raw, &merged); err != nil {
			return err
		}
		merged["verified"], _ = json.Marshal(*verified)
		return writeJSON(out, merged)
	}

	msg := registration.Message
	fmt.Fprintf(out, "pubkey=%s fee_recipient=%s gas_limit=%d timestamp=%d",
		types.PubkeyHex(msg.Pubkey), msg.FeeRecipient.String(), msg.GasLimit, msg.Timestamp.Unix())
	if verified != nil {
		fmt.Fprintf(out, " verified=%t", *verified)
	}
	fmt.Fprintln(out)
	return nil
}
