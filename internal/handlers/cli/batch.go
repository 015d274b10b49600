package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/txflow/internal/batch"
	"github.com/gabapcia/txflow/internal/transaction"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// rebalanceFile is the document read by the rebalance command.
type rebalanceFile struct {
	Moves []batch.Reallocation `yaml:"moves"`
}

type batchReport struct {
	Results []transaction.Result `json:"results"`
	Failed  int                  `json:"failed"`
}

func readYAML(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func fileFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    usage,
		Required: true,
	}
}

// executeAndReport runs b, optionally waits for its transactions and prints
// the outcome. Any failed transaction makes the command return an error.
func executeAndReport(ctx context.Context, c *cli.Command, svc Services, b transaction.BatchParams) error {
	results := svc.Executor.ExecuteBatch(ctx, b)

	results, err := awaitResults(ctx, c, svc.Monitor, results)
	if err != nil {
		return err
	}

	report := batchReport{Results: results}
	for _, r := range results {
		if r.Status == transaction.StatusFailed {
			report.Failed++
		}
	}

	if err := writeJSON(output(c), report); err != nil {
		return err
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d transactions failed", report.Failed, len(b.Transactions))
	}
	return nil
}

// batchCommand submits the transactions described in a YAML file.
//
// Usage example:
//
//	txflow batch --file payouts.yaml --wait
//
// The file mirrors the batch parameters:
//
//	executeSequentially: true
//	stopOnFailure: true
//	transactions:
//	  - to: 0xABC...
//	    value: "1.5"
func batchCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "batch",
		Description: "Submit a group of transactions read from a YAML file.",
		Usage:       "Executes a batch sequentially or in parallel. Use --estimate to price it instead.",
		Flags: append([]cli.Flag{
			fileFlag("YAML file describing the batch"),
			&cli.BoolFlag{
				Name:  "estimate",
				Usage: "Print the aggregated cost without sending anything",
			},
		}, waitFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			var b transaction.BatchParams
			if err := readYAML(c.String("file"), &b); err != nil {
				return err
			}

			if c.Bool("estimate") {
				cost, err := svc.Executor.EstimateBatchCost(ctx, b.Transactions)
				if err != nil {
					return err
				}
				return writeJSON(output(c), cost)
			}

			return executeAndReport(ctx, c, svc, b)
		},
	}
}

// compoundCommand claims the rewards of a validator and restakes them.
//
// Usage example:
//
//	txflow compound --validator 0xABC... --amount 2.5
func compoundCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "compound",
		Description: "Claim staking rewards and restake them with the same validator.",
		Usage:       "Runs claim-rewards then stake --amount, stopping if the claim fails.",
		Flags: append([]cli.Flag{
			validatorFlag("Validator to compound with"),
			amountFlag("Amount to restake"),
		}, waitFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			b, err := svc.Executor.CreateAutoCompoundBatch(c.String("validator"), c.String("amount"))
			if err != nil {
				return err
			}
			return executeAndReport(ctx, c, svc, b)
		},
	}
}

// rebalanceCommand moves stake between validators.
//
// Usage example:
//
//	txflow rebalance --file moves.yaml
//
// with
//
//	moves:
//	  - from: 0xAAA...
//	    to: 0xBBB...
//	    amount: "10"
func rebalanceCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "rebalance",
		Description: "Move stake between validators: every unstake runs before any stake.",
		Usage:       "Executes the reallocations read from a YAML file.",
		Flags: append([]cli.Flag{
			fileFlag("YAML file listing the reallocations"),
		}, waitFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			var doc rebalanceFile
			if err := readYAML(c.String("file"), &doc); err != nil {
				return err
			}

			b, err := svc.Executor.CreateRebalanceBatch(doc.Moves)
			if err != nil {
				return err
			}
			return executeAndReport(ctx, c, svc, b)
		},
	}
}
