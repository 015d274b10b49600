package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gabapcia/txflow/internal/transaction"
	"github.com/gabapcia/txflow/internal/txbuilder"

	"github.com/urfave/cli/v3"
)

func paramsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "to",
			Usage:    "Recipient address (0x-prefixed, 20 bytes)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "value",
			Usage: "Amount of native currency to transfer (e.g., 1.5)",
		},
		&cli.StringFlag{
			Name:  "data",
			Usage: "0x-prefixed call payload",
		},
		&cli.StringFlag{
			Name:  "gas-limit",
			Usage: "Gas limit override",
		},
		&cli.StringFlag{
			Name:  "gas-price",
			Usage: "Gas price override in wei",
		},
	}
}

func paramsFromFlags(c *cli.Command) transaction.Params {
	return transaction.Params{
		To:       c.String("to"),
		Value:    c.String("value"),
		Data:     c.String("data"),
		GasLimit: c.String("gas-limit"),
		GasPrice: c.String("gas-price"),
	}
}

// sendAndReport submits params, optionally waits for it, and prints the
// result. A failed send is printed and also returned as an error so the
// process exits non-zero.
func sendAndReport(ctx context.Context, c *cli.Command, svc Services, params transaction.Params) error {
	result := svc.Builder.SendTransaction(ctx, params)

	results, err := awaitResults(ctx, c, svc.Monitor, []transaction.Result{result})
	if err != nil {
		return err
	}
	result = results[0]

	if err := writeJSON(output(c), result); err != nil {
		return err
	}

	if result.Status == transaction.StatusFailed {
		return fmt.Errorf("transaction failed: %s", result.Error)
	}
	return nil
}

// sendCommand returns a CLI command that builds, signs and broadcasts a single
// transaction.
//
// Usage example:
//
//	txflow send --to 0xABC... --value 1.5 --wait
func sendCommand(svc Services) *cli.Command {
	flags := append(paramsFlags(), &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Print the signed raw transaction without broadcasting it",
	})

	return &cli.Command{
		Name:        "send",
		Description: "Build, sign and broadcast a transaction.",
		Usage:       "Sends a transaction. Gas limit and price are filled in when omitted.",
		Flags:       append(flags, waitFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			params := paramsFromFlags(c)

			if c.Bool("dry-run") {
				raw, err := svc.Builder.SignTransaction(ctx, params)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(output(c), raw)
				return err
			}

			return sendAndReport(ctx, c, svc, params)
		},
	}
}

// estimateCommand prices a transaction without sending it.
//
// Usage example:
//
//	txflow estimate --to 0xABC... --value 1.5
func estimateCommand(b Builder) *cli.Command {
	return &cli.Command{
		Name:        "estimate",
		Description: "Estimate the gas and total cost of a transaction.",
		Usage:       "Prints gas limit, gas price, gas cost and total cost in wei.",
		Flags:       paramsFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cost, err := b.CalculateCost(ctx, paramsFromFlags(c))
			if err != nil {
				return err
			}
			return writeJSON(output(c), cost)
		},
	}
}

func validatorFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:     "validator",
		Usage:    usage,
		Required: true,
	}
}

func amountFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:     "amount",
		Usage:    usage,
		Required: true,
	}
}

func stakeCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "stake",
		Description: "Delegate native currency to a validator.",
		Usage:       "Stakes --amount with --validator.",
		Flags: append([]cli.Flag{
			validatorFlag("Validator to delegate to"),
			amountFlag("Amount to stake"),
		}, waitFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			params, err := svc.Builder.CreateStakeTransaction(c.String("validator"), c.String("amount"))
			if err != nil {
				return err
			}
			return sendAndReport(ctx, c, svc, params)
		},
	}
}

func unstakeCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "unstake",
		Description: "Withdraw a delegation from a validator.",
		Usage:       "Unstakes --amount from --validator.",
		Flags: append([]cli.Flag{
			validatorFlag("Validator to undelegate from"),
			amountFlag("Amount to unstake"),
		}, waitFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			params, err := svc.Builder.CreateUnstakeTransaction(c.String("validator"), c.String("amount"))
			if err != nil {
				return err
			}
			return sendAndReport(ctx, c, svc, params)
		},
	}
}

func claimCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "claim",
		Description: "Withdraw the staking rewards accrued with a validator.",
		Usage:       "Claims the rewards of --validator.",
		Flags: append([]cli.Flag{
			validatorFlag("Validator whose rewards are claimed"),
		}, waitFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			params, err := svc.Builder.CreateClaimRewardsTransaction(c.String("validator"))
			if err != nil {
				return err
			}
			return sendAndReport(ctx, c, svc, params)
		},
	}
}

// voteCommand casts a governance vote.
//
// Usage example:
//
//	txflow vote --proposal 12 --option yes
func voteCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "vote",
		Description: "Cast a vote on a governance proposal.",
		Usage:       "Votes --option (yes, no, abstain, no_with_veto) on --proposal.",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "proposal",
				Usage:    "Proposal identifier",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "option",
				Usage:    "Vote option: yes, no, abstain or no_with_veto",
				Required: true,
			},
		}, waitFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			proposalID, err := strconv.ParseUint(c.String("proposal"), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid proposal id %q: %w", c.String("proposal"), err)
			}

			option, err := txbuilder.ParseVoteOption(c.String("option"))
			if err != nil {
				return err
			}

			params, err := svc.Builder.CreateVoteTransaction(proposalID, option)
			if err != nil {
				return err
			}
			return sendAndReport(ctx, c, svc, params)
		},
	}
}
