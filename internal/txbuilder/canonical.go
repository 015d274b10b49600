package txbuilder

import (
	"fmt"

	"github.com/gabapcia/txflow/internal/transaction"
)

// Well-known precompile addresses.
const (
	StakingPrecompile      = "0x0000000000000000000000000000000000000800"
	DistributionPrecompile = "0x0000000000000000000000000000000000000801"
	GovernancePrecompile   = "0x0000000000000000000000000000000000000805"
)

// VoteOption is a governance ballot choice.
type VoteOption string

const (
	VoteYes        VoteOption = "yes"
	VoteNo         VoteOption = "no"
	VoteAbstain    VoteOption = "abstain"
	VoteNoWithVeto VoteOption = "no_with_veto"
)

// ParseVoteOption maps a user supplied string to a VoteOption.
func ParseVoteOption(s string) (VoteOption, error) {
	switch o := VoteOption(s); o {
	case VoteYes, VoteNo, VoteAbstain, VoteNoWithVeto:
		return o, nil
	default:
		return "", fmt.Errorf("unknown vote option %q", s)
	}
}

// PayloadEncoder produces the call data of precompile operations.
type PayloadEncoder interface {
	Stake(validator, amount string) (string, error)
	Unstake(validator, amount string) (string, error)
	ClaimRewards(validator string) (string, error)
	Vote(proposalID uint64, option VoteOption) (string, error)
}

// stubEncoder emits empty payloads. Transactions built with it reach the right
// precompile but are not accepted on chain until a real ABI encoder is plugged
// in through WithPayloadEncoder.
type stubEncoder struct{}

var _ PayloadEncoder = stubEncoder{}

func (stubEncoder) Stake(string, string) (string, error) { return "", nil }
func (stubEncoder) Unstake(string, string) (string, error) { return "", nil }
func (stubEncoder) ClaimRewards(string) (string, error) { return "", nil }
func (stubEncoder) Vote(uint64, VoteOption) (string, error) { return "", nil }

// CreateTransfer builds a plain value transfer of amount native units to to.
func (s *service) CreateTransfer(to, amount string) transaction.Params {
	return transaction.Params{
		To:    to,
		Value: amount,
	}
}

// CreateStakeTransaction delegates amount to validator. The amount travels as
// the transaction value.
func (s *service) CreateStakeTransaction(validator, amount string) (transaction.Params, error) {
	data, err := s.encoder.Stake(validator, amount)
	if err != nil {
		return transaction.Params{}, fmt.Errorf("encode stake: %w", err)
	}

	return transaction.Params{
		To:    StakingPrecompile,
		Value: amount,
		Data:  data,
	}, nil
}

// CreateUnstakeTransaction undelegates amount from validator. Nothing is paid
// into the precompile: the amount is only an argument of the payload.
func (s *service) CreateUnstakeTransaction(validator, amount string) (transaction.Params, error) {
	data, err := s.encoder.Unstake(validator, amount)
	if err != nil {
		return transaction.Params{}, fmt.Errorf("encode unstake: %w", err)
	}

	return transaction.Params{
		To:   StakingPrecompile,
		Data: data,
	}, nil
}

// CreateClaimRewardsTransaction withdraws the rewards accrued with validator.
func (s *service) CreateClaimRewardsTransaction(validator string) (transaction.Params, error) {
	data, err := s.encoder.ClaimRewards(validator)
	if err != nil {
		return transaction.Params{}, fmt.Errorf("encode claim rewards: %w", err)
	}

	return transaction.Params{
		To:   DistributionPrecompile,
		Data: data,
	}, nil
}

// CreateVoteTransaction casts option on a governance proposal.
func (s *service) CreateVoteTransaction(proposalID uint64, option VoteOption) (transaction.Params, error) {
	data, err := s.encoder.Vote(proposalID, option)
	if err != nil {
		return transaction.Params{}, fmt.Errorf("encode vote: %w", err)
	}

	return transaction.Params{
		To:   GovernancePrecompile,
		Data: data,
	}, nil
}
