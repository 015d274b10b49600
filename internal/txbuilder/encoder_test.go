package txbuilder

type encoderMock struct {
	err error
}

func (e encoderMock) Stake(validator, amount string) (string, error) {
	return "0xstake", e.err
}

func (e encoderMock) Unstake(validator, amount string) (string, error) {
	return "0xunstake", e.err
}

func (e encoderMock) ClaimRewards(validator string) (string, error) {
	return "0xclaim", e.err
}

func (e encoderMock) Vote(proposalID uint64, option VoteOption) (string, error) {
	return "0xvote", e.err
}
