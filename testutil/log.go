package testutil

import (
	"os"

	"github.com/tendermint/tendermint/libs/log"
)

func Logger() log.Logger {
	return log.NewTMLogger(log.NewSyncWriter(os.Stdout))
}
