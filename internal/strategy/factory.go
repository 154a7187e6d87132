package strategy

import (
	"fmt"

	bterrors "github.com/btclab/btc-accumulator/internal/errors"
)

// Recognized strategy names for configuration and CLI flags.
const (
	NameDCA           = "dca"
	NameMovingAverage = "ma"
	NameATHDip        = "ath-dip"
)

// ForName builds the named strategy with the given parameters. maWindow is
// only consulted for the moving-average policy, dipThreshold only for the
// ATH-dip policy.
func ForName(name string, maWindow int, dipThreshold float64) (Strategy, error) {
	switch name {
	case NameDCA:
		return NewAlwaysBuy(), nil
	case NameMovingAverage:
		if maWindow < 1 {
			return nil, bterrors.NewConfigError("strategy", "build",
				fmt.Sprintf("moving-average window must be >= 1, got %d", maWindow))
		}
		return NewBelowMovingAverage(maWindow), nil
	case NameATHDip:
		if dipThreshold < 0 || dipThreshold >= 1 {
			return nil, bterrors.NewConfigError("strategy", "build",
				fmt.Sprintf("dip threshold must be in [0,1), got %g", dipThreshold))
		}
		return NewBelowATHByPercent(dipThreshold), nil
	default:
		return nil, bterrors.NewConfigError("strategy", "build",
			fmt.Sprintf("unknown strategy %q (use %s, %s or %s)", name, NameDCA, NameMovingAverage, NameATHDip))
	}
}
