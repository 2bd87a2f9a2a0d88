package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

// shiftValue is a pflag.Value that validates shift identifiers at parse
// time, so commands never see an unknown shift.
type shiftValue struct {
	target *domain.Shift
}

var _ pflag.Value = (*shiftValue)(nil)

func (v *shiftValue) String() string { return string(*v.target) }

func (v *shiftValue) Set(raw string) error {
	s, err := domain.ParseShift(raw)
	if err != nil {
		return err
	}
	*v.target = s
	return nil
}

func (v *shiftValue) Type() string { return "shift" }

// addShiftFlag registers the --shift/-s flag, defaulting to shift A.
func addShiftFlag(cmd *cobra.Command, target *domain.Shift) {
	*target = domain.ShiftA
	cmd.Flags().VarP(&shiftValue{target: target}, "shift", "s", "Work shift (A, B, C or D)")
}
