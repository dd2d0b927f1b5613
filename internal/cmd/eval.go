package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/db47h/bigfloat"
	"github.com/db47h/bigfloat/internal/oracle"
)

func init() {
	EvalCmd.Flags().String("output", "text", "output format: text or yaml")
	RootCmd.AddCommand(EvalCmd)
}

// EvalResult is the yaml output of the eval command.
type EvalResult struct {
	Op       string   `yaml:"op"`
	Args     []string `yaml:"args"`
	Prec     uint     `yaml:"prec"`
	Mode     string   `yaml:"mode"`
	Result   string   `yaml:"result"`
	Decimal  string   `yaml:"decimal"` // exact decimal value of Result
	Ordering string   `yaml:"ordering"`
}

// go run ./cmd/bigfloat eval sub 0x1.8p0#2 1#2 --prec=2 --mode=nearest
var EvalCmd = &cobra.Command{
	Use:   "eval OP X [Y]",
	Short: "evaluate a single operation and print the rounded result and its ordering",
	Long: `Evaluate OP (add, sub, mul, quo, square, reciprocal or sqrt) on its operands.

Operands are given in any format accepted by Float.Parse, optionally followed
by #prec to set their precision, for instance 0x.cp+2#2. Negative operands must
follow a -- argument.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		op := oracle.Op(args[0])
		mode, err := parseMode(viper.GetString("mode"))
		if err != nil {
			return err
		}
		prec := viper.GetUint("prec")

		operands := args[1:]
		xs := make([]*bigfloat.Float, len(operands))
		for i, s := range operands {
			if xs[i], err = parseOperand(s, viper.GetUint("parse-prec")); err != nil {
				return errors.Wrapf(err, "operand %d", i+1)
			}
		}
		log.WithFields(log.Fields{"op": op, "args": operands}).Debug("evaluating")

		z, o, err := evaluate(op, prec, mode, xs...)
		if err != nil {
			return err
		}
		text, _ := z.MarshalText()

		out := cmd.OutOrStdout()
		switch format := viper.GetString("output"); format {
		case "text":
			fmt.Fprintf(out, "%s %s\n", text, o)
		case "yaml":
			enc := yaml.NewEncoder(out)
			defer enc.Close()
			return enc.Encode(EvalResult{
				Op:       string(op),
				Args:     operands,
				Prec:     prec,
				Mode:     mode.String(),
				Result:   string(text),
				Decimal:  exactDecimal(z),
				Ordering: o.String(),
			})
		default:
			return errors.Errorf("unknown output format %q", format)
		}
		return nil
	},
}
