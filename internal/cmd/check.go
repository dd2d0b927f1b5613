package cmd

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/db47h/bigfloat"
	"github.com/db47h/bigfloat/internal/oracle"
)

func init() {
	CheckCmd.Flags().Int("workers", runtime.GOMAXPROCS(0), "number of vectors checked concurrently")
	CheckCmd.Flags().Bool("oracle", false, "also compare every result against the exact rational oracle")
	RootCmd.AddCommand(CheckCmd)
}

// A Vector is a reference result of an operation.
type Vector struct {
	Name string   `yaml:"name"`
	Op   string   `yaml:"op"`
	Args []string `yaml:"args"`
	Prec uint     `yaml:"prec"`
	Mode string   `yaml:"mode"`

	// Want is the expected result in the format of Float.MarshalText, or
	// "RoundingError" if the operation must fail in Exact mode.
	Want     string `yaml:"want"`
	Ordering string `yaml:"ordering"`
}

// A VectorFile is the yaml document read by the check command.
type VectorFile struct {
	Vectors []Vector `yaml:"vectors"`
}

const wantRoundingError = "RoundingError"

// ReadVectorFile reads a vector file.
func ReadVectorFile(name string) (*VectorFile, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var vf VectorFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, errors.Wrapf(err, "%s: invalid vector file", name)
	}
	return &vf, nil
}

// go run ./cmd/bigfloat check testdata/vectors.yaml --oracle
var CheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "check the results of the operations of a yaml vector file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vf, err := ReadVectorFile(args[0])
		if err != nil {
			return err
		}
		err = CheckVectors(cmd.Context(), vf.Vectors, CheckOptions{
			Workers:   viper.GetInt("workers"),
			Oracle:    viper.GetBool("oracle"),
			ParsePrec: viper.GetUint("parse-prec"),
		})
		if err != nil {
			log.WithError(err).Errorf("%d vectors failed", len(multierr.Errors(err)))
			return err
		}
		log.Infof("%d vectors passed", len(vf.Vectors))
		return nil
	},
}

// CheckOptions configure CheckVectors.
type CheckOptions struct {
	Workers   int
	Oracle    bool
	ParsePrec uint
}

// CheckVectors checks all vectors concurrently and returns the combination of
// all failures.
func CheckVectors(ctx context.Context, vectors []Vector, opts CheckOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.ParsePrec == 0 {
		opts.ParsePrec = 64
	}

	var mu sync.Mutex
	var errs error
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range vectors {
		v := vectors[i]
		name := v.Name
		if name == "" {
			name = "#" + strconv.Itoa(i)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := checkVector(v, opts); err != nil {
				log.WithError(err).WithField("vector", name).Debug("vector failed")
				mu.Lock()
				errs = multierr.Append(errs, errors.Wrapf(err, "vector %s", name))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errs
}

func checkVector(v Vector, opts CheckOptions) error {
	op := oracle.Op(v.Op)
	mode, err := parseMode(v.Mode)
	if err != nil {
		return err
	}
	xs := make([]*bigfloat.Float, len(v.Args))
	for i, s := range v.Args {
		if xs[i], err = parseOperand(s, opts.ParsePrec); err != nil {
			return errors.Wrapf(err, "operand %d", i+1)
		}
	}

	z, o, err := evaluate(op, v.Prec, mode, xs...)
	switch {
	case v.Want == wantRoundingError:
		var re bigfloat.RoundingError
		if !errors.As(err, &re) {
			return errors.Errorf("got %v, want a RoundingError", err)
		}
		return nil
	case err != nil:
		return err
	}

	want, err := parseOperand(v.Want, v.Prec)
	if err != nil {
		return errors.Wrap(err, "invalid wanted result")
	}
	if got, exp := text(z), text(want); got != exp {
		return errors.Errorf("got %s, want %s", got, exp)
	}
	if v.Ordering != "" {
		wo, err := parseOrdering(v.Ordering)
		if err != nil {
			return err
		}
		if o != wo {
			return errors.Errorf("got ordering %s, want %s", o, wo)
		}
	}

	if opts.Oracle && mode != bigfloat.Exact {
		ref, ro, ok, err := reference(op, v.Prec, mode, xs...)
		if err != nil {
			return err
		}
		if ok && (z.IsNaN() || z.Cmp(ref) != 0 || o != ro) {
			return errors.Errorf("oracle: got %s %s, want %s %s", text(z), o, text(ref), ro)
		}
	}
	return nil
}

func text(x *bigfloat.Float) string {
	b, _ := x.MarshalText()
	return string(b)
}
