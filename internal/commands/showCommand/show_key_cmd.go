package showCommand

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redjax/sysfacts/internal/commands"
	"github.com/redjax/sysfacts/internal/constants"
	sysctlservice "github.com/redjax/sysfacts/internal/services/sysctlService"
	convert "github.com/redjax/sysfacts/internal/utils/convert"
)

// Value types accepted by --as.
var keyKinds = []string{"string", "int32", "uint32", "int64", "uint64", "hex"}

func NewKeyCmd() *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "key <name|path>",
		Short: "Query one configuration tree key by dotted name or numeric path",
		Long: `Query a single key, i.e. sysfacts show key kern.ostype or sysfacts show key 1.1.

Numeric paths are used as given. Names are resolved through the kernel first.
Known keys decode as their listed kind (see show constants); use --as to pick
another decoding.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := commands.NewService(cmd)
			if err != nil {
				return err
			}
			return showKey(cmd, svc.Kernel(), svc.Profile().KnownKeys(), args[0], as)
		},
	}

	cmd.Flags().StringVar(&as, "as", "", fmt.Sprintf("Decode the value as one of: %s (default: the key's known kind, else string)", strings.Join(keyKinds, ", ")))
	return cmd
}

func showKey(cmd *cobra.Command, k sysctlservice.Kernel, known []constants.WellKnown, arg, as string) error {
	var (
		path sysctlservice.KeyPath
		err  error
		name string
	)
	if sysctlservice.LooksNumeric(arg) {
		path, err = sysctlservice.ParseKeyPath(arg)
	} else {
		name = arg
		path, err = sysctlservice.ResolveName(k, arg)
	}
	if err != nil {
		return err
	}

	raw, err := sysctlservice.QueryBytes(k, path)
	if err != nil {
		return err
	}

	wk, isKnown := constants.LookupKey(known, name, path)
	as = strings.ToLower(strings.TrimSpace(as))
	if as == "" {
		as = constants.KindString
		if isKnown {
			as = wk.Kind
		}
	}

	value, err := decodeAs(raw, as)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if name != "" {
		fmt.Fprintf(out, "name: %s\n", name)
	}
	fmt.Fprintf(out, "path: %s\n", path)
	fmt.Fprintf(out, "size: %d\n", len(raw))
	fmt.Fprintf(out, "kind: %s\n", as)
	fmt.Fprintf(out, "value: %s\n", value)

	if isKnown && wk.Unit == constants.UnitBytes && as == constants.KindUint64 {
		if n, err := sysctlservice.Decode[uint64](raw); err == nil {
			fmt.Fprintf(out, "human: %s\n", convert.BytesToHumanReadable(n))
		}
	}
	return nil
}

func decodeAs(raw []byte, as string) (string, error) {
	switch as {
	case "string":
		return sysctlservice.DecodeString(raw)
	case "int32":
		return decodeInt[int32](raw)
	case "uint32":
		return decodeInt[uint32](raw)
	case "int64":
		return decodeInt[int64](raw)
	case "uint64":
		return decodeInt[uint64](raw)
	case "hex":
		return hex.EncodeToString(raw), nil
	default:
		return "", fmt.Errorf("unknown --as value %q (known: %s)", as, strings.Join(keyKinds, ", "))
	}
}

func decodeInt[T sysctlservice.Integer](raw []byte) (string, error) {
	v, err := sysctlservice.Decode[T](raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}
