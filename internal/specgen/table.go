package specgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Error is the class of all errors returned by the generator.
var Error = errs.Class("specgen")

// Kind selects how a row converts between its logical type and carrier.
type Kind string

// Row kinds
const (
	Unsigned     Kind = "unsigned"
	Signed       Kind = "signed"
	Float        Kind = "float"
	WideUnsigned Kind = "wide-unsigned"
	WideSigned   Kind = "wide-signed"
)

// Valid returns true for the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case Unsigned, Signed, Float, WideUnsigned, WideSigned:
		return true
	}

	return false
}

// Wide returns true if the row uses the 128 bit num types.
func (k Kind) Wide() bool {
	return k == WideUnsigned || k == WideSigned
}

// Types returns the logical and carrier Go types a row of this kind must
// declare for the given bits.
func (k Kind) Types(bits int) (typ, carrier string, ok bool) {
	switch k {
	case Unsigned, Signed:
		switch bits {
		case 8, 16, 32, 64:
		default:
			return "", "", false
		}

		carrier = fmt.Sprintf("uint%d", bits)
		if k == Signed {
			return fmt.Sprintf("int%d", bits), carrier, true
		}

		return carrier, carrier, true
	case Float:
		switch bits {
		case 32, 64:
			return fmt.Sprintf("float%d", bits), fmt.Sprintf("uint%d", bits), true
		}
	case WideUnsigned:
		if bits == 128 {
			return "num.U128", "num.U128", true
		}
	case WideSigned:
		if bits == 128 {
			return "num.I128", "num.U128", true
		}
	}

	return "", "", false
}

// Row is a single (type, carrier, bits) tuple.
type Row struct {
	Name        string `toml:"name"`
	Type        string `toml:"type"`
	Carrier     string `toml:"carrier"`
	Bits        int    `toml:"bits"`
	CarrierBits int    `toml:"carrier_bits"`
	Kind        Kind   `toml:"kind"`
}

// Table is the declarative list of specifiers to generate.
type Table struct {
	Specifiers []Row `toml:"specifier"`
}

// Load reads and validates the table at path.
func Load(path string) (t *Table, err error) {
	defer Error.WrapP(&err)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	t, err = Parse(string(data))
	if err != nil {
		return nil, Error.New("%s: %v", path, err)
	}

	Logger().Debug("loaded table",
		zap.String("path", path),
		zap.Int("rows", len(t.Specifiers)),
	)

	return t, nil
}

// Parse decodes and validates a table from TOML.
func Parse(data string) (t *Table, err error) {
	defer Error.WrapP(&err)

	t = &Table{}

	meta, err := toml.Decode(data, t)
	if err != nil {
		return nil, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return nil, Error.New("unknown keys: %s", strings.Join(keys, ", "))
	}

	err = t.Validate()
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Validate reports every malformed row.
func (t *Table) Validate() error {
	var result *multierror.Error

	if len(t.Specifiers) == 0 {
		result = multierror.Append(result, Error.New("empty table"))
	}

	seen := map[string]int{}

	for i, r := range t.Specifiers {
		at := fmt.Sprintf("specifier[%d]", i)
		if r.Name != "" {
			at = fmt.Sprintf("specifier[%d] %s", i, r.Name)
		}

		if r.Name == "" {
			result = multierror.Append(result, Error.New("%s: missing name", at))
		} else if j, ok := seen[r.Name]; ok {
			result = multierror.Append(result, Error.New("%s: duplicate of specifier[%d]", at, j))
		} else {
			seen[r.Name] = i
		}

		if r.Type == "" {
			result = multierror.Append(result, Error.New("%s: missing type", at))
		}

		if r.Carrier == "" {
			result = multierror.Append(result, Error.New("%s: missing carrier", at))
		}

		if !r.Kind.Valid() {
			result = multierror.Append(result, Error.New("%s: unknown kind: %q", at, r.Kind))
		}

		if r.Bits <= 0 {
			result = multierror.Append(result, Error.New("%s: invalid bits: %d", at, r.Bits))
		}

		if r.CarrierBits < r.Bits {
			result = multierror.Append(result, Error.New(
				"%s: carrier too narrow: bits=%d carrier=%d",
				at,
				r.Bits,
				r.CarrierBits,
			))
		} else if r.Kind.Valid() && r.Bits != r.CarrierBits {
			// Only Bool narrows its carrier and it isn't generated.
			result = multierror.Append(result, Error.New(
				"%s: %s requires bits == carrier bits: bits=%d carrier=%d",
				at,
				r.Kind,
				r.Bits,
				r.CarrierBits,
			))
		}

		if !r.Kind.Valid() || r.Bits <= 0 {
			continue
		}

		typ, carrier, ok := r.Kind.Types(r.Bits)
		if !ok {
			result = multierror.Append(result, Error.New("%s: %s has no %d bit type", at, r.Kind, r.Bits))

			continue
		}

		if r.Type != "" && r.Carrier != "" && (r.Type != typ || r.Carrier != carrier) {
			result = multierror.Append(result, Error.New(
				"%s: %d bit %s must be %s carried in %s: got %s carried in %s",
				at,
				r.Bits,
				r.Kind,
				typ,
				carrier,
				r.Type,
				r.Carrier,
			))
		}
	}

	return result.ErrorOrNil()
}
