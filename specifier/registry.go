package specifier

// Info describes a specifier for tooling that lays out packed fields.
type Info struct {
	Name        string
	Type        string
	Carrier     string
	Bits        int
	CarrierBits int
}

// Check returns an error if the carrier is too narrow for the declared bits.
func (i Info) Check() (err error) {
	if i.Bits <= 0 {
		return Error.New("%s: invalid bits: %d", i.Name, i.Bits)
	}

	if i.CarrierBits < i.Bits {
		return Error.New(
			"%s: carrier %s too narrow: bits=%d carrier=%d",
			i.Name,
			i.Carrier,
			i.Bits,
			i.CarrierBits,
		)
	}

	return nil
}

var boolInfo = Info{
	Name:        "Bool",
	Type:        "bool",
	Carrier:     "uint8",
	Bits:        BoolBits,
	CarrierBits: 8,
}

// All returns every specifier in this package, Bool first and the rest in
// table order.
func All() []Info {
	infos := make([]Info, 0, len(generated)+1)
	infos = append(infos, boolInfo)
	infos = append(infos, generated...)

	return infos
}

// Lookup returns the specifier with the given name.
func Lookup(name string) (info Info, ok bool) {
	for _, info = range All() {
		if info.Name == name {
			return info, true
		}
	}

	return Info{}, false
}
