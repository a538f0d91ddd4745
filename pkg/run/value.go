package run

import "fmt"

// RUN is a parsed, checksum-valid identifier. The zero value represents an
// absent RUN.
type RUN struct {
	// Body holds the digits without leading zeros.
	Body string
	// Check is '0'-'9' or 'K'.
	Check byte
}

// Parse validates raw and returns its normalised value. The error is one of
// ErrEmpty, ErrInvalidFormat or ErrInvalidCheckDigit.
func Parse(raw string) (RUN, error) {
	if err := Check(raw); err != nil {
		return RUN{}, err
	}

	body, check, _ := normalize(raw)
	return RUN{Body: body, Check: check[0]}, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(raw string) RUN {
	r, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("run: MustParse(%q): %v", raw, err))
	}
	return r
}

func (r RUN) IsZero() bool { return r.Body == "" }

// String returns the API format, or "" for the zero value.
func (r RUN) String() string {
	if r.IsZero() {
		return ""
	}
	return r.Body + "-" + string(r.Check)
}

// Display returns the thousands-grouped format, or "" for the zero value.
func (r RUN) Display() string {
	if r.IsZero() {
		return ""
	}
	return groupThousands(r.Body) + "-" + string(r.Check)
}

// MarshalText implements encoding.TextMarshaler using the API format.
func (r RUN) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the
// zero value; anything else must be a valid RUN in any format.
func (r *RUN) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = RUN{}
		return nil
	}

	parsed, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("%w: %q", err, text)
	}
	*r = parsed
	return nil
}
