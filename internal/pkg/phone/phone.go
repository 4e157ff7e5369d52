package phone

import (
	"errors"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

var (
	ErrInvalidNumber   = errors.New("invalid phone number")
	ErrUnknownDialCode = errors.New("unknown dial code")
)

// Validate checks a local number against the country selected by its dial code
// (e.g. "+212"). An empty dial code falls back to defaultRegion.
func Validate(dialCode, local, defaultRegion string) error {
	_, err := parse(dialCode, local, defaultRegion)
	return err
}

// Normalize returns the wire form of a number: dial code followed by the
// local digits with every separator stripped.
func Normalize(dialCode, local, defaultRegion string) (string, error) {
	num, err := parse(dialCode, local, defaultRegion)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func parse(dialCode, local, defaultRegion string) (*phonenumbers.PhoneNumber, error) {
	region := defaultRegion
	if dialCode != "" {
		region = regionForDialCode(dialCode)
		if region == "" {
			return nil, ErrUnknownDialCode
		}
	}

	num, err := phonenumbers.Parse(digitsOnly(local), region)
	if err != nil {
		return nil, ErrInvalidNumber
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, ErrInvalidNumber
	}
	return num, nil
}

func regionForDialCode(dialCode string) string {
	code := 0
	for _, r := range digitsOnly(dialCode) {
		code = code*10 + int(r-'0')
	}
	if code == 0 {
		return ""
	}
	region := phonenumbers.GetRegionCodeForCountryCode(code)
	if region == "ZZ" {
		return ""
	}
	return region
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
