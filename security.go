package liquidity

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// isinRegex checks for the basic structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// micRegex checks for the format: 4 uppercase alphanumeric characters.
var micRegex = regexp.MustCompile(`^[A-Z0-9]{4}$`)

// currencyCodeRegex checks for the format: 3 uppercase letters.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// idCharRegex checks for alphanumeric characters and space, used in Private IDs.
var idCharRegex = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// ID represent the unique identifier of a security.
//
// It is either an MSSI (Market-Specific Security Identifier, the
// concatenation of an ISIN and a MIC separated by a '.'), or a private
// identifier (at least 7 alphanumeric characters, no '.').
//
// The MSSI form is what the market-data providers need to resolve a
// ticker on a specific exchange; the private form covers everything else.
type ID string

// NewMSSI creates a new MSSI from its constituent parts after basic validation.
func NewMSSI(isin, mic string) (ID, error) {
	if err := ValidateISIN(isin); err != nil {
		return "", fmt.Errorf("invalid ISIN: %w", err)
	}
	if err := ValidateMIC(mic); err != nil {
		return "", fmt.Errorf("invalid MIC: %w", err)
	}
	return ID(fmt.Sprintf("%s.%s", isin, mic)), nil
}

// NewPrivate validates that a string is a valid private ID.
func NewPrivate(s string) (ID, error) {
	// Must be at least 7 characters long so it cannot resemble a currency pair.
	if len(s) < 7 {
		return "", fmt.Errorf("invalid id: must be at least 7 characters long, got %d", len(s))
	}
	// Must NOT contain a '.' (resembles an MSSI).
	if strings.Contains(s, ".") {
		return "", errors.New("invalid id: must not contain a '.' (resembles an MSSI)")
	}
	if !idCharRegex.MatchString(s) {
		return "", errors.New("invalid id: must only contain alphanumeric characters and spaces")
	}
	return ID(s), nil
}

// MSSI validates the overall "ISIN.MIC" format and returns the components.
func (id ID) MSSI() (isin string, mic string, err error) {
	parts := strings.Split(string(id), ".")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid MSSI %q: want format ISIN.MIC", id)
	}
	if err := ValidateISIN(parts[0]); err != nil {
		return "", "", fmt.Errorf("invalid MSSI %q: %w", id, err)
	}
	if err := ValidateMIC(parts[1]); err != nil {
		return "", "", fmt.Errorf("invalid MSSI %q: %w", id, err)
	}
	return parts[0], parts[1], nil
}

// IsMSSI returns true if the ID is a valid "ISIN.MIC" identifier.
func (id ID) IsMSSI() bool {
	_, _, err := id.MSSI()
	return err == nil
}

// ValidateISIN checks if a string is a validly formatted ISIN.
// It returns nil if valid, or a descriptive error if invalid.
func ValidateISIN(isin string) error {
	if len(isin) != 12 {
		return fmt.Errorf("invalid length: must be 12 characters, got %d", len(isin))
	}
	if !isinRegex.MatchString(isin) {
		return errors.New("invalid format: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit")
	}

	// Convert letters to numbers for check digit calculation.
	var numericStr strings.Builder
	for _, char := range isin[:11] {
		if char >= 'A' && char <= 'Z' {
			numericStr.WriteString(strconv.Itoa(int(char - 'A' + 10)))
		} else {
			numericStr.WriteRune(char)
		}
	}

	// Apply a variation of the Luhn algorithm.
	sum := 0
	isSecond := true
	digits := numericStr.String()
	for i := len(digits) - 1; i >= 0; i-- {
		digit, _ := strconv.Atoi(string(digits[i]))
		if isSecond {
			digit *= 2
		}
		sum += (digit / 10) + (digit % 10)
		isSecond = !isSecond
	}

	expectedCheckDigit := (10 - (sum % 10)) % 10
	actualCheckDigit, _ := strconv.Atoi(string(isin[11]))
	if expectedCheckDigit != actualCheckDigit {
		return fmt.Errorf("invalid check digit: expected %d, got %d", expectedCheckDigit, actualCheckDigit)
	}
	return nil
}

// ValidateMIC checks if a string conforms to the MIC (ISO 10383) format.
// Note: This validates the format only, not whether the MIC is officially registered.
func ValidateMIC(mic string) error {
	if len(mic) != 4 {
		return fmt.Errorf("invalid length: must be 4 characters, got %d", len(mic))
	}
	if !micRegex.MatchString(mic) {
		return errors.New("invalid format: must be 4 uppercase alphanumeric characters")
	}
	return nil
}

// ValidateCurrency checks if a string conforms to the ISO 4217 code format.
func ValidateCurrency(code string) error {
	if !currencyCodeRegex.MatchString(code) {
		return fmt.Errorf("invalid currency %q: must be 3 uppercase letters", code)
	}
	return nil
}

// Security holds the identity of a traded instrument and its daily bars.
type Security struct {
	ticker   string
	id       ID
	currency string
	prices   History[float64] // daily close
	volumes  History[float64] // daily traded shares
}

// NewSecurity creates a new security with the given ticker, id and currency.
func NewSecurity(ticker string, id ID, currency string) Security {
	return Security{ticker: ticker, id: id, currency: currency}
}

func (s *Security) Ticker() string   { return s.ticker }
func (s *Security) ID() ID           { return s.id }
func (s *Security) Currency() string { return s.currency }

// SetBar records the close price and traded share volume for a day.
func (s *Security) SetBar(on Date, close, volume float64) {
	s.prices.Append(on, close)
	s.volumes.Append(on, volume)
}

// Price returns the close price on a given day.
func (s *Security) Price(on Date) (float64, bool) { return s.prices.Get(on) }

// Volume returns the traded share volume on a given day.
func (s *Security) Volume(on Date) (float64, bool) { return s.volumes.Get(on) }

// Prices returns the full close price history.
func (s *Security) Prices() *History[float64] { return &s.prices }

// Volumes returns the full share volume history.
func (s *Security) Volumes() *History[float64] { return &s.volumes }
