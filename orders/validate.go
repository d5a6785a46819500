package orders

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var phonePattern = regexp.MustCompile(`^[+\d\s()-]+$`)

// ValidateCustomer checks the checkout form fields: a name of at least two
// characters and a phone number of 10 to 15 characters made of digits and
// the usual separators. Returns the trimmed values.
func ValidateCustomer(name, phone string) (string, string, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if len(name) < 2 {
		return "", "", errors.New("name must be at least 2 characters")
	}
	if len(name) > 100 {
		return "", "", errors.New("name must be at most 100 characters")
	}
	if len(phone) < 10 || len(phone) > 15 {
		return "", "", errors.New("enter a valid phone number")
	}
	if !phonePattern.MatchString(phone) {
		return "", "", errors.New("enter a valid phone number")
	}
	return name, phone, nil
}

// OrderNumber builds the human-readable order reference: the JDC prefix
// plus the millisecond timestamp in base 36, uppercased.
func OrderNumber(at time.Time) string {
	return "JDC-" + strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
}
