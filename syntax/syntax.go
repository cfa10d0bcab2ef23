// Package syntax implements the ERMIN value-syntax matcher. A descriptor is a
// small fixed-grammar string declaring the acceptable shape of a field value:
//
//	{text}
//	{float}
//	{timestamp}
//	{unfccc_cat},...
//	[{float}|NULL]
//	[{doi}|{url}]
//	{wkt}
//	[20-year|100-year]
//	[RMSE|NRMSE|MAE|MAPE|SD|HIST|CI{float}|other]
//	[TRUE|FALSE]
//
// Matching produces plain warning/error strings suitable for end-user reports.
// Faults in the descriptor itself, or a typed value whose native kind
// contradicts the descriptor, are configuration errors returned as error
// values and must abort processing.
package syntax

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/bfv/erminfix/unfccc"
)

var (
	// DOI like doi:10.1038/issn.1476-4687 or doi:10.1038.388/issn.1476-4687.
	// Non-alphanumeric registrant codes are not supported.
	reDOI = regexp.MustCompile(`(?i)^doi:10\.[a-z0-9]+(\.[a-z0-9]+)?/[a-z0-9.\-_]+$`)

	// Dotted hostname with an alphabetic TLD; bare hosts and trailing dots
	// are rejected.
	reHostname = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
)

const floatTag = "{float}"

// CheckSyntax checks one value against a descriptor and returns the warnings
// and errors found. errorOnMissingValue should be set only for required
// fields: an empty or absent value then yields a single error, otherwise it
// passes silently with no syntax checking at all. A non-nil error return
// means the descriptor or the caller's column typing is broken, not the data.
func CheckSyntax(value Value, descriptor string, errorOnMissingValue bool) (warnings, errors []string, err error) {
	descriptor = normalize(descriptor)

	// The grammar is small enough that enumerating the shapes explicitly
	// reads better than a recursive parser.
	switch {
	case value.IsMissing():
		if errorOnMissingValue {
			errors = append(errors, "Required field is empty.")
		}

	case descriptor == "{wkt}":
		warnings = append(warnings, "Syntax is {wkt}, but no automatic checking available yet. Value is: "+value.StringForm())

	case strings.HasPrefix(descriptor, "["):
		match, merr := MatchesSyntaxList(value, descriptor)
		if merr != nil {
			return nil, nil, merr
		}
		if !match {
			errors = append(errors, `Invalid value: "`+value.StringForm()+`". Accepted syntax: `+descriptor+`.`)
		}

	case strings.HasPrefix(descriptor, "{"):
		errs, merr := StringTypeMatchErrors(value, descriptor)
		if merr != nil {
			return nil, nil, merr
		}
		errors = append(errors, errs...)
	}

	return warnings, errors, nil
}

// MatchesSyntaxList checks a value against a [opt1|opt2|...] descriptor.
// Each option is either a scalar type, a combination of a literal and
// {float} ({float} first or last, e.g. CI{float} or {float}_version), or a
// literal requiring exact match. The value matches if any option matches.
// Nested lists are not implemented.
func MatchesSyntaxList(value Value, descriptor string) (bool, error) {
	descriptor = normalize(descriptor)
	options := strings.Split(strings.TrimSuffix(strings.TrimPrefix(descriptor, "["), "]"), "|")

	isMatch := false
	for _, option := range options {
		option = strings.TrimSpace(option)
		switch {
		case strings.HasPrefix(option, "{") && strings.HasSuffix(option, "}"):
			// Option is a scalar type. A typed value whose kind does not
			// fit is simply a non-match here: the next option may still
			// accept it.
			errs, err := stringTypeMatchErrors(value, option, true)
			if err != nil {
				return false, err
			}
			if len(errs) == 0 {
				isMatch = true
			}

		case strings.HasPrefix(option, floatTag):
			// Combination: {float} followed by a literal suffix, e.g.
			// {float}_version.
			suffix := option[len(floatTag):]
			s := value.StringForm()
			if strings.HasSuffix(s, suffix) {
				if isFloat(s[:len(s)-len(suffix)]) {
					isMatch = true
				}
			}

		case strings.HasSuffix(option, floatTag):
			// Combination: literal prefix followed by {float}, e.g. CI{float}.
			prefix := option[:len(option)-len(floatTag)]
			s := value.StringForm()
			if strings.HasPrefix(s, prefix) {
				if isFloat(s[len(prefix):]) {
					isMatch = true
				}
			}

		default:
			// Exact literal match. Only values that arrived as text can
			// equal a literal option.
			if value.Kind() == KindString && value.StringForm() == option {
				isMatch = true
			}
		}
	}
	return isMatch, nil
}

// StringTypeMatchErrors checks a value against a scalar type descriptor such
// as {float} or {timestamp}, or a comma-delimited list version such as
// {float},... . The returned list of error strings is empty when the value is
// valid. An unknown type tag is a configuration error.
func StringTypeMatchErrors(value Value, stringType string) ([]string, error) {
	return stringTypeMatchErrors(value, stringType, false)
}

// stringTypeMatchErrors implements StringTypeMatchErrors. In lenient mode a
// typed-value kind mismatch is reported as an ordinary match failure instead
// of a configuration error, which list matching needs for its OR semantics.
func stringTypeMatchErrors(value Value, stringType string, lenient bool) ([]string, error) {
	stringType = normalize(stringType)

	if value.Kind() != KindString && value.Kind() != KindMissing {
		return typedMatchErrors(value, stringType, lenient)
	}

	s := value.StringForm()
	var errorList []string

	switch {
	case stringType == "{float}" || stringType == "{int}":
		// {int} deliberately mirrors {float}: the source format treats any
		// floating value as a valid int.
		if !isFloat(s) {
			errorList = append(errorList, `Could not convert this value to a float: "`+s+`"`)
		}

	case stringType == "{timestamp}":
		if !IsValidTimestamp(s) {
			errorList = append(errorList, `Invalid ISO format timestamp: "`+s+`". Format is "YYYY-[MM-[DD[*HH[:MM[:SS[.fff[fff]]]][+HH:MM[:SS[.ffffff]]]]]]".`)
		}

	case stringType == "{bool}":
		if !strings.EqualFold(s, "true") && !strings.EqualFold(s, "false") {
			errorList = append(errorList, "Invalid {bool} format: "+s)
		}

	case stringType == "{unfccc_cat}":
		if !unfccc.IsValidCategory(s) {
			errorList = append(errorList, `Invalid UNFCCC category: "`+s+`".`)
		}

	case stringType == "{doi}":
		if !reDOI.MatchString(strings.TrimSpace(s)) {
			errorList = append(errorList, `Invalid DOI format: "`+s+`".`)
		}

	case stringType == "{url}":
		if !isValidURL(s) {
			errorList = append(errorList, `Invalid URL format: "`+s+`".`)
		}

	case strings.HasSuffix(stringType, ",..."):
		// Comma-delimited homogeneous list: validate each element against
		// the element type, but report at most one aggregate error.
		elemType := stringType[:strings.Index(stringType, ",")]
		valid := true
		for _, piece := range strings.Split(s, ",") {
			pieceErrors, err := stringTypeMatchErrors(String(strings.TrimSpace(piece)), elemType, lenient)
			if err != nil {
				return nil, err
			}
			if len(pieceErrors) > 0 {
				valid = false
			}
		}
		if !valid {
			errorList = append(errorList, `One or more values in list do not match expected format ("`+elemType+`"): `+s)
		}

	case stringType != "{text}":
		return nil, fmt.Errorf("unknown value syntax %q", stringType)
	}

	return errorList, nil
}

// typedMatchErrors checks that a pre-typed value's native kind is consistent
// with the declared scalar type. A mismatch signals that the caller supplied
// a column whose type contradicts the specification, which is fatal unless
// the check runs in lenient (list-option) mode.
func typedMatchErrors(value Value, stringType string, lenient bool) ([]string, error) {
	// For a list descriptor a single typed value is checked against the
	// element type.
	if strings.HasSuffix(stringType, ",...") {
		stringType = stringType[:strings.Index(stringType, ",")]
	}

	consistent := false
	switch stringType {
	case "{text}":
		return nil, nil
	case "{bool}":
		consistent = value.Kind() == KindBool
	case "{float}", "{int}":
		consistent = value.Kind() == KindFloat || value.Kind() == KindInt
	case "{timestamp}":
		consistent = value.Kind() == KindTime
	case "{unfccc_cat}", "{doi}", "{url}", "{wkt}":
		// These are textual formats; a typed column can never hold them.
		consistent = false
	default:
		return nil, fmt.Errorf("unknown value syntax %q", stringType)
	}

	if consistent {
		return nil, nil
	}
	if lenient {
		return []string{"value of type " + value.Kind().String() + " does not match " + stringType}, nil
	}
	return nil, fmt.Errorf("column type %s is inconsistent with declared syntax %s", value.Kind(), stringType)
}

// isFloat reports whether s parses as a floating-point literal. Integers are
// accepted.
func isFloat(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// isValidURL requires an explicit http:// or https:// prefix and a
// well-formed absolute URL with a dotted hostname.
func isValidURL(s string) bool {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return reHostname.MatchString(u.Hostname())
}
