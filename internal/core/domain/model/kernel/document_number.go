package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"verification/internal/pkg/errs"
)

// DocumentType identifies the kind of identity document carried by a person.
type DocumentType int

const (
	// DocumentTypeUnknown represents an invalid or undefined document type.
	DocumentTypeUnknown DocumentType = iota

	// DNI is the national identity document, exactly 8 digits.
	DNI

	// CarnetExtranjeria is the foreigner's residence card, 9-12 alphanumeric characters.
	CarnetExtranjeria

	// PTP is the temporary residence permit, 9-12 alphanumeric characters.
	PTP
)

func getDocumentTypeStrings() map[DocumentType]string {
	return map[DocumentType]string{
		DocumentTypeUnknown: "UNKNOWN",
		DNI:                 "DNI",
		CarnetExtranjeria:   "CARNET_EXTRANJERIA",
		PTP:                 "PTP",
	}
}

func getValidDocumentTypeStrings() map[DocumentType]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[DocumentType]string{
		DNI:               "DNI",
		CarnetExtranjeria: "CARNET_EXTRANJERIA",
		PTP:               "PTP",
	}
}

// Validate checks if the DocumentType is one of the known types.
func (t DocumentType) Validate() error {
	if _, ok := getValidDocumentTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("document type",
			fmt.Errorf("%d is not a valid document type", t))
	}
	return nil
}

// String returns the wire name of the document type.
func (t DocumentType) String() string {
	if str, ok := getDocumentTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// DocumentTypeFromString parses a wire name into a DocumentType.
func DocumentTypeFromString(s string) (DocumentType, error) {
	for t, str := range getValidDocumentTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return DocumentTypeUnknown, errs.NewValueIsInvalidErrorWithCause("document type",
		fmt.Errorf("%q is not a valid document type", s))
}

var (
	dniPattern    = regexp.MustCompile(`^\d{8}$`)
	carnetPattern = regexp.MustCompile(`^[A-Za-z0-9]{9,12}$`)
)

// DocumentNumber is a value object for an identity document number.
// The accepted format depends on the document type:
//
//	DNI                 exactly 8 digits
//	CARNET_EXTRANJERIA  9-12 alphanumeric characters
//	PTP                 9-12 alphanumeric characters
//
// DocumentNumber is immutable; two instances are equal when both type
// and normalized value match.
type DocumentNumber struct {
	documentType DocumentType
	value        string
}

// NewDocumentNumber validates and wraps a document number for the given type.
// The value is trimmed before validation.
func NewDocumentNumber(documentType DocumentType, value string) (DocumentNumber, error) {
	if err := documentType.Validate(); err != nil {
		return DocumentNumber{}, err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return DocumentNumber{}, errs.NewValueIsRequiredError("document number")
	}

	switch documentType {
	case DNI:
		if !dniPattern.MatchString(value) {
			return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("document number",
				fmt.Errorf("%q is not a valid DNI, expected exactly 8 digits", value))
		}
	case CarnetExtranjeria, PTP:
		if !carnetPattern.MatchString(value) {
			return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("document number",
				fmt.Errorf("%q is not a valid %s, expected 9-12 alphanumeric characters",
					value, documentType))
		}
	default:
		return DocumentNumber{}, errs.NewValueIsInvalidError("document type")
	}

	return DocumentNumber{documentType: documentType, value: value}, nil
}

// Type returns the document type.
func (d DocumentNumber) Type() DocumentType {
	return d.documentType
}

// Value returns the validated document number.
func (d DocumentNumber) Value() string {
	return d.value
}

// String returns "TYPE value" for logging and display.
func (d DocumentNumber) String() string {
	return fmt.Sprintf("%s %s", d.documentType, d.value)
}

// IsEqual compares two document numbers by type and value.
func (d DocumentNumber) IsEqual(other DocumentNumber) bool {
	return d.documentType == other.documentType && d.value == other.value
}

// Validate returns an error for a zero-value DocumentNumber.
func (d DocumentNumber) Validate() error {
	if d.value == "" {
		return errs.NewValueIsRequiredError(
			"DocumentNumber must be created via NewDocumentNumber")
	}
	return nil
}
