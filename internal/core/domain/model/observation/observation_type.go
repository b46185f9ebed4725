package observation

import (
	"fmt"

	"verification/internal/pkg/errs"
)

// Type categorizes the defect recorded during or after a site visit.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// DireccionNoUbicada means the declared address could not be located.
	DireccionNoUbicada

	// DocumentoInconsistente means identity or property documents do not match.
	DocumentoInconsistente

	// FachadaNoCoincide means the site facade does not match the photos on file.
	FachadaNoCoincide

	// MoradorDesconoceCliente means residents do not know the client.
	MoradorDesconoceCliente

	// ZonaDeRiesgo means the site lies in a zone the verifier cannot enter.
	ZonaDeRiesgo

	// Otro covers defects outside the predefined categories.
	Otro
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:             "UNKNOWN",
		DireccionNoUbicada:      "DIRECCION_NO_UBICADA",
		DocumentoInconsistente:  "DOCUMENTO_INCONSISTENTE",
		FachadaNoCoincide:       "FACHADA_NO_COINCIDE",
		MoradorDesconoceCliente: "MORADOR_DESCONOCE_CLIENTE",
		ZonaDeRiesgo:            "ZONA_DE_RIESGO",
		Otro:                    "OTRO",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Type]string{
		DireccionNoUbicada:      "DIRECCION_NO_UBICADA",
		DocumentoInconsistente:  "DOCUMENTO_INCONSISTENTE",
		FachadaNoCoincide:       "FACHADA_NO_COINCIDE",
		MoradorDesconoceCliente: "MORADOR_DESCONOCE_CLIENTE",
		ZonaDeRiesgo:            "ZONA_DE_RIESGO",
		Otro:                    "OTRO",
	}
}

// Validate checks if the Type is one of the known categories.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("observation type",
			fmt.Errorf("%d is not a valid observation type", t))
	}
	return nil
}

// String returns the wire name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// TypeFromString parses a wire name into a Type.
func TypeFromString(str string) (Type, error) {
	for t, name := range getValidTypeStrings() {
		if name == str {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("observation type",
		fmt.Errorf("%q is not a valid observation type", str))
}
