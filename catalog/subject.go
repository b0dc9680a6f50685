package catalog

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a subject field name is not one of
// the seven recognized RDN fields.
var ErrUnknownField = errors.New("unknown subject field")

// subjectFields lists the recognized RDN fields in the order they
// appear in the certificate subject.
var subjectFields = []string{"C", "ST", "L", "O", "OU", "CN", "emailAddress"}

// subjectDefaults holds the default value for every recognized field.
var subjectDefaults = map[string]string{
	"C":            "US",
	"ST":           "California",
	"L":            "Mountain View",
	"O":            "Android",
	"OU":           "Android",
	"CN":           "Android",
	"emailAddress": "android@android.com",
}

// oidEmailAddress is the PKCS#9 emailAddress attribute, which pkix.Name
// has no dedicated field for.
var oidEmailAddress = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}

// ResolveSubject returns the effective value for one RDN field. A
// non-nil override wins over the default for the fields it names.
// Unrecognized field names fail with ErrUnknownField.
func ResolveSubject(field string, override map[string]string) (string, error) {
	def, ok := subjectDefaults[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if v, ok := override[field]; ok {
		return v, nil
	}
	return def, nil
}

// SubjectName resolves all seven RDN fields and assembles them into a
// pkix.Name suitable for a certificate subject (and, for self-signed
// certificates, its issuer).
func SubjectName(override map[string]string) (pkix.Name, error) {
	values := make(map[string]string, len(subjectFields))
	for _, field := range subjectFields {
		v, err := ResolveSubject(field, override)
		if err != nil {
			return pkix.Name{}, err
		}
		values[field] = v
	}

	return pkix.Name{
		Country:            []string{values["C"]},
		Province:           []string{values["ST"]},
		Locality:           []string{values["L"]},
		Organization:       []string{values["O"]},
		OrganizationalUnit: []string{values["OU"]},
		CommonName:         values["CN"],
		ExtraNames: []pkix.AttributeTypeAndValue{
			{Type: oidEmailAddress, Value: values["emailAddress"]},
		},
	}, nil
}
