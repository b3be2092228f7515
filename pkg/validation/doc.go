// Package validation provides structural format checks for the value
// types that appear in PolishAPI payloads: IBANs, ISO 4217 currency codes,
// amount strings, BIC/SWIFT codes and email addresses.
//
// These are shape checks only. Business rules such as IBAN checksums,
// currency availability or account existence belong to the ASPSP.
//
// Every failure wraps ErrValidation, so callers can classify with a single
// errors.Is check.
package validation
