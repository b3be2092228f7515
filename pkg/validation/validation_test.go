// Copyright (C) 2025 PolishAPI Project
//
// This file is part of polishapi-go.
//
// polishapi-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// polishapi-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with polishapi-go.  If not, see <https://www.gnu.org/licenses/>.

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIBAN(t *testing.T) {
	assert.NoError(t, IBAN("PL61109010140000071219812874"))
	assert.NoError(t, IBAN("DE89370400440532013000"))

	assert.ErrorIs(t, IBAN("INVALID"), ErrValidation)
	assert.ErrorIs(t, IBAN(""), ErrValidation)
	assert.ErrorIs(t, IBAN("6111109010140000071219812874"), ErrValidation, "numeric country code")
	assert.ErrorIs(t, IBAN("PL61 1090 1014 0000 0712 1981 2874"), ErrValidation, "spaces are not accepted")
}

func TestCurrencyCode(t *testing.T) {
	assert.NoError(t, CurrencyCode("PLN"))
	assert.NoError(t, CurrencyCode("EUR"))
	assert.NoError(t, CurrencyCode("USD"))

	assert.ErrorIs(t, CurrencyCode("pln"), ErrValidation)
	assert.ErrorIs(t, CurrencyCode("EURO"), ErrValidation)
	assert.ErrorIs(t, CurrencyCode(""), ErrValidation)
}

func TestAmount(t *testing.T) {
	assert.NoError(t, Amount("100.50"))
	assert.NoError(t, Amount("1000"))
	assert.NoError(t, Amount("0.01"))

	assert.ErrorIs(t, Amount("-100"), ErrValidation)
	assert.ErrorIs(t, Amount("0"), ErrValidation)
	assert.ErrorIs(t, Amount(""), ErrValidation)
	assert.ErrorIs(t, Amount("invalid"), ErrValidation)
	assert.ErrorIs(t, Amount("NaN"), ErrValidation)
	assert.ErrorIs(t, Amount("+Inf"), ErrValidation)
}

func TestBIC(t *testing.T) {
	assert.NoError(t, BIC("BREXPLPW"))
	assert.NoError(t, BIC("BREXPLPWXXX"))

	assert.ErrorIs(t, BIC("INVALID"), ErrValidation)
	assert.ErrorIs(t, BIC(""), ErrValidation)
	assert.ErrorIs(t, BIC("brexplpw"), ErrValidation)
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("test@example.com"))
	assert.NoError(t, Email("user@domain.org"))

	assert.ErrorIs(t, Email("invalid-email"), ErrValidation)
	assert.ErrorIs(t, Email("@domain.com"), ErrValidation)
	assert.ErrorIs(t, Email("user@"), ErrValidation)
	assert.ErrorIs(t, Email(""), ErrValidation)
	assert.ErrorIs(t, Email("a@b@c"), ErrValidation)
}
