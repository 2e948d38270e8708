package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const (
	accountA = "8bce8de8-4856-4113-aff7-0812a5c6ea29"
	accountB = "bbbadca3-2fdb-4036-ae04-c23dca10c93c"
)

func TestValidator_Transfer(t *testing.T) {
	tests := []struct {
		name       string
		srcBank    uint
		dstBank    uint
		srcAccount string
		dstAccount string
		amount     string
		info       string
		wantFields []string
	}{
		{
			name: "valid inter bank", srcBank: 1, dstBank: 2,
			srcAccount: accountA, dstAccount: accountB, amount: "10", info: "rent",
		},
		{
			name: "same account is allowed", srcBank: 1, dstBank: 1,
			srcAccount: accountA, dstAccount: accountA, amount: "10.50", info: "self",
		},
		{
			name: "missing banks", srcAccount: accountA, dstAccount: accountB, amount: "10", info: "x",
			wantFields: []string{"source_bank", "destination_bank"},
		},
		{
			name: "account ids must be uuids", srcBank: 1, dstBank: 2,
			srcAccount: "12345", dstAccount: "", amount: "10", info: "x",
			wantFields: []string{"source_account_id", "destination_account_id"},
		},
		{
			name: "amount below minimum", srcBank: 1, dstBank: 2,
			srcAccount: accountA, dstAccount: accountB, amount: "0.99", info: "x",
			wantFields: []string{"amount"},
		},
		{
			name: "too many decimal places", srcBank: 1, dstBank: 2,
			srcAccount: accountA, dstAccount: accountB, amount: "10.001", info: "x",
			wantFields: []string{"amount"},
		},
		{
			name: "too many digits", srcBank: 1, dstBank: 2,
			srcAccount: accountA, dstAccount: accountB, amount: "1234567890123456789", info: "x",
			wantFields: []string{"amount"},
		},
		{
			name: "empty info", srcBank: 1, dstBank: 2,
			srcAccount: accountA, dstAccount: accountB, amount: "10", info: "  ",
			wantFields: []string{"info"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Transfer(tt.srcBank, tt.dstBank, tt.srcAccount, tt.dstAccount, decimal.RequireFromString(tt.amount), tt.info)

			assert.Len(t, v.Errors, len(tt.wantFields), "errors: %v", v.Errors)
			for _, f := range tt.wantFields {
				assert.Contains(t, v.Errors, f)
			}
		})
	}
}

func TestValidator_Bank(t *testing.T) {
	v := New()
	v.Bank("First Bank", accountA, "secret", "http://bank.local/api/")
	assert.True(t, v.Valid(), v.Errors)

	v = New()
	v.Bank("", "nope", "", "ftp://bank.local")
	assert.Equal(t, map[string]string{
		"name":  "must not be empty",
		"uuid":  "must be a valid UUID",
		"token": "must not be empty",
		"url":   "must be a valid http(s) URL",
	}, v.Errors)
}

func TestValidator_Password(t *testing.T) {
	v := New()
	v.Password("password", "Str0ng!pass")
	assert.True(t, v.Valid())

	v = New()
	v.Password("password", "weak")
	assert.Equal(t, "must be at least 8 characters long", v.Errors["password"])
}
