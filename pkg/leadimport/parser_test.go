package leadimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_Basic(t *testing.T) {
	records := ParseCSV("Title,Phone,Email\nAcme Events,555-0100,hello@acme.com\nBravo Co,555-0200,hi@bravo.co\n")

	require.Len(t, records, 2)
	assert.Equal(t, "Acme Events", records[0]["title"])
	assert.Equal(t, "555-0100", records[0]["phone"])
	assert.Equal(t, "hello@acme.com", records[0]["email"])
	assert.Equal(t, "Bravo Co", records[1]["title"])
}

func TestParseCSV_HeaderCleaning(t *testing.T) {
	records := ParseCSV("  Business_Name , Phone/Number \nAcme,555\n")

	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0]["business_name"])
	assert.Equal(t, "555", records[0]["phonenumber"])
}

func TestParseCSV_CRLFAndBlankLines(t *testing.T) {
	records := ParseCSV("title,phone\r\n\r\nAcme,555\r\n\n   \nBravo,556\r\n")

	require.Len(t, records, 2)
	assert.Equal(t, "Acme", records[0]["title"])
	assert.Equal(t, "Bravo", records[1]["title"])
}

func TestParseCSV_QuotedComma(t *testing.T) {
	records := ParseCSV("title,city\n\"Events, Inc\",Austin\n")

	require.Len(t, records, 1)
	assert.Equal(t, "Events, Inc", records[0]["title"])
	assert.Equal(t, "Austin", records[0]["city"])
}

func TestParseCSV_DoubledQuotesNotUnescaped(t *testing.T) {
	// "" toggles out and back in; no literal quote survives.
	records := ParseCSV("title\n\"Say \"\"hi\"\" now\"\n")

	require.Len(t, records, 1)
	assert.Equal(t, "Say hi now", records[0]["title"])
}

func TestParseCSV_MissingTrailingFields(t *testing.T) {
	records := ParseCSV("title,phone,email\nAcme\n")

	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0]["title"])
	assert.Equal(t, "", records[0]["phone"])
	assert.Equal(t, "", records[0]["email"])
}

func TestParseCSV_ExtraFieldsIgnored(t *testing.T) {
	records := ParseCSV("title\nAcme,extra,stuff\n")

	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0]["title"])
	assert.Len(t, records[0], 1)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	assert.Nil(t, ParseCSV("title,phone\n"))
}

func TestParseCSV_Empty(t *testing.T) {
	assert.Nil(t, ParseCSV(""))
	assert.Nil(t, ParseCSV("\n\n\n"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Acme Events  ", "acme events"},
		{"ACME\t\tEVENTS", "acme events"},
		{"Acme   Events", "acme events"},
		{"", ""},
		{"   ", ""},
		{"Straße", "strasse"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}
