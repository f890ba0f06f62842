package fieldparse

import "testing"

func TestReturnCode_Predicates(t *testing.T) {
	tests := []struct {
		name      string
		code      ReturnCode
		succeeded bool
		ok        bool
		invalid   bool
	}{
		{
			name:      "zero value",
			code:      0,
			succeeded: false,
			ok:        false,
			invalid:   false,
		},
		{
			name:      "plain ok",
			code:      OK,
			succeeded: true,
			ok:        true,
			invalid:   false,
		},
		{
			name:      "ok with properties",
			code:      OK | Quoted | Delimited | EscapedString,
			succeeded: true,
			ok:        true,
			invalid:   false,
		},
		{
			name:      "sentinel",
			code:      Sentinel | Delimited,
			succeeded: true,
			ok:        false,
			invalid:   false,
		},
		{
			name:      "invalid",
			code:      Invalid | EOF,
			succeeded: false,
			ok:        false,
			invalid:   true,
		},
		{
			name:      "ok bit set but invalid wins",
			code:      OK | InvalidDelimiter,
			succeeded: false,
			ok:        false,
			invalid:   true,
		},
		{
			name:      "overflow",
			code:      Overflow,
			succeeded: false,
			ok:        false,
			invalid:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.Succeeded(); got != tt.succeeded {
				t.Errorf("Succeeded() = %v, want %v", got, tt.succeeded)
			}
			if got := tt.code.IsOK(); got != tt.ok {
				t.Errorf("IsOK() = %v, want %v", got, tt.ok)
			}
			if got := tt.code.IsInvalid(); got != tt.invalid {
				t.Errorf("IsInvalid() = %v, want %v", got, tt.invalid)
			}
		})
	}
}

func TestReturnCode_CompositeFlags(t *testing.T) {
	c := InvalidQuotedField | EOF
	if !c.IsInvalidQuotedField() {
		t.Error("IsInvalidQuotedField() = false, want true")
	}
	if !c.IsInvalid() {
		t.Error("IsInvalid() = false, want true")
	}
	if c.IsInvalidDelimiter() {
		t.Error("IsInvalidDelimiter() = true, want false")
	}
	if c.IsOverflow() {
		t.Error("IsOverflow() = true, want false")
	}

	// Clearing OK|Invalid|Overflow (the sentinel promotion) must drop the
	// sign bit so the code reads as a successful sentinel.
	c = OK | Overflow | Quoted
	c &^= OK | Invalid | Overflow
	c |= Sentinel
	if c.IsInvalid() || c.IsOverflow() || c.IsOK() {
		t.Errorf("after promotion code = %v, want sentinel only", c)
	}
	if !c.IsSentinel() || !c.IsQuoted() {
		t.Errorf("promotion lost property flags: %v", c)
	}
}

func TestReturnCode_String(t *testing.T) {
	tests := []struct {
		code ReturnCode
		want string
	}{
		{0, "NONE"},
		{OK | Delimited, "OK|DELIMITED"},
		{Sentinel | Newline | EOF, "SENTINEL|NEWLINE|EOF"},
		{InvalidQuotedField | EOF, "EOF|INVALID_QUOTED_FIELD"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("(%d).String() = %q, want %q", int16(tt.code), got, tt.want)
		}
	}
}
